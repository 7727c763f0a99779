package core

// RuntimeConfig contains configuration passed to the game at initialization.
// ScreenW/ScreenH describe the terminal grid the world is projected onto;
// the simulation itself always runs in world units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (kills)
	GameOver bool // Whether the session has ended (lost or won)
	Paused   bool // Whether the game is paused
}

// Event is something the game wants the outside world to know about,
// typically to play a sound cue.
type Event int

const (
	EventShoot   Event = iota // Player fired a projectile
	EventHit                  // Something was hit
	EventLose                 // Player died
	EventVictory              // Win threshold reached
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventLose:
		return "lose"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event was raised during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

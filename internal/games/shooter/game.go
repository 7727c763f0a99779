// Package shooter implements a top-down arcade shooter.
// The player flies a ship along the bottom of the field and shoots down
// descending enemies while dodging their aimed shots and falling asteroids.
// Reaching the kill threshold wins the run.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Mode is the top-level state of the game.
type Mode int

const (
	ModeIntro    Mode = iota // Title screen, waits for confirm
	ModePlaying              // Simulation running
	ModePaused               // Simulation frozen, resume/restart/back
	ModeGameOver             // Player died, waits for restart
	ModeVictory              // Kill threshold reached, waits for restart
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Game holds the whole simulation state. It is owned by a single loop and
// never touched concurrently.
type Game struct {
	cfg     config.ShooterConfig
	phases  *config.PhaseTable
	sprites *assets.Library
	runtime core.RuntimeConfig
	rng     *rand.Rand

	mode      Mode
	player    Player
	shots     []Projectile
	enemies   []Hostile
	asteroids []Hostile

	kills         int
	cooldown      int
	enemyTimer    int
	asteroidTimer int
	victoryPlayed bool // Victory cue raised since Intro was last entered
	tick          uint64

	events []core.Event // Raised during the current Step
}

// New creates a game from a validated configuration and a sprite library.
// A nil library draws every entity with its fallback shape.
func New(cfg config.ShooterConfig, sprites *assets.Library) *Game {
	if sprites == nil {
		sprites = assets.Empty()
	}
	return &Game{
		cfg:     cfg,
		phases:  config.NewPhaseTable(cfg),
		sprites: sprites,
		rng:     rand.New(rand.NewSource(1)),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Top-Down Shooter"
}

// Reset initializes the game from scratch and shows the intro screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.resetSession()
	g.enterIntro()
}

// Resize updates the terminal grid the world is drawn onto.
// The simulation is unaffected.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// resetSession restores the initial session state: full health, zero kills,
// ship at its spawn point, no entities, fresh timers.
func (g *Game) resetSession() {
	pc := g.cfg.Player
	g.player = Player{
		X:         (g.cfg.World.Width - pc.Width) / 2,
		Y:         g.cfg.World.Height - pc.Height - pc.BottomMargin,
		W:         pc.Width,
		H:         pc.Height,
		Health:    pc.MaxHealth,
		MaxHealth: pc.MaxHealth,
	}
	g.player.Y = core.Clamp(g.player.Y, 0, g.cfg.World.Height-pc.Height)

	g.shots = g.shots[:0]
	g.enemies = g.enemies[:0]
	g.asteroids = g.asteroids[:0]

	g.kills = 0
	g.cooldown = 0
	g.enemyTimer = g.phases.For(0).SpawnInterval
	g.asteroidTimer = g.cfg.Asteroids.SpawnInterval
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.mode {
	case ModeIntro:
		if g.confirmed(in) {
			g.resetSession()
			g.mode = ModePlaying
		}
	case ModePlaying:
		g.stepPlaying(in)
	case ModePaused:
		g.stepPaused(in)
	case ModeGameOver, ModeVictory:
		if g.confirmed(in) || in.Has(core.ActionRestart) {
			g.resetSession()
			g.enterIntro()
		}
	}

	return core.StepResult{State: g.State(), Events: g.takeEvents()}
}

// stepPlaying runs one simulation tick.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionCancel) {
		g.mode = ModePaused
		return
	}

	g.tick++
	phase := g.phases.For(g.kills)

	g.updatePlayer(in)
	g.updateShots()
	g.updateSpawners(phase)
	g.updateHostiles(phase)

	if g.resolveCollisions() {
		return
	}

	if g.kills >= g.cfg.World.WinKills {
		g.enterVictory()
	}
}

// stepPaused handles the pause screen. Nothing moves while paused.
func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionCancel), in.Has(core.ActionConfirm):
		g.mode = ModePlaying
	case in.Has(core.ActionRestart):
		g.resetSession()
		g.mode = ModePlaying
	case in.Has(core.ActionBack):
		g.resetSession()
		g.enterIntro()
	}
}

// confirmed reports a confirm key or a click on the on-screen button.
func (g *Game) confirmed(in core.InputFrame) bool {
	if in.Has(core.ActionConfirm) {
		return true
	}
	if in.Pointer.Clicked {
		return buttonRect(g.runtime.ScreenW, g.runtime.ScreenH, g.buttonLabel()).Contains(in.Pointer.X, in.Pointer.Y)
	}
	return false
}

func (g *Game) enterIntro() {
	g.mode = ModeIntro
	g.victoryPlayed = false
}

func (g *Game) enterGameOver() {
	g.mode = ModeGameOver
	g.emit(core.EventLose)
}

// enterVictory switches to Victory and raises the victory cue once per run.
func (g *Game) enterVictory() {
	g.mode = ModeVictory
	if !g.victoryPlayed {
		g.victoryPlayed = true
		g.emit(core.EventVictory)
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// takeEvents returns a copy of this tick's events.
func (g *Game) takeEvents() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	return out
}

// Mode returns the current top-level state.
func (g *Game) Mode() Mode {
	return g.mode
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.kills,
		GameOver: g.mode == ModeGameOver || g.mode == ModeVictory,
		Paused:   g.mode == ModePaused,
	}
}

package config

import "math"

// PhaseTable selects the active difficulty phase from the kill count.
// Selection is a pure function of kills; nothing is stored between ticks.
type PhaseTable struct {
	phases      []Phase
	progression bool
	speedScale  float64
	speedBonus  int
}

// NewPhaseTable creates a phase table from the game configuration.
func NewPhaseTable(cfg ShooterConfig) *PhaseTable {
	return &PhaseTable{
		phases:      cfg.Phases,
		progression: cfg.Difficulty.Progression,
		speedScale:  cfg.Asteroids.SpeedScale,
		speedBonus:  cfg.Asteroids.SpeedBonus,
	}
}

// Len returns the number of phases.
func (t *PhaseTable) Len() int {
	return len(t.phases)
}

// Index returns the index of the phase active at the given kill count.
// The first phase whose MaxKills bound is >= kills wins; the last phase
// catches everything above the previous bounds.
func (t *PhaseTable) Index(kills int) int {
	if !t.progression || len(t.phases) == 0 {
		return 0
	}
	last := len(t.phases) - 1
	for i := 0; i < last; i++ {
		if kills <= t.phases[i].MaxKills {
			return i
		}
	}
	return last
}

// For returns the phase active at the given kill count.
func (t *PhaseTable) For(kills int) Phase {
	if len(t.phases) == 0 {
		return Phase{}
	}
	return t.phases[t.Index(kills)]
}

// AsteroidSpeed derives asteroid descent speed from a phase's enemy speed.
// Asteroids are always faster than enemies of the same phase.
func (t *PhaseTable) AsteroidSpeed(p Phase) int {
	return int(math.Floor(float64(p.EnemySpeed)*t.speedScale)) + t.speedBonus
}

package shooter

// Snapshot is a read-only view of the game state, used by tests and the
// debug log.
type Snapshot struct {
	Tick          uint64
	Mode          Mode
	Health        int
	MaxHealth     int
	Kills         int
	Phase         int
	Cooldown      int
	PlayerX       int
	PlayerY       int
	PlayerShots   int
	EnemyShots    int
	Enemies       int
	Asteroids     int
	EnemyTimer    int
	AsteroidTimer int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Mode:          g.mode,
		Health:        g.player.Health,
		MaxHealth:     g.player.MaxHealth,
		Kills:         g.kills,
		Phase:         g.phases.Index(g.kills),
		Cooldown:      g.cooldown,
		PlayerX:       g.player.X,
		PlayerY:       g.player.Y,
		Enemies:       len(g.enemies),
		Asteroids:     len(g.asteroids),
		EnemyTimer:    g.enemyTimer,
		AsteroidTimer: g.asteroidTimer,
	}
	for _, s := range g.shots {
		if s.Owner == OwnerPlayer {
			snap.PlayerShots++
		} else {
			snap.EnemyShots++
		}
	}
	return snap
}

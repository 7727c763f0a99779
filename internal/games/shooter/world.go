package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// updatePlayer applies movement, the fire cooldown and firing.
func (g *Game) updatePlayer(in core.InputFrame) {
	speed := g.cfg.Player.Speed

	// Each axis is applied independently; opposing keys cancel out.
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	if in.Has(core.ActionUp) {
		dy -= speed
	}
	if in.Has(core.ActionDown) {
		dy += speed
	}

	p := &g.player
	p.X = core.Clamp(p.X+dx, 0, g.cfg.World.Width-p.W)
	p.Y = core.Clamp(p.Y+dy, 0, g.cfg.World.Height-p.H)

	if g.cooldown > 0 {
		g.cooldown--
	}

	if in.Has(core.ActionFire) && g.cooldown == 0 {
		g.fire()
		g.cooldown = g.cfg.Weapons.Cooldown
	}
}

// fire spawns a player shot centered on the ship, resting on its top edge.
func (g *Game) fire() {
	w := g.cfg.Weapons
	shot := Projectile{
		Body: core.Body{
			Pos: core.Vec{
				X: g.player.CenterX() - float64(w.ShotWidth)/2,
				Y: float64(g.player.Y - w.ShotHeight),
			},
			W: w.ShotWidth,
			H: w.ShotHeight,
		},
		Vel:   core.Vec{Y: -float64(w.ShotSpeed)},
		Owner: OwnerPlayer,
	}
	g.shots = append(g.shots, shot)
	g.emit(core.EventShoot)
}

// updateShots moves every projectile and prunes those that left the world.
func (g *Game) updateShots() {
	worldW := g.cfg.World.Width
	worldH := g.cfg.World.Height

	for i := range g.shots {
		s := &g.shots[i]
		s.Pos = s.Pos.Add(s.Vel)
		r := s.Rect()

		switch s.Owner {
		case OwnerPlayer:
			if r.Bottom() < 0 {
				s.Dead = true
			}
		case OwnerEnemy:
			if r.Y > worldH || r.Right() < 0 || r.X > worldW {
				s.Dead = true
			}
		}
	}
	g.shots = compactProjectiles(g.shots)
}

// updateSpawners counts down both spawn timers and spawns when they expire.
func (g *Game) updateSpawners(phase config.Phase) {
	g.enemyTimer--
	if g.enemyTimer <= 0 {
		g.enemies = append(g.enemies, g.spawnHostile(g.cfg.Enemies.Width, g.cfg.Enemies.Height))
		g.enemyTimer = phase.SpawnInterval
	}

	g.asteroidTimer--
	if g.asteroidTimer <= 0 {
		g.asteroids = append(g.asteroids, g.spawnHostile(g.cfg.Asteroids.Width, g.cfg.Asteroids.Height))
		g.asteroidTimer = g.cfg.Asteroids.SpawnInterval
	}
}

// spawnHostile places a new hostile at a random x just above the top edge.
func (g *Game) spawnHostile(w, h int) Hostile {
	x := g.rng.Intn(g.cfg.World.Width - w + 1)
	return Hostile{
		Body: core.Body{
			Pos: core.Vec{X: float64(x), Y: float64(g.cfg.Enemies.SpawnY)},
			W:   w,
			H:   h,
		},
	}
}

// updateHostiles moves enemies and asteroids, lets enemies shoot and
// prunes whatever fell past the bottom margin.
func (g *Game) updateHostiles(phase config.Phase) {
	limit := g.cfg.World.Height + g.cfg.Enemies.PruneMargin
	enemySpeed := float64(phase.EnemySpeed)
	asteroidSpeed := float64(g.phases.AsteroidSpeed(phase))

	for i := range g.enemies {
		e := &g.enemies[i]
		e.Pos.Y += enemySpeed
		if g.rng.Intn(phase.ShotChance+1) == 0 {
			g.enemyFire(e.Body)
		}
		if e.Rect().Y > limit {
			e.Dead = true
		}
	}
	g.enemies = compactHostiles(g.enemies)

	for i := range g.asteroids {
		a := &g.asteroids[i]
		a.Pos.Y += asteroidSpeed
		if a.Rect().Y > limit {
			a.Dead = true
		}
	}
	g.asteroids = compactHostiles(g.asteroids)
}

// enemyFire spawns a shot from the enemy's bottom center, aimed once at the
// player's current center. It is never re-aimed.
func (g *Game) enemyFire(from core.Body) {
	w := g.cfg.Weapons
	originX := from.CenterX()
	offset := g.player.CenterX() - originX

	shot := Projectile{
		Body: core.Body{
			Pos: core.Vec{
				X: originX - float64(w.EnemyShotWidth)/2,
				Y: from.Pos.Y + float64(from.H),
			},
			W: w.EnemyShotWidth,
			H: w.EnemyShotHeight,
		},
		Vel:   core.Vec{X: offset / w.EnemyAimDivisor, Y: w.EnemyShotSpeed},
		Owner: OwnerEnemy,
	}
	g.shots = append(g.shots, shot)
}

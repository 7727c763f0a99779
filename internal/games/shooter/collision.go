package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// resolveCollisions runs the collision checks in their fixed order.
// Entities are only marked dead while checking, and every check skips
// marked entities; the lists are compacted once at the end.
// Returns true if the player died, in which case the remaining checks
// are skipped.
func (g *Game) resolveCollisions() bool {
	defer g.compact()

	g.shotsVersusHostiles(g.enemies, true)
	g.shotsVersusHostiles(g.asteroids, false)

	playerRect := g.player.Rect()

	// Enemy shots hitting the player
	for i := range g.shots {
		s := &g.shots[i]
		if s.Dead || s.Owner != OwnerEnemy {
			continue
		}
		if s.Rect().Intersects(playerRect) {
			s.Dead = true
			if g.damage(g.cfg.Damage.EnemyShot) {
				return true
			}
		}
	}

	// Body collisions
	if g.bodyCollisions(g.enemies, playerRect, g.cfg.Damage.EnemyBody) {
		return true
	}
	return g.bodyCollisions(g.asteroids, playerRect, g.cfg.Damage.AsteroidBody)
}

// shotsVersusHostiles destroys player shots and the first hostile each one
// overlaps. A shot resolves against at most one hostile per tick.
func (g *Game) shotsVersusHostiles(hostiles []Hostile, countsAsKill bool) {
	for i := range g.shots {
		s := &g.shots[i]
		if s.Dead || s.Owner != OwnerPlayer {
			continue
		}
		shotRect := s.Rect()
		for j := range hostiles {
			h := &hostiles[j]
			if h.Dead {
				continue
			}
			if shotRect.Intersects(h.Rect()) {
				s.Dead = true
				h.Dead = true
				if countsAsKill {
					g.kills++
				}
				g.emit(core.EventHit)
				break
			}
		}
	}
}

// bodyCollisions destroys hostiles touching the player and applies damage
// for each one. Returns true if the player died.
func (g *Game) bodyCollisions(hostiles []Hostile, playerRect core.Rect, dmg int) bool {
	for i := range hostiles {
		h := &hostiles[i]
		if h.Dead {
			continue
		}
		if h.Rect().Intersects(playerRect) {
			h.Dead = true
			if g.damage(dmg) {
				return true
			}
		}
	}
	return false
}

// damage lowers health, clamped to [0, MaxHealth], and switches to GameOver the same
// tick health reaches zero. Returns true if the player died.
func (g *Game) damage(amount int) bool {
	g.player.Health = min(max(g.player.Health-amount, 0), g.player.MaxHealth)
	g.emit(core.EventHit)
	if g.player.Health <= 0 {
		g.enterGameOver()
		return true
	}
	return false
}

// compact drops every entity marked dead during this tick.
func (g *Game) compact() {
	g.shots = compactProjectiles(g.shots)
	g.enemies = compactHostiles(g.enemies)
	g.asteroids = compactHostiles(g.asteroids)
}

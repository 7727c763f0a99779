package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship controlled by the user. It always stays fully inside
// the world.
type Player struct {
	X, Y      int
	W, H      int
	Health    int
	MaxHealth int
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterX returns the horizontal center of the ship.
func (p Player) CenterX() float64 {
	return float64(p.X) + float64(p.W)/2
}

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a shot from either side. Player shots fly straight up;
// enemy shots keep the velocity they were aimed with at spawn.
type Projectile struct {
	core.Body
	Vel   core.Vec
	Owner Owner
	Dead  bool
}

// Hostile is an enemy ship or an asteroid. Both descend at a speed taken
// from the active phase each tick.
type Hostile struct {
	core.Body
	Dead bool
}

// compactProjectiles removes dead projectiles in place.
func compactProjectiles(list []Projectile) []Projectile {
	kept := list[:0]
	for _, p := range list {
		if !p.Dead {
			kept = append(kept, p)
		}
	}
	return kept
}

// compactHostiles removes dead hostiles in place.
func compactHostiles(list []Hostile) []Hostile {
	kept := list[:0]
	for _, h := range list {
		if !h.Dead {
			kept = append(kept, h)
		}
	}
	return kept
}

package shooter

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Fallback glyphs used when a sprite is missing.
const (
	PlayerChar     = '█'
	EnemyChar      = '▓'
	AsteroidChar   = '●'
	ShotChar       = '|'
	EnemyShotChar  = '•'
	HealthFullChar = '█'
	HealthLostChar = '░'
)

// healthBarCells is the width of the fallback health bar.
const healthBarCells = 20

// hudRows is the number of rows reserved at the top for the HUD.
const hudRows = 1

// projection maps world coordinates onto the play area of the screen.
type projection struct {
	cols, rows     int
	worldW, worldH int
}

func (g *Game) projection(dst *core.Screen) projection {
	return projection{
		cols:   dst.Width(),
		rows:   max(dst.Height()-hudRows, 1),
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
	}
}

// rect projects a world rectangle to screen cells. Anything visible in the
// world covers at least one cell.
func (p projection) rect(r core.Rect) core.Rect {
	sx := float64(p.cols) / float64(p.worldW)
	sy := float64(p.rows) / float64(p.worldH)

	x0 := int(math.Floor(float64(r.X) * sx))
	x1 := int(math.Ceil(float64(r.Right()) * sx))
	y0 := int(math.Floor(float64(r.Y) * sy))
	y1 := int(math.Ceil(float64(r.Bottom()) * sy))

	return core.NewRect(x0, y0+hudRows, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case ModeIntro:
		g.drawBackground(dst)
		g.drawIntro(dst)
		return
	case ModePlaying:
		g.drawWorld(dst)
	case ModePaused:
		g.drawWorld(dst)
		g.drawOverlay(dst, "PAUSED", core.ColorCyan,
			"Esc/Enter resume  R restart",
			"B back to title  Q quit")
	case ModeGameOver:
		g.drawWorld(dst)
		g.drawOverlay(dst, "GAME OVER", core.ColorRed,
			fmt.Sprintf("Kills: %d/%d", g.kills, g.cfg.World.WinKills),
			"Enter or click to continue")
		g.drawButton(dst)
	case ModeVictory:
		g.drawWorld(dst)
		g.drawOverlay(dst, "VICTORY", core.ColorBrightGreen,
			fmt.Sprintf("All %d enemies destroyed", g.cfg.World.WinKills),
			"Enter or click to continue")
		g.drawButton(dst)
	}
}

// drawWorld draws the background, every entity and the HUD on top.
func (g *Game) drawWorld(dst *core.Screen) {
	proj := g.projection(dst)

	g.drawBackground(dst)

	for _, a := range g.asteroids {
		g.drawEntity(dst, proj, a.Rect(), assets.AsteroidSprite, core.ColorGray, func(r core.Rect) {
			dst.FillEllipse(r, AsteroidChar, core.ColorGray)
			if r.W < 2 || r.H < 2 {
				dst.DrawRect(r, AsteroidChar, core.ColorGray)
			}
		})
	}
	for _, e := range g.enemies {
		g.drawEntity(dst, proj, e.Rect(), assets.EnemySprite, core.ColorRed, func(r core.Rect) {
			dst.DrawRect(r, EnemyChar, core.ColorRed)
		})
	}
	for _, s := range g.shots {
		if s.Owner == OwnerPlayer {
			g.drawEntity(dst, proj, s.Rect(), assets.ShotSprite, core.ColorYellow, func(r core.Rect) {
				dst.DrawRect(r, ShotChar, core.ColorYellow)
			})
			continue
		}
		g.drawEntity(dst, proj, s.Rect(), assets.EnemyShotSprite, core.ColorBrightRed, func(r core.Rect) {
			dst.DrawRect(r, EnemyShotChar, core.ColorBrightRed)
		})
	}
	g.drawEntity(dst, proj, g.player.Rect(), assets.PlayerSprite, core.ColorGreen, func(r core.Rect) {
		dst.DrawRect(r, PlayerChar, core.ColorGreen)
	})

	g.drawHUD(dst)
}

// drawEntity draws a sprite centered on the projected rectangle, or the
// fallback shape when the sprite is missing.
func (g *Game) drawEntity(dst *core.Screen, proj projection, world core.Rect, name string, c core.Color, fallback func(core.Rect)) {
	r := proj.rect(world)
	sp := g.sprites.Sprite(name)
	if sp == nil {
		fallback(r)
		return
	}
	x := r.X + (r.W-sp.W)/2
	y := r.Y + (r.H-sp.H)/2
	dst.DrawSprite(x, y, sp.Rows, -1, -1, c)
}

// drawBackground tiles the background sprite over the play area.
// Without one the background stays blank.
func (g *Game) drawBackground(dst *core.Screen) {
	sp := g.sprites.Sprite(assets.BackgroundSprite)
	if sp == nil || sp.W == 0 || sp.H == 0 {
		return
	}
	for y := hudRows; y < dst.Height(); y += sp.H {
		for x := 0; x < dst.Width(); x += sp.W {
			dst.DrawSprite(x, y, sp.Rows, -1, -1, core.ColorGray)
		}
	}
}

// drawHUD draws health, kills and the active phase on the top row.
// The row is cleared first so entities above the field never leak into it.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	dst.DrawText(1, 0, "HP ", core.ColorWhite)
	x := 4
	x += g.drawHealthBar(dst, x)

	dst.DrawText(x+1, 0, fmt.Sprintf("%d/%d", g.player.Health, g.player.MaxHealth), core.ColorWhite)

	kills := fmt.Sprintf("Kills: %d/%d", g.kills, g.cfg.World.WinKills)
	dst.DrawText((dst.Width()-utf8.RuneCountInString(kills))/2, 0, kills, core.ColorBrightYellow)

	phase := g.phases.For(g.kills).Name
	if phase != "" {
		dst.DrawText(dst.Width()-utf8.RuneCountInString(phase)-1, 0, phase, core.ColorCyan)
	}
}

// drawHealthBar draws the bar at column x and returns its width in cells.
// The health sprite's first row is clipped to the remaining health.
func (g *Game) drawHealthBar(dst *core.Screen, x int) int {
	health := max(g.player.Health, 0)
	maxHealth := max(g.player.MaxHealth, 1)

	if sp := g.sprites.Sprite(assets.HealthSprite); sp != nil {
		filled := sp.W * health / maxHealth
		dst.DrawSprite(x, 0, sp.Rows[:1], filled, 1, core.ColorRed)
		return sp.W
	}

	filled := healthBarCells * health / maxHealth
	if health > 0 && filled == 0 {
		filled = 1
	}
	color := core.ColorGreen
	switch {
	case health*4 <= maxHealth:
		color = core.ColorRed
	case health*2 <= maxHealth:
		color = core.ColorYellow
	}
	dst.DrawHLine(x, 0, filled, HealthFullChar, color)
	dst.DrawHLine(x+filled, 0, healthBarCells-filled, HealthLostChar, core.ColorGray)
	return healthBarCells
}

// drawIntro draws the title screen.
func (g *Game) drawIntro(dst *core.Screen) {
	mid := dst.Height() / 2

	dst.DrawTextCentered(mid-5, core.BigText("Shooter"), core.ColorBrightCyan)
	dst.DrawTextCentered(mid-3, "Arrows/WASD move   Space fire   Esc pause", core.ColorWhite)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("Destroy %d enemies to win", g.cfg.World.WinKills), core.ColorWhite)
	dst.DrawTextCentered(mid-1, "Press Enter to start", core.ColorGray)

	g.drawButton(dst)
}

// drawOverlay draws a framed message box in the middle of the screen.
func (g *Game) drawOverlay(dst *core.Screen, title string, c core.Color, lines ...string) {
	width := utf8.RuneCountInString(title) + 4
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l)+4)
	}
	height := len(lines) + 4
	box := core.NewRect((dst.Width()-width)/2, dst.Height()/2-height, width, height)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}

// buttonLabel returns the caption of the clickable button for the current mode.
func (g *Game) buttonLabel() string {
	if g.mode == ModeIntro {
		return "START"
	}
	return "CONTINUE"
}

// drawButton draws the clickable confirm button.
func (g *Game) drawButton(dst *core.Screen) {
	label := g.buttonLabel()
	r := buttonRect(dst.Width(), dst.Height(), label)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightYellow)
	dst.DrawText(r.X+2, r.Y+1, label, core.ColorBrightYellow)
}

// buttonRect returns the on-screen button bounds in cells. Rendering and
// click hit-testing share it.
func buttonRect(screenW, screenH int, label string) core.Rect {
	w := utf8.RuneCountInString(label) + 4
	return core.NewRect((screenW-w)/2, screenH/2+1, w, 3)
}

package shooter

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// quietConfig returns the default config with spawning and enemy fire
// effectively disabled, so tests can place entities by hand.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	for i := range cfg.Phases {
		cfg.Phases[i].SpawnInterval = math.MaxInt32
		cfg.Phases[i].ShotChance = math.MaxInt32 - 1
	}
	cfg.Asteroids.SpawnInterval = math.MaxInt32
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// newPlaying returns a game that has left the intro screen.
func newPlaying(t *testing.T, cfg config.ShooterConfig) *Game {
	t.Helper()
	g := New(cfg, nil)
	g.Reset(testRuntime)
	g.Step(input(core.ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("expected playing after confirm, got %s", g.Mode())
	}
	return g
}

func countEvents(res core.StepResult, e core.Event) int {
	n := 0
	for _, got := range res.Events {
		if got == e {
			n++
		}
	}
	return n
}

func TestResetStartsAtIntro(t *testing.T) {
	g := New(config.DefaultShooterConfig(), nil)
	g.Reset(testRuntime)

	snap := g.Snapshot()
	if snap.Mode != ModeIntro {
		t.Errorf("mode = %s, want intro", snap.Mode)
	}
	if snap.Health != 100 || snap.Kills != 0 {
		t.Errorf("health/kills = %d/%d, want 100/0", snap.Health, snap.Kills)
	}
	if snap.PlayerX != 375 || snap.PlayerY != 550 {
		t.Errorf("player at (%d, %d), want (375, 550)", snap.PlayerX, snap.PlayerY)
	}

	// Nothing advances without confirm
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionFire, core.ActionLeft))
	}
	if g.Snapshot() != snap {
		t.Error("intro must not advance the simulation")
	}
}

func TestIntroClickOnButton(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Mode
	}{
		{"inside", 38, 14, ModePlaying},
		{"outside", 2, 2, ModeIntro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.DefaultShooterConfig(), nil)
			g.Reset(testRuntime)

			in := core.NewInputFrame()
			in.Click(tt.x, tt.y)
			g.Step(in)

			if g.Mode() != tt.want {
				t.Errorf("mode = %s, want %s", g.Mode(), tt.want)
			}
		})
	}
}

func TestFireCadence(t *testing.T) {
	g := newPlaying(t, quietConfig())

	var fired []int
	for i := 0; i < 29; i++ {
		res := g.Step(input(core.ActionFire))
		if res.Has(core.EventShoot) {
			fired = append(fired, i)
		}
	}

	want := []int{0, 14, 28}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("shot %d at tick %d, want %d", i, fired[i], want[i])
		}
	}
	if got := g.Snapshot().PlayerShots; got != 3 {
		t.Errorf("player shots = %d, want 3", got)
	}
}

func TestShotSpawnsCenteredAboveShip(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.Step(input(core.ActionFire))

	if len(g.shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(g.shots))
	}
	s := g.shots[0]
	// Spawned at (397, 536), then moved 12 up in the same tick.
	if s.Pos.X != 397 || s.Pos.Y != 524 {
		t.Errorf("shot at (%v, %v), want (397, 524)", s.Pos.X, s.Pos.Y)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		wantX  int
		wantY  int
	}{
		{"left", core.ActionLeft, 0, 550},
		{"right", core.ActionRight, 750, 550},
		{"up", core.ActionUp, 375, 0},
		{"down", core.ActionDown, 375, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(t, quietConfig())
			for i := 0; i < 200; i++ {
				g.Step(input(tt.action))
			}
			snap := g.Snapshot()
			if snap.PlayerX != tt.wantX || snap.PlayerY != tt.wantY {
				t.Errorf("player at (%d, %d), want (%d, %d)", snap.PlayerX, snap.PlayerY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.Step(input(core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown))

	snap := g.Snapshot()
	if snap.PlayerX != 375 || snap.PlayerY != 550 {
		t.Errorf("player moved to (%d, %d)", snap.PlayerX, snap.PlayerY)
	}
}

func TestBodyCollisionsEndGameOnTenthHit(t *testing.T) {
	g := newPlaying(t, quietConfig())

	for i := 1; i <= 10; i++ {
		g.enemies = append(g.enemies, Hostile{Body: core.Body{
			Pos: core.Vec{X: float64(g.player.X), Y: float64(g.player.Y)},
			W:   40,
			H:   32,
		}})
		res := g.Step(core.NewInputFrame())

		wantHealth := 100 - 10*i
		if g.player.Health != wantHealth {
			t.Fatalf("hit %d: health = %d, want %d", i, g.player.Health, wantHealth)
		}
		if !res.Has(core.EventHit) {
			t.Errorf("hit %d: missing hit event", i)
		}
		if i < 10 && g.Mode() != ModePlaying {
			t.Fatalf("hit %d: mode = %s, want playing", i, g.Mode())
		}
		if i == 10 {
			if g.Mode() != ModeGameOver {
				t.Errorf("mode = %s, want game_over", g.Mode())
			}
			if !res.Has(core.EventLose) {
				t.Error("missing lose event on the fatal tick")
			}
			if !res.State.GameOver {
				t.Error("state should report game over")
			}
		}
	}
}

func TestDamageAmounts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  int
	}{
		{
			name: "enemy shot",
			setup: func(g *Game) {
				g.shots = append(g.shots, Projectile{
					Body:  core.Body{Pos: core.Vec{X: 390, Y: 560}, W: 6, H: 12},
					Vel:   core.Vec{Y: 6},
					Owner: OwnerEnemy,
				})
			},
			want: 90,
		},
		{
			name: "enemy body",
			setup: func(g *Game) {
				g.enemies = append(g.enemies, Hostile{Body: core.Body{Pos: core.Vec{X: 380, Y: 540}, W: 40, H: 32}})
			},
			want: 90,
		},
		{
			name: "asteroid body",
			setup: func(g *Game) {
				g.asteroids = append(g.asteroids, Hostile{Body: core.Body{Pos: core.Vec{X: 380, Y: 540}, W: 40, H: 40}})
			},
			want: 85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(t, quietConfig())
			tt.setup(g)
			g.Step(core.NewInputFrame())

			if g.player.Health != tt.want {
				t.Errorf("health = %d, want %d", g.player.Health, tt.want)
			}
			snap := g.Snapshot()
			if snap.EnemyShots+snap.Enemies+snap.Asteroids != 0 {
				t.Errorf("colliding entity should be destroyed: %+v", snap)
			}
		})
	}
}

func TestHealthNeverNegative(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.player.Health = 5
	g.asteroids = append(g.asteroids, Hostile{Body: core.Body{Pos: core.Vec{X: 380, Y: 540}, W: 40, H: 40}})
	g.Step(core.NewInputFrame())

	if g.player.Health != 0 {
		t.Errorf("health = %d, want 0", g.player.Health)
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("mode = %s, want game_over", g.Mode())
	}
}

func TestGameOverSkipsRemainingCollisions(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.player.Health = 10
	g.enemies = append(g.enemies,
		Hostile{Body: core.Body{Pos: core.Vec{X: 380, Y: 540}, W: 40, H: 32}},
		Hostile{Body: core.Body{Pos: core.Vec{X: 360, Y: 540}, W: 40, H: 32}},
	)
	res := g.Step(core.NewInputFrame())

	if countEvents(res, core.EventLose) != 1 {
		t.Errorf("lose events = %d, want 1", countEvents(res, core.EventLose))
	}
	if countEvents(res, core.EventHit) != 1 {
		t.Errorf("hit events = %d, want 1", countEvents(res, core.EventHit))
	}
	if len(g.enemies) != 1 {
		t.Errorf("enemies = %d, want the second one untouched", len(g.enemies))
	}
}

func TestShotDestroysOnlyOneHostile(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.enemies = append(g.enemies,
		Hostile{Body: core.Body{Pos: core.Vec{X: 100, Y: 100}, W: 40, H: 32}},
		Hostile{Body: core.Body{Pos: core.Vec{X: 105, Y: 100}, W: 40, H: 32}},
	)
	g.shots = append(g.shots, Projectile{
		Body:  core.Body{Pos: core.Vec{X: 110, Y: 120}, W: 6, H: 14},
		Vel:   core.Vec{Y: -12},
		Owner: OwnerPlayer,
	})

	res := g.Step(core.NewInputFrame())

	if g.kills != 1 {
		t.Errorf("kills = %d, want 1", g.kills)
	}
	if len(g.enemies) != 1 {
		t.Errorf("enemies = %d, want 1", len(g.enemies))
	}
	if len(g.shots) != 0 {
		t.Errorf("shots = %d, want 0", len(g.shots))
	}
	if !res.Has(core.EventHit) {
		t.Error("missing hit event")
	}
}

func TestShotDestroysAsteroidWithoutKill(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.asteroids = append(g.asteroids, Hostile{Body: core.Body{Pos: core.Vec{X: 100, Y: 100}, W: 40, H: 40}})
	g.shots = append(g.shots, Projectile{
		Body:  core.Body{Pos: core.Vec{X: 110, Y: 130}, W: 6, H: 14},
		Vel:   core.Vec{Y: -12},
		Owner: OwnerPlayer,
	})

	g.Step(core.NewInputFrame())

	if g.kills != 0 {
		t.Errorf("kills = %d, want 0", g.kills)
	}
	if len(g.asteroids) != 0 || len(g.shots) != 0 {
		t.Errorf("asteroid and shot should be gone: %d/%d", len(g.asteroids), len(g.shots))
	}
}

func TestEnemiesPreferredOverAsteroids(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.enemies = append(g.enemies, Hostile{Body: core.Body{Pos: core.Vec{X: 100, Y: 100}, W: 40, H: 32}})
	g.asteroids = append(g.asteroids, Hostile{Body: core.Body{Pos: core.Vec{X: 100, Y: 100}, W: 40, H: 40}})
	g.shots = append(g.shots, Projectile{
		Body:  core.Body{Pos: core.Vec{X: 110, Y: 125}, W: 6, H: 14},
		Vel:   core.Vec{Y: -12},
		Owner: OwnerPlayer,
	})

	g.Step(core.NewInputFrame())

	if g.kills != 1 || len(g.enemies) != 0 {
		t.Errorf("enemy should be hit first: kills=%d enemies=%d", g.kills, len(g.enemies))
	}
	if len(g.asteroids) != 1 {
		t.Errorf("asteroid should survive, got %d", len(g.asteroids))
	}
}

func TestVictoryEventOncePerEntry(t *testing.T) {
	g := newPlaying(t, quietConfig())
	g.kills = 49
	g.enemies = append(g.enemies, Hostile{Body: core.Body{Pos: core.Vec{X: 100, Y: 100}, W: 40, H: 32}})
	g.shots = append(g.shots, Projectile{
		Body:  core.Body{Pos: core.Vec{X: 110, Y: 120}, W: 6, H: 14},
		Vel:   core.Vec{Y: -12},
		Owner: OwnerPlayer,
	})

	res := g.Step(core.NewInputFrame())
	if g.Mode() != ModeVictory {
		t.Fatalf("mode = %s, want victory", g.Mode())
	}
	if countEvents(res, core.EventVictory) != 1 {
		t.Errorf("victory events = %d, want 1", countEvents(res, core.EventVictory))
	}

	for i := 0; i < 30; i++ {
		res = g.Step(core.NewInputFrame())
		if res.Has(core.EventVictory) {
			t.Fatalf("victory raised again on tick %d", i)
		}
	}

	g.Step(input(core.ActionConfirm))
	if g.Mode() != ModeIntro {
		t.Errorf("mode = %s, want intro", g.Mode())
	}
	if g.victoryPlayed {
		t.Error("victory flag should be cleared on intro")
	}
}

func TestEndScreensReturnToIntro(t *testing.T) {
	actions := []core.Action{core.ActionConfirm, core.ActionRestart}

	for _, a := range actions {
		t.Run(a.String(), func(t *testing.T) {
			g := newPlaying(t, quietConfig())
			g.player.Health = 1
			g.asteroids = append(g.asteroids, Hostile{Body: core.Body{Pos: core.Vec{X: 380, Y: 540}, W: 40, H: 40}})
			g.Step(core.NewInputFrame())
			if g.Mode() != ModeGameOver {
				t.Fatalf("mode = %s, want game_over", g.Mode())
			}

			g.Step(input(a))

			snap := g.Snapshot()
			if snap.Mode != ModeIntro {
				t.Errorf("mode = %s, want intro", snap.Mode)
			}
			if snap.Health != 100 || snap.Asteroids != 0 {
				t.Errorf("session not reset: %+v", snap)
			}
		})
	}
}

func TestPause(t *testing.T) {
	g := newPlaying(t, quietConfig())
	for i := 0; i < 5; i++ {
		g.Step(input(core.ActionRight))
	}

	res := g.Step(input(core.ActionCancel))
	if g.Mode() != ModePaused || !res.State.Paused {
		t.Fatalf("mode = %s, want paused", g.Mode())
	}

	frozen := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionRight, core.ActionFire))
	}
	if g.Snapshot() != frozen {
		t.Error("simulation advanced while paused")
	}

	g.Step(input(core.ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %s, want playing", g.Mode())
	}
	if g.Snapshot().PlayerX != frozen.PlayerX {
		t.Error("resume should keep the session")
	}
}

func TestPauseMenuActions(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   Mode
		reset  bool
	}{
		{"resume", core.ActionCancel, ModePlaying, false},
		{"restart", core.ActionRestart, ModePlaying, true},
		{"back", core.ActionBack, ModeIntro, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(t, quietConfig())
			g.Step(input(core.ActionLeft))
			g.Step(input(core.ActionCancel))

			g.Step(input(tt.action))

			snap := g.Snapshot()
			if snap.Mode != tt.want {
				t.Errorf("mode = %s, want %s", snap.Mode, tt.want)
			}
			if moved := snap.PlayerX != 375; moved == tt.reset {
				t.Errorf("reset = %v, player x = %d", tt.reset, snap.PlayerX)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newPlaying(t, config.DefaultShooterConfig())
		for i := 0; i < 1200; i++ {
			in := input(core.ActionFire)
			if (i/40)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
}

func TestResetRoundTrip(t *testing.T) {
	g := newPlaying(t, config.DefaultShooterConfig())
	for i := 0; i < 300; i++ {
		g.Step(input(core.ActionFire, core.ActionLeft))
	}

	g.Reset(testRuntime)
	fresh := New(config.DefaultShooterConfig(), nil)
	fresh.Reset(testRuntime)

	if g.Snapshot() != fresh.Snapshot() {
		t.Errorf("reset state differs:\n%+v\n%+v", g.Snapshot(), fresh.Snapshot())
	}
}

func TestRenderModes(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  string
	}{
		{"intro", func(g *Game) {}, core.BigText("Shooter")},
		{"playing", func(g *Game) { g.Step(input(core.ActionConfirm)) }, "Kills: 0/50"},
		{"paused", func(g *Game) {
			g.Step(input(core.ActionConfirm))
			g.Step(input(core.ActionCancel))
		}, "PAUSED"},
		{"game over", func(g *Game) {
			g.Step(input(core.ActionConfirm))
			g.enterGameOver()
		}, "GAME OVER"},
		{"victory", func(g *Game) {
			g.Step(input(core.ActionConfirm))
			g.enterVictory()
		}, "VICTORY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(quietConfig(), nil)
			g.Reset(testRuntime)
			tt.setup(g)

			screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
			g.Render(screen)

			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("frame missing %q:\n%s", tt.want, screen.String())
			}
		})
	}
}

func TestRenderPlayerFallback(t *testing.T) {
	g := newPlaying(t, quietConfig())
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	// Ship at (375, 550) 50x40 on an 80x23 play area.
	r := g.projection(screen).rect(g.player.Rect())
	cell := screen.GetCell(r.X, r.Y)
	if cell.Rune != PlayerChar || cell.Color != core.ColorGreen {
		t.Errorf("cell at (%d, %d) = %q, want player glyph", r.X, r.Y, cell.Rune)
	}
	if !strings.Contains(screen.Row(0), "HP") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
}

func TestHealthNeverExceedsMax(t *testing.T) {
	cfg := quietConfig()
	cfg.Damage.EnemyBody = -50
	g := newPlaying(t, cfg)
	g.enemies = append(g.enemies, Hostile{Body: core.Body{Pos: core.Vec{X: 380, Y: 540}, W: 40, H: 32}})

	g.Step(core.NewInputFrame())

	if g.player.Health != g.player.MaxHealth {
		t.Errorf("health = %d, want clamp at %d", g.player.Health, g.player.MaxHealth)
	}
}

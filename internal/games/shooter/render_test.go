package shooter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// spriteLibrary writes the given sprites into a temp dir and loads them.
func spriteLibrary(t *testing.T, sprites map[string]string) *assets.Library {
	t.Helper()
	dir := t.TempDir()
	for name, body := range sprites {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return assets.Load(dir, log.New(io.Discard))
}

func newSpriteGame(t *testing.T, lib *assets.Library) *Game {
	t.Helper()
	g := New(quietConfig(), lib)
	g.Reset(testRuntime)
	g.Step(input(core.ActionConfirm))
	return g
}

func TestRenderHealthSpriteClipped(t *testing.T) {
	lib := spriteLibrary(t, map[string]string{
		assets.HealthSprite: "♥♥♥♥♥♥♥♥♥♥\n",
	})

	tests := []struct {
		health int
		want   string
	}{
		{100, "HP ♥♥♥♥♥♥♥♥♥♥ 100/100"},
		{50, "HP ♥♥♥♥♥      50/100"},
		{10, "HP ♥          10/100"},
	}

	for _, tt := range tests {
		g := newSpriteGame(t, lib)
		g.player.Health = tt.health

		screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
		g.Render(screen)

		if row := screen.Row(0); !strings.Contains(row, tt.want) {
			t.Errorf("health %d: HUD row = %q, want %q", tt.health, row, tt.want)
		}
	}
}

func TestRenderEntitySprite(t *testing.T) {
	lib := spriteLibrary(t, map[string]string{
		assets.PlayerSprite: " /^\\ \n<=A=>\n",
	})
	g := newSpriteGame(t, lib)

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	// Ship (375, 550) 50x40 projects to cells x 37..42, rows 22..23; the
	// 5-wide sprite is centered at x 37.
	r := g.projection(screen).rect(g.player.Rect())
	if r != core.NewRect(37, 22, 6, 2) {
		t.Fatalf("projected rect = %+v", r)
	}
	if cell := screen.GetCell(37, 23); cell.Rune != '<' || cell.Color != core.ColorGreen {
		t.Errorf("sprite bottom-left = %q (color %d), want green '<'", cell.Rune, cell.Color)
	}
	if cell := screen.GetCell(38, 22); cell.Rune != '/' {
		t.Errorf("sprite top row = %q, want '/'", cell.Rune)
	}
	// Spaces are transparent, so no fallback glyph is painted.
	if strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("fallback glyph drawn although a sprite is loaded")
	}
}

func TestRenderBackgroundTiles(t *testing.T) {
	lib := spriteLibrary(t, map[string]string{
		assets.BackgroundSprite: "*  \n",
	})
	g := newSpriteGame(t, lib)

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	for _, pos := range [][2]int{{0, 1}, {3, 1}, {6, 5}, {78, 10}} {
		if cell := screen.GetCell(pos[0], pos[1]); cell.Rune != '*' || cell.Color != core.ColorGray {
			t.Errorf("cell %v = %q, want gray '*'", pos, cell.Rune)
		}
	}
	if cell := screen.GetCell(1, 1); cell.Rune != ' ' {
		t.Errorf("transparent cell painted: %q", cell.Rune)
	}
	if strings.ContainsRune(screen.Row(0), '*') {
		t.Errorf("background leaked into the HUD row: %q", screen.Row(0))
	}
}

// Package assets loads sprites and sound files from the asset directory.
// Every asset is optional: a missing or unreadable file is logged and
// reported, and callers draw or play a fallback instead.
package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultDir is the asset directory used when none is configured.
const DefaultDir = "assets"

// Sprite file names.
const (
	PlayerSprite     = "player.txt"
	EnemySprite      = "enemy.txt"
	AsteroidSprite   = "asteroid.txt"
	ShotSprite       = "shot.txt"
	EnemyShotSprite  = "enemy_shot.txt"
	HealthSprite     = "health.txt"
	BackgroundSprite = "background.txt"
)

// Sound file names.
const (
	ShootSound   = "shoot.wav"
	HitSound     = "hit.wav"
	LoseSound    = "lose.wav"
	VictorySound = "victory.wav"
)

// SpriteNames lists every sprite the game looks for, in load order.
var SpriteNames = []string{
	PlayerSprite,
	EnemySprite,
	AsteroidSprite,
	ShotSprite,
	EnemyShotSprite,
	HealthSprite,
	BackgroundSprite,
}

// maxSpriteBytes caps sprite files; anything larger is not a sprite.
const maxSpriteBytes = 64 << 10

// ErrEmpty is returned for sprite files without any visible character.
var ErrEmpty = errors.New("sprite has no visible cells")

// Sprite is a text image. Spaces are transparent.
type Sprite struct {
	Rows [][]rune
	W, H int
}

// Status records the outcome of loading one asset.
type Status struct {
	Name   string
	Path   string
	Loaded bool
	Err    error
}

// Library holds the sprites that loaded successfully.
// A nil sprite means the caller must draw its fallback.
type Library struct {
	dir     string
	sprites map[string]*Sprite
	report  []Status
}

// Load reads every known sprite from dir. It never fails: problems are
// logged as warnings and recorded in the report.
func Load(dir string, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Default()
	}
	lib := &Library{
		dir:     dir,
		sprites: make(map[string]*Sprite, len(SpriteNames)),
	}

	for _, name := range SpriteNames {
		path := Path(dir, name)
		sprite, err := LoadSprite(path)
		if err != nil {
			logger.Warn("sprite unavailable, using fallback", "file", path, "error", err)
			lib.report = append(lib.report, Status{Name: name, Path: path, Err: err})
			continue
		}
		logger.Debug("sprite loaded", "file", path, "w", sprite.W, "h", sprite.H)
		lib.sprites[name] = sprite
		lib.report = append(lib.report, Status{Name: name, Path: path, Loaded: true})
	}
	return lib
}

// Empty returns a library with no sprites, so every draw uses its fallback.
func Empty() *Library {
	return &Library{sprites: map[string]*Sprite{}}
}

// Sprite returns the named sprite, or nil if it did not load.
func (l *Library) Sprite(name string) *Sprite {
	if l == nil {
		return nil
	}
	return l.sprites[name]
}

// Dir returns the directory the library was loaded from.
func (l *Library) Dir() string {
	return l.dir
}

// Report returns the load status of every sprite.
func (l *Library) Report() []Status {
	return l.report
}

// Path joins the asset directory and a file name.
func Path(dir, name string) string {
	return filepath.Join(dir, name)
}

// LoadSprite reads a text sprite from disk.
func LoadSprite(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	sprite, err := ParseSprite(io.LimitReader(f, maxSpriteBytes))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}
	return sprite, nil
}

// ParseSprite reads a sprite: one row per line, tabs expanded to spaces,
// trailing blank lines dropped.
func ParseSprite(r io.Reader) (*Sprite, error) {
	var rows [][]rune
	visible := false
	width := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		line = strings.ReplaceAll(line, "\t", "    ")
		row := []rune(line)
		if strings.TrimSpace(line) != "" {
			visible = true
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrEmpty
	}

	// Drop trailing blank rows
	for len(rows) > 0 && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
	}

	return &Sprite{Rows: rows, W: width, H: len(rows)}, nil
}

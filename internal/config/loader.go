package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// configFile is the file name searched for in the config directories.
const configFile = "shooter.yaml"

// Load loads the shooter configuration.
// Search order: customPath -> ~/.tui-shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Only an explicit customPath may fail; the implicit locations fall through
// to the next candidate when missing or unparsable.
func Load(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults so partial files only override
// the keys they mention, then validates the result.
func parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	// A file that sets phases replaces the whole list.
	var probe struct {
		Phases []Phase `yaml:"phases"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return cfg, err
	}
	if len(probe.Phases) > 0 {
		cfg.Phases = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that a configuration can drive a playable game.
func Validate(cfg ShooterConfig) error {
	positive := []struct {
		name string
		val  int
	}{
		{"world.width", cfg.World.Width},
		{"world.height", cfg.World.Height},
		{"world.win_kills", cfg.World.WinKills},
		{"player.width", cfg.Player.Width},
		{"player.height", cfg.Player.Height},
		{"player.speed", cfg.Player.Speed},
		{"player.max_health", cfg.Player.MaxHealth},
		{"weapons.shot_speed", cfg.Weapons.ShotSpeed},
		{"weapons.shot_width", cfg.Weapons.ShotWidth},
		{"weapons.shot_height", cfg.Weapons.ShotHeight},
		{"weapons.enemy_shot_width", cfg.Weapons.EnemyShotWidth},
		{"weapons.enemy_shot_height", cfg.Weapons.EnemyShotHeight},
		{"enemies.width", cfg.Enemies.Width},
		{"enemies.height", cfg.Enemies.Height},
		{"asteroids.width", cfg.Asteroids.Width},
		{"asteroids.height", cfg.Asteroids.Height},
		{"asteroids.spawn_interval", cfg.Asteroids.SpawnInterval},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	damage := []struct {
		name string
		val  int
	}{
		{"damage.enemy_shot", cfg.Damage.EnemyShot},
		{"damage.enemy_body", cfg.Damage.EnemyBody},
		{"damage.asteroid_body", cfg.Damage.AsteroidBody},
	}
	for _, d := range damage {
		if d.val < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, d.name, d.val)
		}
	}

	if cfg.Weapons.Cooldown < 0 {
		return fmt.Errorf("%w: weapons.cooldown must not be negative", ErrInvalid)
	}
	if cfg.Weapons.EnemyAimDivisor == 0 {
		return fmt.Errorf("%w: weapons.enemy_aim_divisor must not be zero", ErrInvalid)
	}
	if cfg.Player.Width > cfg.World.Width || cfg.Player.Height > cfg.World.Height {
		return fmt.Errorf("%w: player does not fit in the world", ErrInvalid)
	}
	if cfg.Enemies.Width > cfg.World.Width || cfg.Asteroids.Width > cfg.World.Width {
		return fmt.Errorf("%w: enemies and asteroids must fit the world width", ErrInvalid)
	}

	if len(cfg.Phases) == 0 {
		return fmt.Errorf("%w: at least one phase is required", ErrInvalid)
	}
	prev := -1
	for i, ph := range cfg.Phases {
		if ph.EnemySpeed <= 0 || ph.SpawnInterval <= 0 || ph.ShotChance < 0 {
			return fmt.Errorf("%w: phase %d (%s) has non-positive speed or interval", ErrInvalid, i, ph.Name)
		}
		if i < len(cfg.Phases)-1 {
			if ph.MaxKills <= prev {
				return fmt.Errorf("%w: phase max_kills must increase, phase %d (%s)", ErrInvalid, i, ph.Name)
			}
			prev = ph.MaxKills
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-shooter", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
	case DifficultyNormal:
		cfg.Difficulty.Progression = true
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	case DifficultyEasy:
		cfg.Difficulty.Progression = true
		cfg.Player.MaxHealth = cfg.Player.MaxHealth * 3 / 2
		cfg.Weapons.Cooldown = cfg.Weapons.Cooldown * 3 / 4
	case DifficultyHard:
		cfg.Difficulty.Progression = true
		cfg.Player.MaxHealth = max(cfg.Player.MaxHealth*7/10, 1)
		cfg.Damage.AsteroidBody += 5
	default:
		return fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, preset)
	}
	return nil
}

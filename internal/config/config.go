// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all tunable parameters of the game.
// Distances are world units (pixels of the logical 800x600 field),
// speeds are units per tick, intervals and cooldowns are ticks.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Damage     DamageConfig     `yaml:"damage"`
	Phases     []Phase          `yaml:"phases"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	WinKills int `yaml:"win_kills"` // Kill count that ends the run in victory
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	MaxHealth    int `yaml:"max_health"`
	BottomMargin int `yaml:"bottom_margin"` // Gap between ship and bottom edge at spawn
}

// WeaponsConfig defines both player and enemy projectiles.
type WeaponsConfig struct {
	ShotSpeed       int     `yaml:"shot_speed"`
	ShotWidth       int     `yaml:"shot_width"`
	ShotHeight      int     `yaml:"shot_height"`
	Cooldown        int     `yaml:"cooldown"`
	EnemyShotSpeed  float64 `yaml:"enemy_shot_speed"`  // Fixed downward component
	EnemyAimDivisor float64 `yaml:"enemy_aim_divisor"` // Horizontal offset divisor
	EnemyShotWidth  int     `yaml:"enemy_shot_width"`
	EnemyShotHeight int     `yaml:"enemy_shot_height"`
}

// EnemyConfig defines enemy ship geometry and lifetime.
type EnemyConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnY      int `yaml:"spawn_y"`      // Y coordinate for new spawns (above the top)
	PruneMargin int `yaml:"prune_margin"` // Removed once y > world height + margin
}

// AsteroidConfig defines asteroid geometry, spawn rate and speed derivation.
type AsteroidConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	SpawnInterval int     `yaml:"spawn_interval"`
	SpeedScale    float64 `yaml:"speed_scale"` // speed = floor(enemySpeed*scale) + bonus
	SpeedBonus    int     `yaml:"speed_bonus"`
}

// DamageConfig defines damage dealt to the player.
type DamageConfig struct {
	EnemyShot    int `yaml:"enemy_shot"`
	EnemyBody    int `yaml:"enemy_body"`
	AsteroidBody int `yaml:"asteroid_body"`
}

// Phase is a difficulty tier selected by cumulative kill count.
type Phase struct {
	Name          string `yaml:"name"`
	MaxKills      int    `yaml:"max_kills"` // Inclusive upper bound; ignored for the last phase
	EnemySpeed    int    `yaml:"enemy_speed"`
	SpawnInterval int    `yaml:"spawn_interval"`
	ShotChance    int    `yaml:"shot_chance"` // Denominator: a roll of 0 in [0, n] fires
}

// DifficultyConfig controls phase progression.
type DifficultyConfig struct {
	Progression bool `yaml:"progression"` // false pins the game to the first phase
}

// InputConfig tunes how terminal key presses become held actions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key counts as held after its last press
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

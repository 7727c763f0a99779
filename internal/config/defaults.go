package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded default configuration.
// It mirrors defaults/shooter.yaml and is used if the embedded YAML fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			WinKills: 50,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       40,
			Speed:        6,
			MaxHealth:    100,
			BottomMargin: 10,
		},
		Weapons: WeaponsConfig{
			ShotSpeed:       12,
			ShotWidth:       6,
			ShotHeight:      14,
			Cooldown:        14,
			EnemyShotSpeed:  6,
			EnemyAimDivisor: 60,
			EnemyShotWidth:  6,
			EnemyShotHeight: 12,
		},
		Enemies: EnemyConfig{
			Width:       40,
			Height:      32,
			SpawnY:      -60,
			PruneMargin: 60,
		},
		Asteroids: AsteroidConfig{
			Width:         40,
			Height:        40,
			SpawnInterval: 90,
			SpeedScale:    1.4,
			SpeedBonus:    1,
		},
		Damage: DamageConfig{
			EnemyShot:    10,
			EnemyBody:    10,
			AsteroidBody: 15,
		},
		Phases: []Phase{
			{Name: "scouts", MaxKills: 20, EnemySpeed: 2, SpawnInterval: 50, ShotChance: 240},
			{Name: "raiders", MaxKills: 35, EnemySpeed: 3, SpawnInterval: 38, ShotChance: 180},
			{Name: "armada", MaxKills: 0, EnemySpeed: 4, SpawnInterval: 28, ShotChance: 120},
		},
		Difficulty: DifficultyConfig{
			Progression: true,
		},
		Input: InputConfig{
			HoldTicks: 18,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}

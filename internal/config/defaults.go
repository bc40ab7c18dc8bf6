package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the built-in doodle configuration.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Viewport: DoodleViewport{
			Width:  400,
			Height: 600,
		},
		Physics: DoodlePhysics{
			Gravity:      0.5,
			JumpImpulse:  15,
			MaxFallSpeed: 10,
			MoveStep:     5,
			BoostTimeout: 150,
		},
		Player: DoodlePlayer{
			Width:          10,
			Height:         20,
			DeathFallTicks: 150,
		},
		Scroll: DoodleScroll{
			MinY:        200,
			MaxY:        550,
			ScoreUpdate: 1,
		},
		Platforms: DoodlePlatforms{
			Width:          50,
			Count:          20,
			Spacing:        50,
			Speed:          1,
			HatChance:      0.1,
			HatOffset:      10,
			SpikeOutChance: 0.1,

			StillHeight:     5,
			MovingHeight:    7,
			BreakableHeight: 5,
			CloudHeight:     5,
			BounceHeight:    7,
			SpikedHeight:    20,
			HatWidth:        10,
			HatHeight:       7,
		},
		Animation: DoodleAnimation{
			Moving:    0.05,
			Breakable: 0.08,
			Spiked:    0.08,
			Cloud:     0.08,
			Bounce:    0.02,
			Hat:       0.05,
		},
		Spawn: SpawnConfig{
			Weights: map[int]float64{
				KindBounce:    20,
				KindStill:     15,
				KindMoving:    10,
				KindBreakable: 5,
				KindCloud:     4,
				KindSpiked:    1,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:  true,
			Interval: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDoodleYAML
}

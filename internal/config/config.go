// Package config provides YAML-based game configuration loading and the
// score-driven difficulty model for the doodle game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration cannot drive a game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Platform type ids used as spawn weight keys. The id doubles as the type
// index in the difficulty formula, so harder variants have larger ids.
const (
	KindBounce    = 0
	KindStill     = 1
	KindMoving    = 2
	KindBreakable = 3
	KindCloud     = 4
	KindSpiked    = 5
)

// DoodleConfig contains all configuration for the doodle game.
// Distances are world units; the world is scaled onto the terminal at render time.
type DoodleConfig struct {
	Viewport   DoodleViewport   `yaml:"viewport"`
	Physics    DoodlePhysics    `yaml:"physics"`
	Player     DoodlePlayer     `yaml:"player"`
	Scroll     DoodleScroll     `yaml:"scroll"`
	Platforms  DoodlePlatforms  `yaml:"platforms"`
	Animation  DoodleAnimation  `yaml:"animation"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DoodleViewport is the fixed world rectangle the camera shows.
type DoodleViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DoodlePhysics defines actor physics parameters.
type DoodlePhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveStep     float64 `yaml:"move_step"`
	BoostTimeout int     `yaml:"boost_timeout"` // Ticks of forced thrust per hat
}

// DoodlePlayer defines the actor hitbox and death rule.
type DoodlePlayer struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	DeathFallTicks int     `yaml:"death_fall_ticks"` // Continuous falling ticks before death
}

// DoodleScroll defines the vertical band that keeps the actor on screen.
type DoodleScroll struct {
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	ScoreUpdate int     `yaml:"score_update"` // Score gained per upward scroll tick
}

// DoodlePlatforms defines platform geometry and population.
type DoodlePlatforms struct {
	Width          float64 `yaml:"width"`
	Count          int     `yaml:"count"`   // Initial population
	Spacing        float64 `yaml:"spacing"` // Vertical distance between spawns
	Speed          float64 `yaml:"speed"`   // Horizontal speed of moving variants
	HatChance      float64 `yaml:"hat_chance"`
	HatOffset      float64 `yaml:"hat_offset"` // Hat center height above platform center
	SpikeOutChance float64 `yaml:"spike_out_chance"`

	StillHeight     float64 `yaml:"still_height"`
	MovingHeight    float64 `yaml:"moving_height"`
	BreakableHeight float64 `yaml:"breakable_height"`
	CloudHeight     float64 `yaml:"cloud_height"`
	BounceHeight    float64 `yaml:"bounce_height"`
	SpikedHeight    float64 `yaml:"spiked_height"`
	HatWidth        float64 `yaml:"hat_width"`
	HatHeight       float64 `yaml:"hat_height"`
}

// DoodleAnimation defines playback speeds in frames per tick.
type DoodleAnimation struct {
	Moving    float64 `yaml:"moving"`
	Breakable float64 `yaml:"breakable"`
	Spiked    float64 `yaml:"spiked"`
	Cloud     float64 `yaml:"cloud"`
	Bounce    float64 `yaml:"bounce"`
	Hat       float64 `yaml:"hat"`
}

// SpawnConfig holds the raw spawn weights keyed by platform type id.
type SpawnConfig struct {
	Weights map[int]float64 `yaml:"weights"`
}

// DifficultyConfig defines the spawn reweighting schedule.
type DifficultyConfig struct {
	Enabled  bool `yaml:"enabled"`
	Interval int  `yaml:"interval"` // Score multiple that triggers a reweight
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IntervalForPreset returns the reweight interval for a difficulty preset.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1000
	case DifficultyHard:
		return 250
	default:
		return 500
	}
}

// ApplyDoodlePreset modifies the config based on a difficulty preset.
func ApplyDoodlePreset(cfg *DoodleConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Interval = IntervalForPreset(preset)
}

// Validate reports the first setting that would break the simulation.
func (c DoodleConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %vx%v", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	// Spawns pick a whole-unit x offset, so at least one unit must be left over
	if c.Platforms.Width <= 0 || c.Platforms.Width > c.Viewport.Width-1 {
		return fmt.Errorf("%w: platform width %v must be in (0, %v]", ErrInvalidConfig, c.Platforms.Width, c.Viewport.Width-1)
	}
	if c.Platforms.Count <= 0 {
		return fmt.Errorf("%w: platform count must be positive", ErrInvalidConfig)
	}
	if c.Scroll.MinY >= c.Scroll.MaxY {
		return fmt.Errorf("%w: scroll band min_y %v must be below max_y %v", ErrInvalidConfig, c.Scroll.MinY, c.Scroll.MaxY)
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("%w: max_fall_speed must be positive", ErrInvalidConfig)
	}
	if c.Difficulty.Enabled && c.Difficulty.Interval <= 0 {
		return fmt.Errorf("%w: difficulty interval must be positive", ErrInvalidConfig)
	}

	total := 0.0
	for kind, w := range c.Spawn.Weights {
		if kind < KindBounce || kind > KindSpiked {
			return fmt.Errorf("%w: unknown platform type id %d", ErrInvalidConfig, kind)
		}
		if w < 0 {
			return fmt.Errorf("%w: negative weight for type %d", ErrInvalidConfig, kind)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("%w: spawn weights sum to zero", ErrInvalidConfig)
	}
	return nil
}

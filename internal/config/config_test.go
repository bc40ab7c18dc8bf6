package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/outcome"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseDoodle(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	def := DefaultDoodleConfig()
	if cfg.Physics != def.Physics {
		t.Errorf("physics differ: yaml=%+v hardcoded=%+v", cfg.Physics, def.Physics)
	}
	if cfg.Platforms != def.Platforms {
		t.Errorf("platforms differ: yaml=%+v hardcoded=%+v", cfg.Platforms, def.Platforms)
	}
	if cfg.Scroll != def.Scroll || cfg.Player != def.Player || cfg.Viewport != def.Viewport {
		t.Error("scroll, player or viewport differ between yaml and hardcoded defaults")
	}
	for kind, w := range def.Spawn.Weights {
		if cfg.Spawn.Weights[kind] != w {
			t.Errorf("weight[%d] = %v, expected %v", kind, cfg.Spawn.Weights[kind], w)
		}
	}
}

func TestLoadDoodleCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doodle.yaml")
	data := []byte("physics:\n  gravity: 0.75\nspawn:\n  weights:\n    1: 1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDoodle(path)
	if err != nil {
		t.Fatalf("LoadDoodle() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("Gravity = %v, expected override 0.75", cfg.Physics.Gravity)
	}
	// Keys not named keep their defaults
	if cfg.Physics.JumpImpulse != 15 {
		t.Errorf("JumpImpulse = %v, expected default 15", cfg.Physics.JumpImpulse)
	}
	if len(cfg.Spawn.Weights) != 1 || cfg.Spawn.Weights[KindStill] != 1 {
		t.Errorf("weights should be replaced wholesale, got %v", cfg.Spawn.Weights)
	}
}

func TestLoadDoodleErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed yaml", "physics: [", false},
		{"zero weights", "spawn:\n  weights:\n    0: 0\n    1: 0\n", true},
		{"negative weight", "spawn:\n  weights:\n    2: -1\n", true},
		{"unknown type id", "spawn:\n  weights:\n    9: 3\n", true},
		{"inverted scroll band", "scroll:\n  min_y: 600\n  max_y: 100\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadDoodle(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := LoadDoodle(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestValidatePlatformWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		wantErr bool
	}{
		{"default", 100, false},
		{"one unit to spare", 399, false},
		{"less than a unit to spare", 399.5, true},
		{"as wide as the viewport", 400, true},
		{"zero", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDoodleConfig()
			cfg.Viewport.Width = 400
			cfg.Platforms.Width = tc.width

			err := cfg.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyDoodlePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		interval int
	}{
		{DifficultyEasy, true, 1000},
		{DifficultyNormal, true, 500},
		{DifficultyHard, true, 250},
		{DifficultyFixed, false, 500},
	}

	for _, tc := range tests {
		cfg := DefaultDoodleConfig()
		ApplyDoodlePreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.Interval != tc.interval {
			t.Errorf("%s: got enabled=%v interval=%d", tc.preset, cfg.Difficulty.Enabled, cfg.Difficulty.Interval)
		}
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
}

func TestDifficultyReweightAt500(t *testing.T) {
	def := DefaultDoodleConfig()
	d, err := NewDifficultyModel(def.Difficulty, def.Spawn.Weights)
	if err != nil {
		t.Fatalf("NewDifficultyModel() failed: %v", err)
	}

	// Score 0 is a multiple of the interval but adds nothing
	if !d.Update(0) {
		t.Error("Update(0) should recompute")
	}
	if w := d.Weights()[KindSpiked]; w != 1 {
		t.Errorf("weight[5] after score 0 = %v, expected 1", w)
	}

	if d.Update(499) {
		t.Error("Update(499) should not reweight")
	}

	d.Update(500)
	weights := d.Weights()
	if weights[KindSpiked] != 6 {
		t.Errorf("weight[5] = %v, expected 1 + 1*5 = 6", weights[KindSpiked])
	}
	if weights[KindBounce] != 20 {
		t.Errorf("weight[0] = %v, expected unchanged 20", weights[KindBounce])
	}

	// 20 + 16 + 12 + 8 + 8 + 6
	sum := 70.0
	expected := 6 / sum
	if got := d.Probability(KindSpiked); math.Abs(got-expected) > 1e-12 {
		t.Errorf("p[5] = %v, expected %v", got, expected)
	}
}

func TestDifficultyAccumulatesWhileScoreHolds(t *testing.T) {
	def := DefaultDoodleConfig()
	d, err := NewDifficultyModel(def.Difficulty, def.Spawn.Weights)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		d.Update(1000)
	}
	if w := d.Weights()[KindSpiked]; w != 1+3*2*5 {
		t.Errorf("weight[5] = %v, expected 31", w)
	}
}

func TestDifficultyWeightsNeverDecrease(t *testing.T) {
	def := DefaultDoodleConfig()
	d, err := NewDifficultyModel(def.Difficulty, def.Spawn.Weights)
	if err != nil {
		t.Fatal(err)
	}

	prev := d.Weights()
	for score := 0; score <= 5000; score++ {
		d.Update(score)
		cur := d.Weights()
		for kind, w := range cur {
			if w < prev[kind] {
				t.Fatalf("score %d: weight[%d] dropped from %v to %v", score, kind, prev[kind], w)
			}
		}
		prev = cur
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d, err := NewDifficultyModel(DifficultyConfig{Enabled: false, Interval: 500}, map[int]float64{0: 1, 5: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d.Update(500) {
		t.Error("disabled model should not reweight")
	}
	if d.Probability(5) != 0.5 {
		t.Errorf("p[5] = %v, expected 0.5", d.Probability(5))
	}
}

func TestDifficultyZeroWeights(t *testing.T) {
	_, err := NewDifficultyModel(DifficultyConfig{Enabled: true, Interval: 500}, map[int]float64{0: 0})
	if !errors.Is(err, outcome.ErrDivideByZero) {
		t.Errorf("expected ErrDivideByZero, got %v", err)
	}
}

func TestDifficultyCopiesInput(t *testing.T) {
	weights := map[int]float64{0: 1, 5: 1}
	d, err := NewDifficultyModel(DifficultyConfig{Enabled: true, Interval: 500}, weights)
	if err != nil {
		t.Fatal(err)
	}
	d.Update(500)
	if weights[5] != 1 {
		t.Error("model must not mutate the caller's weights")
	}
}

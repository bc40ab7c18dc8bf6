package config

import (
	"maps"

	"github.com/vovakirdan/tui-doodle/internal/outcome"
)

// DifficultyModel owns the spawn weights and the distribution derived from them.
// Weights only grow: every reweight adds (score/interval) * typeID to each
// weight, biasing spawns toward the higher, harder type ids.
type DifficultyModel struct {
	cfg     DifficultyConfig
	weights map[int]float64
	dist    map[int]float64
}

// NewDifficultyModel creates a model from the configured schedule and initial
// weights. Fails with outcome.ErrDivideByZero when the weights sum to zero.
func NewDifficultyModel(cfg DifficultyConfig, weights map[int]float64) (*DifficultyModel, error) {
	w := maps.Clone(weights)
	dist, err := outcome.Normalize(w)
	if err != nil {
		return nil, err
	}
	return &DifficultyModel{
		cfg:     cfg,
		weights: w,
		dist:    dist,
	}, nil
}

// IsEnabled returns whether reweighting is active.
func (d *DifficultyModel) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Interval > 0
}

// Update reweights when score is an exact multiple of the interval.
// It runs on every tick, so a score that holds at a multiple keeps adding
// on each tick it is observed. Score 0 recomputes with a zero increase.
// Returns true if a reweight happened.
func (d *DifficultyModel) Update(score int) bool {
	if !d.IsEnabled() || score%d.cfg.Interval != 0 {
		return false
	}

	steps := float64(score / d.cfg.Interval)
	for kind := range d.weights {
		d.weights[kind] += steps * float64(kind)
	}

	// Weights never shrink, so the sum stays positive once construction succeeded
	if dist, err := outcome.Normalize(d.weights); err == nil {
		d.dist = dist
	}
	return true
}

// Distribution returns the current normalized spawn distribution.
// The map is owned by the model and must not be modified.
func (d *DifficultyModel) Distribution() map[int]float64 {
	return d.dist
}

// Weights returns a copy of the raw weights.
func (d *DifficultyModel) Weights() map[int]float64 {
	return maps.Clone(d.weights)
}

// Probability returns the current spawn probability of a type id.
func (d *DifficultyModel) Probability(kind int) float64 {
	return d.dist[kind]
}

package doodle

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// scripted returns the given draws in order, repeating the last one.
// Intn always returns 0.
type scripted struct {
	draws []float64
	i     int
}

func (s *scripted) Float64() float64 {
	v := s.draws[s.i]
	if s.i < len(s.draws)-1 {
		s.i++
	}
	return v
}

func (s *scripted) Intn(int) int { return 0 }

// fixedDist is a distribution that never changes.
type fixedDist map[int]float64

func (d fixedDist) Distribution() map[int]float64 { return d }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func newTestSession(t *testing.T, seed int64, l Listener) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultDoodleConfig(), DefaultAssets(), seeded(seed), l)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// clearAround moves every platform far above the viewport.
func clearAround(s *Session) {
	s.field.Scroll(-1e6)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 20, H: 20},
			b:        Box{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAnchors(t *testing.T) {
	b := BoxFromBottomLeft(Vec2{X: 10, Y: 100}, 50, 5)
	if b.Left() != 10 || b.Bottom() != 100 || b.Top() != 95 || b.Right() != 60 {
		t.Errorf("BoxFromBottomLeft edges = (%f, %f, %f, %f)", b.Left(), b.Top(), b.Right(), b.Bottom())
	}

	c := BoxFromCenter(Vec2{X: 200, Y: 300}, 10, 20)
	if c.X != 195 || c.Y != 290 {
		t.Errorf("BoxFromCenter origin = (%f, %f), expected (195, 290)", c.X, c.Y)
	}
	if got := c.Center(); got != (Vec2{X: 200, Y: 300}) {
		t.Errorf("Center() = %v, expected (200, 300)", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

package doodle

import "math"

// Snapshot is the session state reduced to integers for determinism checks.
// Positions are stored in thousandths of a world unit.
type Snapshot struct {
	Tick      uint64
	Score     int
	Dead      bool
	ActorX    int
	ActorY    int
	ActorVY   int
	FallTicks int
	Boosting  bool
	CursorX   int
	CursorY   int

	// Each platform is 3 ints: Kind, X, Y
	PlatformCount int
	PlatformData  []int

	// Raw spawn weights in type id order
	Weights []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	platforms := s.field.Platforms()
	data := make([]int, 0, len(platforms)*3)
	for _, p := range platforms {
		b := p.Box()
		data = append(data, int(p.Kind()), milli(b.X), milli(b.Y))
	}

	var weights []int
	w := s.difficulty.Weights()
	for _, k := range spawnableKinds {
		weights = append(weights, milli(w[int(k)]))
	}

	cursor := s.field.Cursor()
	return Snapshot{
		Tick:          s.tick,
		Score:         s.score,
		Dead:          s.dead,
		ActorX:        milli(s.actor.Pos.X),
		ActorY:        milli(s.actor.Pos.Y),
		ActorVY:       milli(s.actor.Vel.Y),
		FallTicks:     s.actor.FallTicks(),
		Boosting:      s.actor.Boosting(),
		CursorX:       milli(cursor.X),
		CursorY:       milli(cursor.Y),
		PlatformCount: len(platforms),
		PlatformData:  data,
		Weights:       weights,
	}
}

func boolInt(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorVY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FallTicks)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlatformCount) //#nosec G115 -- hash computation
	h = h*31 + boolInt(snap.Dead)
	h = h*31 + boolInt(snap.Boosting)

	for _, v := range snap.PlatformData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Weights {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

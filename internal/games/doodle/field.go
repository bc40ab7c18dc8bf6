package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/outcome"
)

// Rand is the randomness the field consumes. *math/rand.Rand satisfies it.
type Rand interface {
	outcome.RandomSource
	Intn(n int) int
}

// Distribution supplies the current spawn probabilities by type id.
type Distribution interface {
	Distribution() map[int]float64
}

// PlatformField owns the active platforms and the spawn cursor.
type PlatformField struct {
	cfg    config.DoodleConfig
	area   core.Box
	assets *AssetTable
	rng    Rand
	dist   Distribution

	platforms []Platform
	cursor    core.Vec2 // Bottom-left anchor of the next spawn
	lethal    bool      // Spiked platforms may request death
}

// NewPlatformField creates an empty field with the cursor at the bottom edge.
func NewPlatformField(cfg config.DoodleConfig, assets *AssetTable, rng Rand, dist Distribution, lethal bool) *PlatformField {
	f := &PlatformField{
		cfg:    cfg,
		area:   core.Box{W: cfg.Viewport.Width, H: cfg.Viewport.Height},
		assets: assets,
		rng:    rng,
		dist:   dist,
		lethal: lethal,
	}
	f.cursor = core.Vec2{X: f.randomX(), Y: f.area.Bottom()}
	return f
}

// Populate spawns n platforms.
func (f *PlatformField) Populate(n int) {
	for i := 0; i < n; i++ {
		f.SpawnNext()
	}
}

// SpawnNext builds one platform at the cursor and moves the cursor up.
func (f *PlatformField) SpawnNext() Platform {
	kind := Kind(outcome.Sample(f.dist.Distribution(), f.rng))
	hatRoll := f.rng.Float64()

	p := f.build(kind, f.cursor)
	f.platforms = append(f.platforms, p)

	if (kind == KindStill || kind == KindMoving) && hatRoll > 1-f.cfg.Platforms.HatChance {
		c := p.Box().Center()
		c.Y -= f.cfg.Platforms.HatOffset
		hat := newHat(c, f.cfg.Platforms.HatWidth, f.cfg.Platforms.HatHeight, f.assets.Hat, f.cfg.Animation.Hat)
		f.platforms = append(f.platforms, hat)
		if m, ok := p.(*Moving); ok {
			m.hat = hat
		}
	}

	f.cursor.X = f.randomX()
	f.cursor.Y -= f.cfg.Platforms.Spacing
	return p
}

// randomX returns a whole-unit x offset that keeps the platform in the area.
func (f *PlatformField) randomX() float64 {
	span := max(int(f.area.W-f.cfg.Platforms.Width), 1)
	return float64(f.rng.Intn(span))
}

func (f *PlatformField) build(kind Kind, at core.Vec2) Platform {
	pc := f.cfg.Platforms
	an := f.cfg.Animation
	frames := f.assets.Platforms[kind]
	g := glide{speed: pc.Speed, area: f.area}

	switch kind {
	case KindStill:
		return newStill(core.BoxFromBottomLeft(at, pc.Width, pc.StillHeight), frames)
	case KindBreakable:
		return newBreakable(core.BoxFromBottomLeft(at, pc.Width, pc.BreakableHeight), frames, an.Breakable)
	case KindCloud:
		return newCloud(core.BoxFromBottomLeft(at, pc.Width, pc.CloudHeight), frames, an.Cloud)
	case KindBounce:
		return newBounce(core.BoxFromBottomLeft(at, pc.Width, pc.BounceHeight), frames, an.Bounce)
	case KindSpiked:
		return newSpiked(core.BoxFromBottomLeft(at, pc.Width, pc.SpikedHeight), frames, an.Spiked, g,
			f.rng, pc.SpikeOutChance, f.cfg.Physics.Gravity, f.lethal)
	default:
		return newMoving(core.BoxFromBottomLeft(at, pc.Width, pc.MovingHeight), f.assets.Platforms[KindMoving], an.Moving, g)
	}
}

// Update advances every platform by one tick.
func (f *PlatformField) Update(q *Events) {
	for _, p := range f.platforms {
		p.Update(q)
	}
}

// Collide returns the first active platform overlapping box, or nil.
func (f *PlatformField) Collide(box core.Box) Platform {
	for _, p := range f.platforms {
		if !p.Removed() && p.Box().Intersects(box) {
			return p
		}
	}
	return nil
}

// Scroll shifts every platform and the spawn cursor down by offset.
func (f *PlatformField) Scroll(offset float64) {
	for _, p := range f.platforms {
		p.Shift(offset)
	}
	f.cursor.Y += offset
}

// Recycle drops platforms that removed themselves and replaces every
// platform whose top reached bottom with a fresh spawn.
// Returns the number of replacements. Panics if the field ends up empty.
func (f *PlatformField) Recycle(bottom float64) int {
	expired := 0
	kept := f.platforms[:0]
	for _, p := range f.platforms {
		switch {
		case p.Removed():
		case p.Box().Top() >= bottom:
			expired++
		default:
			kept = append(kept, p)
		}
	}
	clear(f.platforms[len(kept):])
	f.platforms = kept

	for i := 0; i < expired; i++ {
		f.SpawnNext()
	}
	if len(f.platforms) == 0 {
		panic("doodle: platform field is empty")
	}
	return expired
}

// Platforms returns the active platforms. The slice is owned by the field.
func (f *PlatformField) Platforms() []Platform {
	return f.platforms
}

// Cursor returns the spawn cursor.
func (f *PlatformField) Cursor() core.Vec2 {
	return f.cursor
}

// Len returns the number of platforms in the field.
func (f *PlatformField) Len() int {
	return len(f.platforms)
}

package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/outcome"
)

// Kind identifies a platform variant. Spawnable kinds share their ids with
// the spawn weight keys.
type Kind int

const (
	KindBounce    Kind = config.KindBounce
	KindStill     Kind = config.KindStill
	KindMoving    Kind = config.KindMoving
	KindBreakable Kind = config.KindBreakable
	KindCloud     Kind = config.KindCloud
	KindSpiked    Kind = config.KindSpiked
	KindHat       Kind = 6 // Only spawned on top of Still and Moving platforms
)

var spawnableKinds = []Kind{KindBounce, KindStill, KindMoving, KindBreakable, KindCloud, KindSpiked}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBounce:
		return "bounce"
	case KindStill:
		return "still"
	case KindMoving:
		return "moving"
	case KindBreakable:
		return "breakable"
	case KindCloud:
		return "cloud"
	case KindSpiked:
		return "spiked"
	case KindHat:
		return "hat"
	default:
		return "unknown"
	}
}

// Platform is anything the actor can land on.
// Collision responses are emitted as events; platforms never reach the actor.
type Platform interface {
	Kind() Kind
	Box() core.Box
	Frame() Frame
	// Update advances motion and animation by one tick.
	Update(q *Events)
	// OnCollision is called when the actor lands on the platform.
	OnCollision(q *Events)
	// Shift moves the platform vertically by dy.
	Shift(dy float64)
	// Removed reports that the platform asked to leave the field.
	Removed() bool
}

// body is the state every variant shares.
type body struct {
	box     core.Box
	anim    Animation
	removed bool
}

func (b *body) Box() core.Box { return b.box }
func (b *body) Frame() Frame { return b.anim.Current() }
func (b *body) Shift(dy float64) { b.box.Y += dy }
func (b *body) Removed() bool { return b.removed }
func (b *body) remove() { b.removed = true }
func (b *body) centerX() float64 { return b.box.Center().X }
func (b *body) setCenterX(x float64) { b.box.X = x - b.box.W/2 }

// glide moves a box horizontally and bounces it off the area walls.
type glide struct {
	speed float64
	area  core.Box
}

func (g *glide) move(box *core.Box) {
	box.X += g.speed
}

func (g *glide) bounce(box *core.Box) {
	if box.Right() > g.area.Right() {
		box.X = g.area.Right() - box.W
		g.speed = -g.speed
	} else if box.Left() < g.area.Left() {
		box.X = g.area.Left()
		g.speed = -g.speed
	}
}

// Still is a plain platform that makes the actor jump.
type Still struct {
	body
}

func newStill(box core.Box, frames []Frame) *Still {
	return &Still{body: body{box: box, anim: NewAnimation(frames[:1], 0)}}
}

func (p *Still) Kind() Kind { return KindStill }
func (p *Still) Update(*Events) {}
func (p *Still) OnCollision(q *Events) { q.Emit(JumpRequested, KindStill) }

// Moving glides between the walls, carrying its hat along.
type Moving struct {
	body
	glide
	hat *Hat
}

func newMoving(box core.Box, frames []Frame, animSpeed float64, g glide) *Moving {
	return &Moving{body: body{box: box, anim: NewAnimation(frames, animSpeed)}, glide: g}
}

func (p *Moving) Kind() Kind { return KindMoving }

func (p *Moving) Update(*Events) {
	p.move(&p.box)
	if p.hat != nil && !p.hat.Removed() {
		p.hat.setCenterX(p.centerX())
	}
	p.bounce(&p.box)
	p.anim.Advance()
}

func (p *Moving) OnCollision(q *Events) { q.Emit(JumpRequested, KindMoving) }

// Breakable gives one jump, asks for a replacement and crumbles.
type Breakable struct {
	body
	broken bool
}

func newBreakable(box core.Box, frames []Frame, animSpeed float64) *Breakable {
	return &Breakable{body: body{box: box, anim: NewAnimation(frames, animSpeed)}}
}

func (p *Breakable) Kind() Kind { return KindBreakable }

func (p *Breakable) Update(*Events) {
	if !p.broken {
		return
	}
	if p.anim.OnLastFrame() {
		p.remove()
		return
	}
	p.anim.Advance()
}

func (p *Breakable) OnCollision(q *Events) {
	if p.broken {
		return
	}
	q.Emit(JumpRequested, KindBreakable)
	q.Emit(SpawnRequested, KindBreakable)
	p.broken = true
}

// Broken reports whether the platform has been stepped on.
func (p *Breakable) Broken() bool { return p.broken }

// Cloud dissolves under the actor without a jump.
type Cloud struct {
	body
	dissolving bool
}

func newCloud(box core.Box, frames []Frame, animSpeed float64) *Cloud {
	return &Cloud{body: body{box: box, anim: NewAnimation(frames, animSpeed)}}
}

func (p *Cloud) Kind() Kind { return KindCloud }

func (p *Cloud) Update(*Events) {
	if !p.dissolving {
		return
	}
	if p.anim.OnLastFrame() {
		p.remove()
		return
	}
	p.anim.Advance()
}

func (p *Cloud) OnCollision(q *Events) {
	if p.dissolving {
		return
	}
	q.Emit(SpawnRequested, KindCloud)
	p.dissolving = true
}

// Dissolving reports whether the cloud has been touched.
func (p *Cloud) Dissolving() bool { return p.dissolving }

// Bounce launches the actor twice as high and can be reused.
type Bounce struct {
	body
	bouncing bool
}

func newBounce(box core.Box, frames []Frame, animSpeed float64) *Bounce {
	return &Bounce{body: body{box: box, anim: NewAnimation(frames, animSpeed)}}
}

func (p *Bounce) Kind() Kind { return KindBounce }

func (p *Bounce) Update(*Events) {
	if !p.bouncing {
		return
	}
	if _, wrapped := p.anim.Advance(); wrapped {
		p.bouncing = false
	}
}

func (p *Bounce) OnCollision(q *Events) {
	q.Emit(BigJumpRequested, KindBounce)
	p.bouncing = true
}

// Bouncing reports whether the spring animation is playing.
func (p *Bounce) Bouncing() bool { return p.bouncing }

// Spiked glides like Moving until first touched. The touch usually acts as a
// jump; with a small chance it kills the actor if lethal spikes are enabled.
// A triggered platform falls under gravity while keeping its drift.
type Spiked struct {
	body
	glide
	rng       outcome.RandomSource
	threshold float64 // Draws above it spike out
	lethal    bool
	gravity   float64
	fall      float64
	triggered bool
}

func newSpiked(box core.Box, frames []Frame, animSpeed float64, g glide, rng outcome.RandomSource, spikeOutChance, gravity float64, lethal bool) *Spiked {
	return &Spiked{
		body:      body{box: box, anim: NewAnimation(frames, animSpeed)},
		glide:     g,
		rng:       rng,
		threshold: 1 - spikeOutChance,
		lethal:    lethal,
		gravity:   gravity,
	}
}

func (p *Spiked) Kind() Kind { return KindSpiked }

func (p *Spiked) Update(*Events) {
	if p.triggered {
		p.fall += p.gravity
		p.box.X += p.speed
		p.box.Y += p.fall
		return
	}
	p.move(&p.box)
	p.bounce(&p.box)
	p.anim.Advance()
}

func (p *Spiked) OnCollision(q *Events) {
	if p.triggered {
		return
	}
	if p.rng.Float64() > p.threshold && p.lethal {
		q.Emit(DeathRequested, KindSpiked)
	} else {
		q.Emit(JumpRequested, KindSpiked)
	}
	p.triggered = true
}

// Triggered reports whether the spikes have fired.
func (p *Spiked) Triggered() bool { return p.triggered }

// Hat sits above a platform and grants a boost when collected.
type Hat struct {
	body
}

func newHat(center core.Vec2, w, h float64, frames []Frame, animSpeed float64) *Hat {
	return &Hat{body: body{box: core.BoxFromCenter(center, w, h), anim: NewAnimation(frames, animSpeed)}}
}

func (p *Hat) Kind() Kind { return KindHat }

func (p *Hat) Update(*Events) { p.anim.Advance() }

func (p *Hat) OnCollision(q *Events) {
	if p.removed {
		return
	}
	q.Emit(HatAttachRequested, KindHat)
	p.remove()
}

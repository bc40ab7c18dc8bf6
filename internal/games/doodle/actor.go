package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Facing is the direction the actor sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
	FacingFront
)

// HatOverlay is the hat drawn on the actor's head while boosting.
type HatOverlay struct {
	anim Animation
}

// NewHatOverlay creates a looping hat overlay.
func NewHatOverlay(frames []Frame, speed float64) *HatOverlay {
	return &HatOverlay{anim: NewAnimation(frames, speed)}
}

// Frame returns the hat frame to draw.
func (h *HatOverlay) Frame() Frame {
	return h.anim.Current()
}

// Actor is the player-controlled body. Positions are the sprite center in
// world units; y grows downward.
type Actor struct {
	Pos core.Vec2
	Vel core.Vec2

	area    core.Box
	w, h    float64
	physics config.DoodlePhysics

	boosting   bool
	boostTicks int
	fallTicks  int
	facing     Facing
	hat        *HatOverlay
}

// NewActor places an actor at the center of area.
func NewActor(area core.Box, physics config.DoodlePhysics, player config.DoodlePlayer) *Actor {
	return &Actor{
		Pos:     area.Center(),
		area:    area,
		w:       player.Width,
		h:       player.Height,
		physics: physics,
	}
}

// Update integrates one tick: horizontal input, boost or gravity,
// velocity clamp, position, fall timer and horizontal wrap.
func (a *Actor) Update(in core.InputFrame) {
	step := a.physics.MoveStep
	if in.Has(core.ActionRight) {
		a.Pos.X += step
		if !a.boosting {
			a.facing = FacingRight
		}
	} else if in.Has(core.ActionLeft) {
		a.Pos.X -= step
		if !a.boosting {
			a.facing = FacingLeft
		}
	}

	if a.boosting {
		a.Vel.Y = -a.physics.JumpImpulse
		if a.boostTicks > a.physics.BoostTimeout {
			a.endBoost()
		} else {
			a.boostTicks++
		}
	} else {
		a.Vel.Y += a.physics.Gravity
	}

	if a.Vel.Y > a.physics.MaxFallSpeed {
		a.Vel.Y = a.physics.MaxFallSpeed
	}
	a.Pos = a.Pos.Add(a.Vel)

	if a.Vel.Y > 0 {
		a.fallTicks++
	} else {
		a.fallTicks = 0
	}

	if a.hat != nil {
		a.hat.anim.Advance()
	}
	a.KeepInArea()
}

func (a *Actor) endBoost() {
	a.boosting = false
	a.boostTicks = 0
	a.Vel.Y = 0
	a.facing = FacingRight
	a.hat = nil
}

// KeepInArea wraps the actor horizontally around the area edges.
func (a *Actor) KeepInArea() {
	if a.Pos.X < a.area.Left() {
		a.Pos.X = a.area.Right()
	} else if a.Pos.X > a.area.Right() {
		a.Pos.X = a.area.Left()
	}
}

// Jump sets the vertical velocity to the jump impulse.
func (a *Actor) Jump() {
	a.Vel.Y = -a.physics.JumpImpulse
}

// BigJump sets the vertical velocity to twice the jump impulse.
func (a *Actor) BigJump() {
	a.Vel.Y = -2 * a.physics.JumpImpulse
}

// Boost enters the boosting state. A boost already in progress keeps its timer.
func (a *Actor) Boost() {
	if a.boosting {
		return
	}
	a.boosting = true
	a.boostTicks = 0
	a.facing = FacingFront
}

// AttachHat puts a hat overlay on the actor, replacing any previous one.
func (a *Actor) AttachHat(h *HatOverlay) {
	a.hat = h
}

// Box returns the actor's bounding box.
func (a *Actor) Box() core.Box {
	return core.BoxFromCenter(a.Pos, a.w, a.h)
}

// Boosting reports whether the actor is in a boost.
func (a *Actor) Boosting() bool { return a.boosting }

// BoostTicks returns how long the current boost has lasted.
func (a *Actor) BoostTicks() int { return a.boostTicks }

// FallTicks returns the number of consecutive ticks with downward velocity.
func (a *Actor) FallTicks() int { return a.fallTicks }

// Facing returns the sprite direction.
func (a *Actor) Facing() Facing { return a.facing }

// Hat returns the worn hat, or nil.
func (a *Actor) Hat() *HatOverlay { return a.hat }

package doodle

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// ErrMissingCollaborator is returned when a session is built without a
// required dependency.
var ErrMissingCollaborator = errors.New("doodle: missing collaborator")

const bannerTicks = 90

// Listener receives session notifications. Both callbacks are optional.
// Without OnDeath spikes are never lethal. Callbacks must not call back
// into the session.
type Listener struct {
	OnScoreIncrease func(total int)
	OnDeath         func()
}

// Session runs one play-through: actor, platforms, score and difficulty.
type Session struct {
	cfg      config.DoodleConfig
	area     core.Box
	assets   *AssetTable
	listener Listener

	actor      *Actor
	field      *PlatformField
	difficulty *config.DifficultyModel
	events     Events
	alarms     Alarms

	tick  uint64
	score int
	dead  bool

	banner      string
	bannerGen   int
	harderShown int
}

// NewSession validates its collaborators and seeds the initial platforms.
func NewSession(cfg config.DoodleConfig, assets *AssetTable, rng Rand, l Listener) (*Session, error) {
	if assets == nil {
		return nil, fmt.Errorf("%w: asset table", ErrMissingCollaborator)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source", ErrMissingCollaborator)
	}
	if err := assets.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	difficulty, err := config.NewDifficultyModel(cfg.Difficulty, cfg.Spawn.Weights)
	if err != nil {
		return nil, fmt.Errorf("config: spawn weights: %w", err)
	}

	area := core.Box{W: cfg.Viewport.Width, H: cfg.Viewport.Height}
	s := &Session{
		cfg:        cfg,
		area:       area,
		assets:     assets,
		listener:   l,
		actor:      NewActor(area, cfg.Physics, cfg.Player),
		difficulty: difficulty,
	}
	s.field = NewPlatformField(cfg, assets, rng, difficulty, l.OnDeath != nil)
	s.field.Populate(cfg.Platforms.Count)
	return s, nil
}

// Tick advances the session by one frame. It does nothing after death.
func (s *Session) Tick(in core.InputFrame) {
	if s.dead {
		return
	}
	s.tick++
	s.alarms.Fire(s.tick)

	s.actor.Update(in)
	s.field.Update(&s.events)
	s.dispatch()
	if s.dead {
		return
	}

	s.resolveCollision()
	s.dispatch()
	if s.dead {
		return
	}

	s.scroll()
	s.field.Recycle(s.area.Bottom())

	if s.difficulty.Update(s.score) && s.score > 0 && s.score != s.harderShown {
		s.harderShown = s.score
		s.showBanner("HARDER!")
	}

	if s.actor.FallTicks() > s.cfg.Player.DeathFallTicks {
		s.die()
	}
}

func (s *Session) resolveCollision() {
	if s.actor.Vel.Y <= 0 {
		return
	}
	if p := s.field.Collide(s.actor.Box()); p != nil {
		p.OnCollision(&s.events)
	}
}

// dispatch applies queued platform events in order.
func (s *Session) dispatch() {
	for _, e := range s.events.Drain() {
		if s.dead {
			return
		}
		switch e.Kind {
		case JumpRequested:
			s.actor.Jump()
		case BigJumpRequested:
			s.actor.BigJump()
		case HatAttachRequested:
			s.actor.AttachHat(NewHatOverlay(s.assets.Hat, s.cfg.Animation.Hat))
			s.actor.Boost()
			s.showBanner("BOOST!")
		case SpawnRequested:
			s.field.SpawnNext()
		case DeathRequested:
			s.die()
		}
	}
}

func (s *Session) scroll() {
	offset := -s.actor.Vel.Y
	sc := s.cfg.Scroll

	switch {
	case s.actor.Pos.Y < sc.MinY:
		s.actor.Pos.Y = sc.MinY
		s.field.Scroll(offset)
		s.score += sc.ScoreUpdate
		if s.listener.OnScoreIncrease != nil {
			s.listener.OnScoreIncrease(s.score)
		}
	case s.actor.Pos.Y > sc.MaxY:
		s.actor.Pos.Y = sc.MaxY
		s.field.Scroll(offset)
	}
}

func (s *Session) die() {
	if s.dead {
		return
	}
	s.dead = true
	s.alarms.Clear()
	if s.listener.OnDeath != nil {
		s.listener.OnDeath()
	}
}

// showBanner displays text in the HUD for a short while.
func (s *Session) showBanner(text string) {
	s.banner = text
	s.bannerGen++
	gen := s.bannerGen
	s.alarms.After(s.tick, bannerTicks, func() {
		if s.bannerGen == gen {
			s.banner = ""
		}
	})
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Dead reports whether the run has ended.
func (s *Session) Dead() bool { return s.dead }

// Ticks returns the number of ticks simulated.
func (s *Session) Ticks() uint64 { return s.tick }

// Banner returns the HUD banner text, or "" when none is showing.
func (s *Session) Banner() string { return s.banner }

// Actor returns the player body.
func (s *Session) Actor() *Actor { return s.actor }

// Field returns the platform field.
func (s *Session) Field() *PlatformField { return s.field }

// Difficulty returns the spawn difficulty model.
func (s *Session) Difficulty() *config.DifficultyModel { return s.difficulty }

// Area returns the world rectangle.
func (s *Session) Area() core.Box { return s.area }

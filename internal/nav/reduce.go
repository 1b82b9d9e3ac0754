package nav

import (
	"math"

	"github.com/idilsaglam/swipequiz/internal/motion"
)

// Event is one item of the gesture/animation stream.
type Event interface{ isEvent() }

// GestureBegin starts a drag.
type GestureBegin struct{}

// GestureUpdate carries the cumulative translation since the drag began and
// the instantaneous velocity.
type GestureUpdate struct {
	Translation float64
	Velocity    float64
}

// GestureEnd carries the final translation and velocity of a drag.
type GestureEnd struct {
	Translation float64
	Velocity    float64
}

// AnimationFrame reports the animated offset for the current frame.
type AnimationFrame struct{ Value float64 }

// AnimationSettled reports that the running spring came to rest.
type AnimationSettled struct{}

func (GestureBegin) isEvent()     {}
func (GestureUpdate) isEvent()    {}
func (GestureEnd) isEvent()       {}
func (AnimationFrame) isEvent()   {}
func (AnimationSettled) isEvent() {}

type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectCancel
	EffectAnimate
)

// Effect asks the animation driver to do something.
type Effect struct {
	Kind     EffectKind
	Target   float64
	Velocity float64
	Spring   motion.Spring
}

// Reduce is the navigation state machine. It is total: events that make no
// sense in the current phase leave the state unchanged.
func Reduce(s State, ev Event, p Params) (State, Effect) {
	switch e := ev.(type) {
	case GestureBegin:
		var eff Effect
		switch s.Phase {
		case PhaseCommitting:
			// The swipe already committed; grabbing the next card lands it.
			s.Index = s.step(s.Pending)
			s.Offset = 0
			eff = Effect{Kind: EffectCancel}
		case PhaseReturning:
			eff = Effect{Kind: EffectCancel}
		}
		s.Phase = PhaseDragging
		return s, eff

	case GestureUpdate:
		if s.Phase != PhaseDragging {
			return s, Effect{}
		}
		s.Offset = e.Translation
		return s, Effect{}

	case GestureEnd:
		if s.Phase != PhaseDragging {
			return s, Effect{}
		}
		s.Offset = e.Translation
		dir := direction(s.Offset, e.Velocity)
		if s.allowed(dir) && exceeds(s.Offset, e.Velocity, p) {
			target := -p.ViewportWidth
			if dir == Previous {
				target = p.ViewportWidth
			}
			s.Phase = PhaseCommitting
			s.Pending = dir
			return s, Effect{Kind: EffectAnimate, Target: target, Velocity: e.Velocity, Spring: p.Commit}
		}
		s.Phase = PhaseReturning
		return s, Effect{Kind: EffectAnimate, Target: 0, Velocity: e.Velocity, Spring: p.Return}

	case AnimationFrame:
		if s.Phase == PhaseCommitting || s.Phase == PhaseReturning {
			s.Offset = e.Value
		}
		return s, Effect{}

	case AnimationSettled:
		switch s.Phase {
		case PhaseCommitting:
			s.Index = s.step(s.Pending)
		case PhaseReturning:
		default:
			return s, Effect{}
		}
		s.Offset = 0
		s.Phase = PhaseIdle
		return s, Effect{}
	}
	return s, Effect{}
}

// direction follows the card: dragged right means previous. A drag that
// ends exactly at rest is decided by the flick velocity.
func direction(offset, velocity float64) Direction {
	switch {
	case offset > 0:
		return Previous
	case offset < 0:
		return Next
	case velocity > 0:
		return Previous
	}
	return Next
}

func exceeds(offset, velocity float64, p Params) bool {
	return math.Abs(velocity) > p.VelocityThreshold || math.Abs(offset) > p.DistanceThreshold()
}

// allowed reports whether a commit in dir is possible. Next always is, since
// it wraps; previous stops at the first card.
func (s State) allowed(dir Direction) bool {
	return dir == Next || s.Index > 0
}

func (s State) step(dir Direction) int {
	if dir == Previous {
		if s.Index > 0 {
			return s.Index - 1
		}
		return s.Index
	}
	return (s.Index + 1) % s.Count
}

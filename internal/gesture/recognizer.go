// Package gesture recognizes horizontal pan gestures from raw pointer
// samples.
package gesture

import (
	"math"
	"time"
)

type Kind int

const (
	Begin Kind = iota
	Update
	End
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "begin"
	case Update:
		return "update"
	case End:
		return "end"
	}
	return "unknown"
}

// Event is a recognized pan event. Translation is cumulative from the press
// point; Velocity is in units per second.
type Event struct {
	Kind        Kind
	Translation float64
	Velocity    float64
}

// staleAfter is how long a pointer may rest before its velocity is treated
// as zero on release.
const staleAfter = 100 * time.Millisecond

// Recognizer turns press/move/release samples into pan events. A pan only
// becomes active once the pointer has travelled ActivationOffset from the
// press point, so micro-movements never start a drag.
type Recognizer struct {
	ActivationOffset float64

	pressed  bool
	active   bool
	originX  float64
	lastX    float64
	lastT    time.Time
	velocity float64
}

func New(activationOffset float64) *Recognizer {
	return &Recognizer{ActivationOffset: activationOffset}
}

// Active reports whether a pan is in progress.
func (r *Recognizer) Active() bool { return r.active }

// Press starts tracking a pointer. It never emits.
func (r *Recognizer) Press(x float64, t time.Time) []Event {
	r.pressed = true
	r.active = false
	r.originX = x
	r.lastX = x
	r.lastT = t
	r.velocity = 0
	return nil
}

// Move samples the pointer. It emits Begin followed by Update when the pan
// activates, and Update on every later sample.
func (r *Recognizer) Move(x float64, t time.Time) []Event {
	if !r.pressed {
		return nil
	}
	r.sample(x, t, false)
	translation := x - r.originX
	if !r.active {
		if math.Abs(translation) < r.ActivationOffset {
			return nil
		}
		r.active = true
		return []Event{
			{Kind: Begin},
			{Kind: Update, Translation: translation, Velocity: r.velocity},
		}
	}
	return []Event{{Kind: Update, Translation: translation, Velocity: r.velocity}}
}

// Release ends tracking. An active pan emits End; a press that never
// activated emits nothing.
func (r *Recognizer) Release(x float64, t time.Time) []Event {
	if !r.pressed {
		return nil
	}
	r.sample(x, t, true)
	var out []Event
	if r.active {
		out = []Event{{Kind: End, Translation: x - r.originX, Velocity: r.velocity}}
	}
	r.pressed = false
	r.active = false
	return out
}

// Cancel drops the current pointer. An active pan still needs to be ended so
// the card can return to rest.
func (r *Recognizer) Cancel() []Event {
	if !r.active {
		r.pressed = false
		return nil
	}
	return r.Release(r.lastX, r.lastT)
}

func (r *Recognizer) sample(x float64, t time.Time, release bool) {
	dt := t.Sub(r.lastT)
	switch {
	case dt <= 0:
		// same instant: keep the last estimate
	case x != r.lastX:
		r.velocity = (x - r.lastX) / dt.Seconds()
	case release && dt > staleAfter:
		r.velocity = 0
	}
	r.lastX = x
	r.lastT = t
}

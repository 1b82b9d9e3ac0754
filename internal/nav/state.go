// Package nav turns horizontal swipe gestures into card navigation.
//
// Gesture and animation callbacks arrive as a serial stream of Events. Reduce
// folds each one into a State and returns at most one Effect for the
// animation driver; Controller wires Reduce to a concrete Animator.
package nav

import (
	"fmt"

	"github.com/idilsaglam/swipequiz/internal/motion"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseReturning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	case PhaseReturning:
		return "returning"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Direction of a swipe. A card dragged left reveals the next question,
// a card dragged right the previous one.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// State is the whole navigation state. Index is always in [0, Count).
// Offset is the signed horizontal displacement of the current card and is 0
// whenever Phase is idle.
type State struct {
	Index   int
	Count   int
	Offset  float64
	Phase   Phase
	Pending Direction // set while committing
}

// PreviewIndex is the card shown behind the current one. It is always the
// forward neighbour, whichever way the user drags.
func (s State) PreviewIndex() int {
	return (s.Index + 1) % s.Count
}

// Params are the thresholds and springs that shape navigation.
type Params struct {
	ViewportWidth     float64
	DistanceFraction  float64 // of ViewportWidth
	VelocityThreshold float64 // cells per second
	Commit            motion.Spring
	Return            motion.Spring
}

// DefaultParams matches the feel of the sample app: a swipe past 15% of the
// width, or a fast flick, commits.
func DefaultParams(width float64) Params {
	return Params{
		ViewportWidth:     width,
		DistanceFraction:  0.15,
		VelocityThreshold: 120,
		Commit:            motion.CommitSpring(),
		Return:            motion.ReturnSpring(),
	}
}

// DistanceThreshold is the offset a drag must exceed to commit.
func (p Params) DistanceThreshold() float64 {
	return p.DistanceFraction * p.ViewportWidth
}

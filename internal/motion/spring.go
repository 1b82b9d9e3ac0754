// Package motion animates a single scalar with damped-spring physics.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring describes a damped oscillator in mass/stiffness/damping terms.
// Rest thresholds decide when a running animation is considered settled.
type Spring struct {
	Damping                   float64
	Mass                      float64
	Stiffness                 float64
	OvershootClamping         bool
	RestSpeedThreshold        float64
	RestDisplacementThreshold float64
}

// DefaultSpring is the base motion used by every transition.
func DefaultSpring() Spring {
	return Spring{
		Damping:                   40,
		Mass:                      0.15,
		Stiffness:                 150,
		OvershootClamping:         true,
		RestSpeedThreshold:        0.3,
		RestDisplacementThreshold: 0.3,
	}
}

// CommitSpring flings a card off the viewport.
func CommitSpring() Spring {
	s := DefaultSpring()
	s.Damping = 30
	s.Stiffness = 200
	return s
}

// ReturnSpring brings a card back to rest.
func ReturnSpring() Spring {
	s := DefaultSpring()
	s.Stiffness = 300
	return s
}

// AngularFrequency is sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	if s.Mass <= 0 || s.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)).
func (s Spring) DampingRatio() float64 {
	if s.Mass <= 0 || s.Stiffness <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Driver runs at most one animation at a time. Not safe for concurrent use;
// it is stepped from the UI event loop.
type Driver struct {
	value    float64
	velocity float64
	target   float64
	spring   Spring
	side     float64 // sign of (target - value) when started
	active   bool
}

// Start replaces any running animation. velocity seeds the motion in
// units per second.
func (d *Driver) Start(from, to, velocity float64, s Spring) {
	d.value = from
	d.velocity = velocity
	d.target = to
	d.spring = s
	d.side = sign(to - from)
	d.active = true
}

// Step advances the animation by dt and reports the new value. settled is
// true exactly once, on the step that finishes the animation.
func (d *Driver) Step(dt time.Duration) (value float64, settled bool) {
	if !d.active || dt <= 0 {
		return d.value, false
	}
	sp := harmonica.NewSpring(dt.Seconds(), d.spring.AngularFrequency(), d.spring.DampingRatio())
	d.value, d.velocity = sp.Update(d.value, d.velocity, d.target)

	if d.spring.OvershootClamping && d.side != 0 && sign(d.target-d.value) != d.side {
		return d.settle(), true
	}
	if math.Abs(d.velocity) < d.spring.RestSpeedThreshold &&
		math.Abs(d.target-d.value) < d.spring.RestDisplacementThreshold {
		return d.settle(), true
	}
	return d.value, false
}

func (d *Driver) settle() float64 {
	d.value = d.target
	d.velocity = 0
	d.active = false
	return d.value
}

// Cancel stops the animation where it is. No settle is reported.
func (d *Driver) Cancel() {
	d.active = false
	d.velocity = 0
}

func (d *Driver) Active() bool    { return d.active }
func (d *Driver) Value() float64  { return d.value }
func (d *Driver) Target() float64 { return d.target }

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

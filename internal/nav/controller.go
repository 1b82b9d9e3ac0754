package nav

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/swipequiz/internal/motion"
)

var ErrNoQuestions = errors.New("navigation needs at least one question")

// Animator is the spring driver the controller delegates motion to.
// *motion.Driver satisfies it.
type Animator interface {
	Start(from, to, velocity float64, s motion.Spring)
	Step(dt time.Duration) (value float64, settled bool)
	Cancel()
	Active() bool
}

// Controller owns the navigation state for one deck.
type Controller struct {
	state  State
	params Params
	anim   Animator
	log    *zap.Logger
}

func New(count int, params Params, anim Animator, log *zap.Logger) (*Controller, error) {
	if count < 1 {
		return nil, ErrNoQuestions
	}
	if anim == nil {
		anim = &motion.Driver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		state:  State{Count: count},
		params: params,
		anim:   anim,
		log:    log,
	}, nil
}

func (c *Controller) State() State   { return c.state }
func (c *Controller) Params() Params { return c.params }

// Frame derives the render values for the current state.
func (c *Controller) Frame() Frame {
	return Derive(c.state, c.params.ViewportWidth)
}

// SetViewportWidth updates the width used for thresholds, fly-off targets
// and progress.
func (c *Controller) SetViewportWidth(w float64) {
	c.params.ViewportWidth = w
}

// Animating reports whether a spring is in flight.
func (c *Controller) Animating() bool { return c.anim.Active() }

// Handle folds one event into the state and applies the resulting effect.
func (c *Controller) Handle(ev Event) {
	prev := c.state
	next, eff := Reduce(c.state, ev, c.params)
	c.state = next

	switch eff.Kind {
	case EffectCancel:
		c.anim.Cancel()
		c.log.Debug("animation interrupted by new gesture",
			zap.Stringer("phase", prev.Phase),
			zap.Int("index", next.Index))
	case EffectAnimate:
		c.anim.Start(next.Offset, eff.Target, eff.Velocity, eff.Spring)
	}

	if next.Index != prev.Index {
		c.log.Info("question changed",
			zap.Int("from", prev.Index),
			zap.Int("to", next.Index),
			zap.Stringer("direction", prev.Pending))
	}
}

// Tick advances the running animation by dt and feeds its value back
// through the reducer.
func (c *Controller) Tick(dt time.Duration) {
	if !c.anim.Active() {
		return
	}
	v, settled := c.anim.Step(dt)
	c.Handle(AnimationFrame{Value: v})
	if settled {
		c.Handle(AnimationSettled{})
	}
}

// Fling drives a complete synthetic swipe in dir, as a keyboard shortcut
// would. It takes the same path as a real drag released where the card
// currently is, with a velocity above the threshold.
func (c *Controller) Fling(dir Direction) {
	v := 2 * c.params.VelocityThreshold
	if dir == Next {
		v = -v
	}
	c.Handle(GestureBegin{})
	t := c.state.Offset
	if (dir == Next && t > 0) || (dir == Previous && t < 0) {
		t = 0
	}
	c.Handle(GestureEnd{Translation: t, Velocity: v})
}

package animation

import (
	"math"
	"time"
)

// AnimationController sweeps Value from LowerBound to UpperBound once per
// Duration, restarting at LowerBound after every cycle, for as long as it
// repeats. Curve eases each sweep.
//
// Controllers are not safe for concurrent use; drive them from the UI thread.
// Call Dispose when done to release the ticker.
type AnimationController struct {
	Value                  float64
	Duration               time.Duration // one cycle
	Curve                  func(float64) float64
	LowerBound, UpperBound float64

	ticker         *Ticker
	repeating      bool
	haltCycle      float64 // cycle count at which a repeating run ends; 0 = never
	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates an idle controller at the lower bound.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:   duration,
		UpperBound: 1,
		Curve:      LinearCurve,
		listeners:  make(map[int]func()),
	}
}

// Repeat animates from the lower to the upper bound forever, jumping back to
// the lower bound at the end of every cycle.
//
// Calling Repeat on a controller that is already repeating is a no-op, except
// that it cancels a pending StopAfterCycle.
func (c *AnimationController) Repeat() {
	if c.repeating && c.ticker != nil {
		c.haltCycle = 0
		return
	}
	c.Stop()
	c.repeating = true
	c.Value = c.LowerBound
	c.notifyListeners()
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

// StopAfterCycle lets a repeating animation run to the end of its current
// cycle and then halt at the upper bound. It does nothing if the controller is
// not repeating or a halt is already pending.
func (c *AnimationController) StopAfterCycle() {
	if !c.repeating || c.ticker == nil || c.haltCycle > 0 {
		return
	}
	if c.Duration <= 0 {
		c.finish()
		return
	}
	c.haltCycle = math.Floor(c.cycles(c.ticker.Elapsed())) + 1
}

// IsRepeating reports whether the controller is in a repeating run whose
// halt has not been requested.
func (c *AnimationController) IsRepeating() bool {
	return c.repeating && c.haltCycle == 0
}

// IsAnimating reports whether a ticker is driving the controller.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// Stop freezes the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.repeating = false
	c.haltCycle = 0
}

// cycles is elapsed measured in Durations.
func (c *AnimationController) cycles(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(c.Duration)
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.finish()
		return
	}
	n := c.cycles(elapsed)
	if c.haltCycle > 0 && n >= c.haltCycle {
		c.finish()
		return
	}
	_, frac := math.Modf(n)
	t := frac
	if c.Curve != nil {
		t = c.Curve(frac)
	}
	c.Value = c.LowerBound + (c.UpperBound-c.LowerBound)*t
	c.notifyListeners()
}

// finish lands on the upper bound and halts.
func (c *AnimationController) finish() {
	c.Value = c.UpperBound
	c.notifyListeners()
	c.Stop()
}

// AddListener subscribes fn to value changes. The returned func
// unsubscribes.
func (c *AnimationController) AddListener(fn func()) func() {
	c.nextListenerID++
	id := c.nextListenerID
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
}

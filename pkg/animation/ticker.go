// Package animation drives time-based values for the spinner and any other
// frame-stepped visual.
//
// An [AnimationController] produces a value between its bounds over a
// Duration. It is advanced by [Ticker]s, which in turn are stepped once per
// frame by [StepTickers]. A [Driver] calls StepTickers periodically on the UI
// executor, so controllers only ever run on the UI thread.
//
//	c := animation.NewAnimationController(1500 * time.Millisecond)
//	c.AddListener(func() { progress = c.Value })
//	c.Repeat()          // 0 -> 1, jump back to 0, forever
//	...
//	c.StopAfterCycle()  // finish the current sweep, then halt
package animation

import (
	"slices"
	"sync"
	"time"
)

// registry holds running tickers in start order so frames step them
// deterministically.
var registry struct {
	sync.Mutex
	running []*Ticker
}

// Ticker invokes its callback once per frame with the time since Start.
type Ticker struct {
	onFrame func(elapsed time.Duration)
	running bool
	origin  time.Time
}

// NewTicker returns a stopped ticker.
func NewTicker(onFrame func(elapsed time.Duration)) *Ticker {
	return &Ticker{onFrame: onFrame}
}

// Start registers the ticker and resets its origin. Starting a running
// ticker does nothing.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.origin = Now()
	registry.Lock()
	registry.running = append(registry.running, t)
	registry.Unlock()
}

// Stop unregisters the ticker.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	registry.Lock()
	registry.running = slices.DeleteFunc(registry.running, func(o *Ticker) bool { return o == t })
	registry.Unlock()
}

// Elapsed is zero for a stopped ticker.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Now().Sub(t.origin)
}

// StepTickers runs one frame. Call it on the UI thread.
func StepTickers() {
	registry.Lock()
	frame := slices.Clone(registry.running)
	registry.Unlock()

	now := Now()
	for _, t := range frame {
		// A callback earlier in the frame may have stopped t.
		if t.running && t.onFrame != nil {
			t.onFrame(now.Sub(t.origin))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	registry.Lock()
	defer registry.Unlock()
	return len(registry.running) > 0
}

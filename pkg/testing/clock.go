package testing

import (
	"sync"
	"time"

	"github.com/go-drift/pagestate/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// InstallFakeClock makes a new FakeClock the animation clock and registers
// the restore with cleanup (typically t.Cleanup).
func InstallFakeClock(cleanup func(func())) *FakeClock {
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	cleanup(func() { animation.SetClock(prev) })
	return clk
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// StepFrames advances clk by interval n times, stepping every active ticker
// after each advance, as the frame driver would.
func StepFrames(clk *FakeClock, n int, interval time.Duration) {
	for range n {
		clk.Advance(interval)
		animation.StepTickers()
	}
}

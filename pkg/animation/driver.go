package animation

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval is the frame period used when Driver.Interval is zero.
const DefaultFrameInterval = 16 * time.Millisecond

// Driver is the periodic frame loop behind every running ticker. Each frame is
// posted to the UI thread, where it steps all active tickers and then calls
// OnFrame.
//
// A frame is not posted while the previous one is still queued, so a busy UI
// thread sees at most one pending frame.
type Driver struct {
	// Interval between frames. Zero means DefaultFrameInterval.
	Interval time.Duration

	// Post schedules fn on the UI thread. Required.
	Post func(fn func())

	// OnFrame runs on the UI thread after the tickers were stepped (optional).
	OnFrame func()

	pending atomic.Bool
}

// Run posts frames until ctx is done and returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	if d.Post == nil {
		return errors.New("animation: Driver.Post is nil")
	}
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if d.pending.CompareAndSwap(false, true) {
				d.Post(d.frame)
			}
		}
	}
}

func (d *Driver) frame() {
	d.pending.Store(false)
	StepTickers()
	if d.OnFrame != nil {
		d.OnFrame()
	}
}

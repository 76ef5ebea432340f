package platform

import (
	"context"
	"sync"

	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/petermattis/goid"
)

// Looper is an Executor backed by a FIFO queue that is drained by the
// goroutine that created it.
//
// A Looper can be driven two ways: by calling Loop from the owner goroutine,
// or by a foreign event loop that calls Drain whenever the wake hook fires
// (see [WithWake]).
type Looper struct {
	owner  int64
	wake   func()
	signal chan struct{}

	mu    sync.Mutex
	queue []func()
}

// LooperOption configures a Looper.
type LooperOption func(*Looper)

// WithWake installs a hook that is called, outside any lock, after every Post.
// Hosts with their own event loop use it to schedule a Drain on the UI thread.
func WithWake(fn func()) LooperOption {
	return func(l *Looper) {
		l.wake = fn
	}
}

// NewLooper creates a Looper owned by the calling goroutine.
func NewLooper(opts ...LooperOption) *Looper {
	l := &Looper{
		owner:  goid.Get(),
		signal: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OnUIThread reports whether the caller is the goroutine that owns the Looper.
func (l *Looper) OnUIThread() bool {
	return goid.Get() == l.owner
}

// Post enqueues fn. It is safe to call from any goroutine.
func (l *Looper) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.signal <- struct{}{}:
	default:
	}
	if l.wake != nil {
		l.wake()
	}
}

// Pending returns the number of queued tasks.
func (l *Looper) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Drain runs every task queued before the call, in order, and returns how
// many ran. Tasks posted while draining wait for the next Drain. A panicking
// task is reported and does not stop the rest.
//
// Drain must be called on the owner goroutine; elsewhere it reports an
// illegal-state error and runs nothing.
func (l *Looper) Drain() int {
	if !l.OnUIThread() {
		errors.Report(errors.IllegalState("platform.Looper.Drain", "called off the UI thread"))
		return 0
	}
	l.mu.Lock()
	tasks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, task := range tasks {
		runTask(task)
	}
	return len(tasks)
}

// Loop drains the queue on the owner goroutine until ctx is done.
func (l *Looper) Loop(ctx context.Context) error {
	if !l.OnUIThread() {
		return errors.Report(errors.IllegalState("platform.Looper.Loop", "called off the UI thread"))
	}
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
		}
	}
}

func runTask(task func()) {
	defer errors.Recover("platform.Looper.Drain")
	task()
}

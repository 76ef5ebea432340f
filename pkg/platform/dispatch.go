// Package platform provides the UI executor: the serial work queue owned by
// the goroutine that runs the UI, and the fast path used by callers that may
// or may not already be on it.
package platform

// Executor schedules work on the UI thread.
type Executor interface {
	// OnUIThread reports whether the calling goroutine is the UI thread.
	OnUIThread() bool

	// Post enqueues fn to run later on the UI thread. It never blocks and
	// preserves FIFO order for calls made from the same goroutine.
	Post(fn func())
}

// Dispatch runs fn immediately when the caller is on exec's UI thread (or exec
// is nil), and posts it to exec otherwise. It reports whether fn ran
// synchronously.
func Dispatch(exec Executor, fn func()) bool {
	if fn == nil {
		return false
	}
	if exec == nil || exec.OnUIThread() {
		fn()
		return true
	}
	exec.Post(fn)
	return false
}

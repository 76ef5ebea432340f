package pagestate

import (
	"sync"
	"testing"

	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/graphics"
	pstest "github.com/go-drift/pagestate/pkg/testing"
	"github.com/go-drift/pagestate/pkg/view"
)

type errorLog struct {
	mu     sync.Mutex
	errors []*errors.PageError
}

func (l *errorLog) HandleError(err *errors.PageError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, err)
}

func (l *errorLog) HandlePanic(*errors.PanicError) {}

func (l *errorLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

// captureErrors routes reported errors to a log for the rest of the test.
func captureErrors(t *testing.T) *errorLog {
	t.Helper()
	log := &errorLog{}
	prev := errors.SetHandler(log)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return log
}

// setup installs a fake animation clock and an error log.
func setup(t *testing.T) *errorLog {
	t.Helper()
	pstest.InstallFakeClock(t.Cleanup)
	return captureErrors(t)
}

func build(t *testing.T, b *Builder) *Container {
	t.Helper()
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	t.Cleanup(c.Dispose)
	return c
}

// visibleSlots returns the states whose registered view is visible.
func visibleSlots(c *Container) []State {
	var out []State
	for _, s := range States {
		if v := c.SlotView(s); v != nil && v.Visibility() == view.Visible {
			out = append(out, s)
		}
	}
	return out
}

func assertOnlyVisible(t *testing.T, c *Container, want State) {
	t.Helper()
	got := visibleSlots(c)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("visible slots = %v, want only %v", got, want)
	}
	if c.State() != want {
		t.Fatalf("State() = %v, want %v", c.State(), want)
	}
}

// centerOf returns the center of n in the coordinate space of its root.
func centerOf(n view.Node) graphics.Offset {
	s := n.Size()
	p := graphics.Offset{X: s.Width / 2, Y: s.Height / 2}
	var cur view.Node = n
	for {
		p = p.Add(cur.Offset())
		parent := cur.Parent()
		if view.IsNil(parent) {
			return p
		}
		cur = parent
	}
}

// parentWithChildren returns a frame holding n leaf children with ids c0..cn-1.
func parentWithChildren(n int) (*view.Frame, []*view.Base) {
	parent := view.NewFrame("parent")
	children := make([]*view.Base, n)
	for i := range children {
		children[i] = view.NewBase("c" + string(rune('0'+i)))
		_ = parent.AddChild(children[i])
	}
	return parent, children
}

package pagestate

import (
	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/platform"
	"github.com/go-drift/pagestate/pkg/view"
)

// Spinner is the part of a loading indicator the container drives.
type Spinner interface {
	Start()
	Stop()
	IsRunning() bool
}

// Container is a frame holding one view per registered state, of which
// exactly one is visible once a state has been applied.
//
// Containers are created by a Builder. Their slots are fixed after Build.
type Container struct {
	view.Frame

	exec    platform.Executor
	slots   [numStates]view.Node
	spinner Spinner
	current State
	laidOut bool
	onRetry func()
}

func newContainer(exec platform.Executor) *Container {
	c := &Container{exec: exec}
	c.SetID("page_state")
	c.SetSelf(c)
	return c
}

// ShowContent shows the wrapped view.
func (c *Container) ShowContent() { c.Show(Content) }

// ShowLoading shows the loading view and starts its spinner.
func (c *Container) ShowLoading() { c.Show(Loading) }

// ShowError shows the error view.
func (c *Container) ShowError() { c.Show(Error) }

// ShowEmpty shows the empty-data view.
func (c *Container) ShowEmpty() { c.Show(Empty) }

// ShowNoNetwork shows the no-network view.
func (c *Container) ShowNoNetwork() { c.Show(NoNetwork) }

// ShowCustom shows the custom view, if one was set.
func (c *Container) ShowCustom() { c.Show(Custom) }

// Show switches to state. It is safe to call from any goroutine: on the UI
// thread the change applies before Show returns, elsewhere it is posted to
// the executor. Showing a state without a view hides every slot.
func (c *Container) Show(state State) {
	if !state.Valid() {
		errors.Report(errors.InvalidArgument("pagestate.Container.Show", "unknown state %d", int(state)))
		return
	}
	platform.Dispatch(c.exec, func() { c.apply(state) })
}

func (c *Container) apply(state State) {
	if c.spinner != nil {
		if state == Loading {
			c.spinner.Start()
		} else {
			c.spinner.Stop()
		}
	}
	for s, slot := range c.slots {
		if slot == nil {
			continue
		}
		if State(s) == state {
			slot.SetVisibility(view.Visible)
		} else {
			slot.SetVisibility(view.Gone)
		}
	}
	c.current = state
}

// State returns the last applied state.
func (c *Container) State() State {
	return c.current
}

// SlotView returns the view registered for state, or nil.
func (c *Container) SlotView(state State) view.Node {
	if !state.Valid() {
		return nil
	}
	return c.slots[state]
}

// Spinner returns the spinner driven by the Loading state, or nil.
func (c *Container) Spinner() Spinner {
	return c.spinner
}

// Layout sizes every child to the container. On the first pass with a
// non-empty area each child's layout params are pinned to the container's
// bounds; later passes keep them. Zero-area passes, such as a window laid
// out before its host knows its size, do not count.
func (c *Container) Layout(width, height float64) {
	if !c.laidOut && width > 0 && height > 0 {
		for i := 0; i < c.ChildCount(); i++ {
			c.ChildAt(i).SetLayoutParams(view.ExactParams(width, height))
		}
		c.laidOut = true
	}
	c.Frame.Layout(width, height)
}

// Dispose releases the spinner's animation, if it holds one.
func (c *Container) Dispose() {
	if d, ok := c.spinner.(interface{ Dispose() }); ok {
		d.Dispose()
	}
}

func (c *Container) retry() {
	if c.onRetry != nil {
		c.onRetry()
	}
}

func (c *Container) setSlot(state State, v view.Node) error {
	if old := c.slots[state]; old != nil {
		c.RemoveChild(old)
		c.slots[state] = nil
	}
	if err := c.InsertChild(v, -1, v.LayoutParams()); err != nil {
		return err
	}
	c.slots[state] = v
	if state != Loading {
		v.SetVisibility(view.Gone)
	}
	return nil
}

func findSpinner(root view.Node) Spinner {
	var found Spinner
	view.Walk(root, func(n view.Node) bool {
		if s, ok := n.(Spinner); ok {
			found = s
			return false
		}
		return true
	})
	return found
}

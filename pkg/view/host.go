package view

import "github.com/go-drift/pagestate/pkg/graphics"

// Screen is a host whose content lives under a designated root group, like a
// window or activity.
type Screen interface {
	ContentRoot() Group
}

// Fragment is a host that owns a root view, like a tab or embedded page.
type Fragment interface {
	View() Node
}

// Window is a Screen with a fixed-size content root.
type Window struct {
	root *Frame
}

// NewWindow creates a window whose content root fills width x height.
func NewWindow(width, height float64) *Window {
	root := NewFrame("window_content")
	root.SetLayoutParams(MatchParentParams())
	root.Layout(width, height)
	return &Window{root: root}
}

func (w *Window) ContentRoot() Group { return w.root }

// SetContent replaces the window's content with n, filling the window.
func (w *Window) SetContent(n Node) error {
	w.root.RemoveAllChildren()
	return w.root.InsertChild(n, -1, MatchParentParams())
}

// Resize lays the content out at a new size.
func (w *Window) Resize(width, height float64) {
	w.root.Layout(width, height)
}

// Layout re-runs layout at the current size.
func (w *Window) Layout() {
	s := w.root.Size()
	w.root.Layout(s.Width, s.Height)
}

// Size returns the window size.
func (w *Window) Size() graphics.Size { return w.root.Size() }

// Paint draws the window content.
func (w *Window) Paint(canvas graphics.Canvas) {
	w.root.Paint(canvas)
}

// Click dispatches a click at pos in window coordinates.
func (w *Window) Click(pos graphics.Offset) bool {
	return DispatchClick(w.root, pos)
}

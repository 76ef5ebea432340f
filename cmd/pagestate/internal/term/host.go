package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/view"
)

// Host is a tview primitive that shows a view.Window. The window is resized
// to the primitive's inner rectangle on every draw, and left clicks are
// forwarded to it as view clicks.
type Host struct {
	*tview.Box

	window *view.Window
	onKey  func(event *tcell.EventKey) *tcell.EventKey
}

// NewHost wraps window.
func NewHost(window *view.Window) *Host {
	return &Host{Box: tview.NewBox(), window: window}
}

// SetWindow replaces the window shown by the host.
func (h *Host) SetWindow(window *view.Window) *Host {
	h.window = window
	return h
}

// SetKeyHandler installs a handler for key events. Returning nil consumes
// the event.
func (h *Host) SetKeyHandler(fn func(event *tcell.EventKey) *tcell.EventKey) *Host {
	h.onKey = fn
	return h
}

// Draw lays the window out at the current size and paints it.
func (h *Host) Draw(screen tcell.Screen) {
	h.Box.DrawForSubclass(screen, h)
	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	size := h.window.Size()
	w, ht := float64(width*CellWidth), float64(height*CellHeight)
	if size.Width != w || size.Height != ht {
		h.window.Resize(w, ht)
	} else {
		h.window.Layout()
	}
	h.window.Paint(NewCanvas(screen, x, y, width, height))
}

// InputHandler forwards key events to the key handler.
func (h *Host) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return h.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if h.onKey != nil {
			h.onKey(event)
		}
	})
}

// MouseHandler turns left clicks into view clicks at the clicked cell's
// center.
func (h *Host) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return h.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !h.InRect(mx, my) {
			return false, nil
		}
		setFocus(h)
		if action != tview.MouseLeftClick {
			return true, nil
		}
		x, y, _, _ := h.GetInnerRect()
		h.window.Click(CellCenter(mx-x, my-y))
		return true, nil
	})
}

// CellCenter returns the layout position of the center of cell (cx, cy).
func CellCenter(cx, cy int) graphics.Offset {
	return graphics.Offset{
		X: (float64(cx) + 0.5) * CellWidth,
		Y: (float64(cy) + 0.5) * CellHeight,
	}
}

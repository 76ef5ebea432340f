package cmd

import (
	"testing"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/pagestate"
	"github.com/go-drift/pagestate/pkg/theme"
	"github.com/go-drift/pagestate/pkg/view"
)

// windowCenter returns the center of n in window coordinates.
func windowCenter(n view.Node) graphics.Offset {
	s := n.Size()
	p := graphics.Offset{X: s.Width / 2, Y: s.Height / 2}
	for cur := n; !view.IsNil(cur); {
		p = p.Add(cur.Offset())
		parent := cur.Parent()
		if view.IsNil(parent) {
			break
		}
		cur = parent
	}
	return p
}

func TestScene_UnsizedWindowLaysOutOnResize(t *testing.T) {
	retries := 0
	s, err := newScene("demo", theme.Default(), 0, 0, func() { retries++ })
	if err != nil {
		t.Fatalf("newScene error: %v", err)
	}
	t.Cleanup(s.container.Dispose)

	s.window.Resize(400, 300)
	for _, st := range pagestate.States {
		v := s.container.SlotView(st)
		if v == nil {
			t.Fatalf("no view for %v", st)
		}
		if got := v.LayoutParams(); got != view.ExactParams(400, 300) {
			t.Fatalf("%v params = %+v, want the window size", st, got)
		}
	}

	s.container.ShowError()
	icon := view.Find(s.window.ContentRoot(), pagestate.ErrorIconID)
	if icon == nil {
		t.Fatal("error icon not found")
	}
	if sz := icon.Size(); sz.Width == 0 || sz.Height == 0 {
		t.Fatalf("error icon size = %v", sz)
	}
	if !s.window.Click(windowCenter(icon)) {
		t.Fatal("click on the error icon was not handled")
	}
	if retries != 1 {
		t.Fatalf("retries = %d, want 1", retries)
	}
}

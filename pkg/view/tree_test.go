package view

import (
	"errors"
	"testing"

	pserrors "github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/graphics"
)

type quietHandler struct{}

func (quietHandler) HandleError(*pserrors.PageError)  {}
func (quietHandler) HandlePanic(*pserrors.PanicError) {}

func silenceErrors(t *testing.T) {
	t.Helper()
	prev := pserrors.SetHandler(quietHandler{})
	t.Cleanup(func() { pserrors.SetHandler(prev) })
}

func frameWithChildren(ids ...string) (*Frame, []*Base) {
	parent := NewFrame("parent")
	var nodes []*Base
	for _, id := range ids {
		n := NewBase(id)
		if err := parent.AddChild(n); err != nil {
			panic(err)
		}
		nodes = append(nodes, n)
	}
	return parent, nodes
}

func TestDetach_RecordsAnchor(t *testing.T) {
	parent, nodes := frameWithChildren("a", "b", "c")
	nodes[1].SetLayoutParams(ExactParams(120, 40))

	anchor, err := Detach(nodes[1])
	if err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if anchor.Parent != Group(parent) || anchor.Index != 1 {
		t.Fatalf("anchor = %+v, want parent frame at index 1", anchor)
	}
	if anchor.Params != ExactParams(120, 40) {
		t.Fatalf("anchor params = %+v", anchor.Params)
	}
	if nodes[1].Parent() != nil {
		t.Fatal("detached node should have no parent")
	}
	if parent.ChildCount() != 2 || parent.ChildAt(1) != Node(nodes[2]) {
		t.Fatal("remaining children should close the gap")
	}
}

func TestDetach_Orphan(t *testing.T) {
	silenceErrors(t)
	_, err := Detach(NewBase("orphan"))
	if !errors.Is(err, pserrors.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	var typedNil *Base
	if _, err := Detach(typedNil); !errors.Is(err, pserrors.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for typed nil, got %v", err)
	}
}

func TestAttach_RestoresPosition(t *testing.T) {
	parent, nodes := frameWithChildren("a", "b", "c")
	anchor, err := Detach(nodes[1])
	if err != nil {
		t.Fatal(err)
	}

	wrapper := NewFrame("wrapper")
	if err := Attach(wrapper, anchor.Parent, anchor.Index, anchor.Params); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := wrapper.AddChild(nodes[1]); err != nil {
		t.Fatal(err)
	}

	if parent.IndexOf(wrapper) != 1 {
		t.Fatalf("wrapper index = %d, want 1", parent.IndexOf(wrapper))
	}
	if !IsDescendant(nodes[1], parent) {
		t.Fatal("re-added node should still be under the original parent")
	}
}

func TestInsertChild_Errors(t *testing.T) {
	silenceErrors(t)
	parent, nodes := frameWithChildren("a")
	other := NewFrame("other")

	if err := other.AddChild(nodes[0]); !errors.Is(err, pserrors.ErrIllegalState) {
		t.Fatalf("adding a parented node: got %v, want illegal state", err)
	}
	if err := parent.InsertChild(NewBase("x"), 5, WrapContentParams()); !errors.Is(err, pserrors.ErrInvalidArgument) {
		t.Fatalf("out of range index: got %v, want invalid argument", err)
	}
	if err := parent.AddChild(nil); !errors.Is(err, pserrors.ErrInvalidArgument) {
		t.Fatalf("nil child: got %v, want invalid argument", err)
	}
}

type outer struct {
	Frame
}

func TestFrame_SetSelfIsReportedParent(t *testing.T) {
	o := &outer{}
	o.SetSelf(o)
	child := NewBase("child")
	if err := o.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if child.Parent() != Group(o) {
		t.Fatalf("child parent = %T, want *outer", child.Parent())
	}
}

func TestFrame_LayoutResolvesParams(t *testing.T) {
	parent := NewFrame("root")
	fill := NewBase("fill")
	fill.SetLayoutParams(MatchParentParams())
	fixed := NewBase("fixed")
	fixed.SetLayoutParams(ExactParams(30, 20))
	wrap := NewBase("wrap")
	for _, n := range []Node{fill, fixed, wrap} {
		if err := parent.AddChild(n); err != nil {
			t.Fatal(err)
		}
	}

	parent.Layout(200, 100)
	if fill.Size() != (graphics.Size{Width: 200, Height: 100}) {
		t.Errorf("fill size = %v", fill.Size())
	}
	if fixed.Size() != (graphics.Size{Width: 30, Height: 20}) {
		t.Errorf("fixed size = %v", fixed.Size())
	}
	if wrap.Size() != (graphics.Size{}) {
		t.Errorf("wrap size = %v", wrap.Size())
	}
}

func TestColumn_CentersChildren(t *testing.T) {
	col := NewColumn("col", 10)
	top := NewBase("top")
	top.SetLayoutParams(ExactParams(40, 20))
	gone := NewBase("gone")
	gone.SetLayoutParams(ExactParams(40, 500))
	gone.SetVisibility(Gone)
	bottom := NewBase("bottom")
	bottom.SetLayoutParams(ExactParams(60, 30))
	for _, n := range []Node{top, gone, bottom} {
		if err := col.AddChild(n); err != nil {
			t.Fatal(err)
		}
	}

	col.Layout(100, 100)
	// Block height is 20 + 10 + 30 = 60, so it starts at y = 20.
	if got := top.Offset(); got != (graphics.Offset{X: 30, Y: 20}) {
		t.Errorf("top offset = %v", got)
	}
	if got := bottom.Offset(); got != (graphics.Offset{X: 20, Y: 50}) {
		t.Errorf("bottom offset = %v", got)
	}
}

func TestFind(t *testing.T) {
	root := NewFrame("root")
	col := NewColumn("col", 0)
	leaf := NewBase("leaf")
	if err := col.AddChild(leaf); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(col); err != nil {
		t.Fatal(err)
	}

	if Find(root, "leaf") != Node(leaf) {
		t.Fatal("Find should locate nested nodes")
	}
	if Find(root, "missing") != nil {
		t.Fatal("Find should return nil for unknown ids")
	}
}

func TestDispatchClick_TopmostVisibleWins(t *testing.T) {
	root := NewFrame("root")
	var clicked []string
	under := NewBase("under")
	under.SetLayoutParams(MatchParentParams())
	under.SetOnClick(func() { clicked = append(clicked, "under") })
	over := NewBase("over")
	over.SetLayoutParams(MatchParentParams())
	over.SetOnClick(func() { clicked = append(clicked, "over") })
	for _, n := range []Node{under, over} {
		if err := root.AddChild(n); err != nil {
			t.Fatal(err)
		}
	}
	root.Layout(50, 50)

	if !DispatchClick(root, graphics.Offset{X: 10, Y: 10}) {
		t.Fatal("expected a handler to run")
	}
	over.SetVisibility(Gone)
	DispatchClick(root, graphics.Offset{X: 10, Y: 10})
	under.SetVisibility(Invisible)
	if DispatchClick(root, graphics.Offset{X: 10, Y: 10}) {
		t.Fatal("invisible nodes should not receive clicks")
	}
	if DispatchClick(root, graphics.Offset{X: 60, Y: 10}) {
		t.Fatal("clicks outside the root should be ignored")
	}

	if len(clicked) != 2 || clicked[0] != "over" || clicked[1] != "under" {
		t.Fatalf("clicked = %v", clicked)
	}
}

func TestWindow_SetContent(t *testing.T) {
	w := NewWindow(320, 480)
	content := NewFrame("content")
	if err := w.SetContent(content); err != nil {
		t.Fatal(err)
	}
	w.Layout()
	if content.Size() != (graphics.Size{Width: 320, Height: 480}) {
		t.Fatalf("content size = %v", content.Size())
	}
	if w.ContentRoot().ChildAt(0) != Node(content) {
		t.Fatal("content should be the first child of the root")
	}
}

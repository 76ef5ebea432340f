package view

import (
	"slices"

	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/graphics"
)

// Frame is a group that stacks its children at its top-left corner, later
// children painted on top of earlier ones.
//
// Types embedding Frame must call SetSelf with the outer value so that
// children report the embedding type, not the inner Frame, as their parent.
type Frame struct {
	Base
	self     Group
	children []Node
}

// NewFrame returns an empty frame with the given id.
func NewFrame(id string) *Frame {
	f := &Frame{}
	f.SetID(id)
	return f
}

// SetSelf records the outermost value embedding this frame.
func (f *Frame) SetSelf(self Group) {
	f.self = self
}

func (f *Frame) group() Group {
	if f.self != nil {
		return f.self
	}
	return f
}

func (f *Frame) ChildCount() int { return len(f.children) }

func (f *Frame) ChildAt(index int) Node {
	if index < 0 || index >= len(f.children) {
		return nil
	}
	return f.children[index]
}

func (f *Frame) IndexOf(child Node) int {
	return slices.Index(f.children, child)
}

// Children returns a copy of the child list.
func (f *Frame) Children() []Node {
	return slices.Clone(f.children)
}

func (f *Frame) InsertChild(child Node, index int, params LayoutParams) error {
	const op = "view.Frame.InsertChild"
	if IsNil(child) {
		return errors.Report(errors.InvalidArgument(op, "child must not be nil"))
	}
	if child.Parent() != nil {
		return errors.Report(errors.IllegalState(op, "node %q already has a parent", child.ID()))
	}
	if index < 0 {
		index = len(f.children)
	}
	if index > len(f.children) {
		return errors.Report(errors.InvalidArgument(op, "index %d out of range [0,%d]", index, len(f.children)))
	}
	child.SetLayoutParams(params)
	f.children = slices.Insert(f.children, index, child)
	child.SetParent(f.group())
	return nil
}

// AddChild appends child with its current layout params.
func (f *Frame) AddChild(child Node) error {
	if IsNil(child) {
		return f.InsertChild(child, -1, LayoutParams{})
	}
	return f.InsertChild(child, -1, child.LayoutParams())
}

func (f *Frame) RemoveChild(child Node) bool {
	i := f.IndexOf(child)
	if i < 0 {
		return false
	}
	f.children = slices.Delete(f.children, i, i+1)
	child.SetParent(nil)
	return true
}

// RemoveAllChildren releases every child.
func (f *Frame) RemoveAllChildren() {
	for _, child := range f.children {
		child.SetParent(nil)
	}
	f.children = nil
}

// IntrinsicSize is the largest intrinsic size among the children.
func (f *Frame) IntrinsicSize() graphics.Size {
	var s graphics.Size
	for _, child := range f.children {
		cs := child.IntrinsicSize()
		s.Width = max(s.Width, cs.Width)
		s.Height = max(s.Height, cs.Height)
	}
	return s
}

func (f *Frame) Layout(width, height float64) {
	f.SetSize(graphics.Size{Width: width, Height: height})
	available := graphics.Size{Width: width, Height: height}
	for _, child := range f.children {
		size := Resolve(child.LayoutParams(), child.IntrinsicSize(), available)
		child.SetOffset(graphics.Offset{})
		child.Layout(size.Width, size.Height)
	}
}

// Paint draws the background and then every visible child in order.
func (f *Frame) Paint(canvas graphics.Canvas) {
	f.Base.Paint(canvas)
	paintChildren(canvas, f.children)
}

func paintChildren(canvas graphics.Canvas, children []Node) {
	for _, child := range children {
		if child.Visibility() != Visible {
			continue
		}
		offset := child.Offset()
		canvas.Save()
		canvas.Translate(offset.X, offset.Y)
		child.Paint(canvas)
		canvas.Restore()
	}
}

package view

import (
	"reflect"

	"github.com/go-drift/pagestate/pkg/errors"
	"github.com/go-drift/pagestate/pkg/graphics"
)

// Anchor records where a node sat before Detach: its parent, its index among
// the parent's children and its layout params.
type Anchor struct {
	Node   Node
	Parent Group
	Index  int
	Params LayoutParams
}

// Detach removes n from its parent and returns the anchor needed to put
// something back in the same place.
func Detach(n Node) (Anchor, error) {
	const op = "view.Detach"
	if IsNil(n) {
		return Anchor{}, errors.Report(errors.InvalidArgument(op, "node must not be nil"))
	}
	parent := n.Parent()
	if IsNil(parent) {
		return Anchor{}, errors.Report(errors.InvalidArgument(op, "node %q has no parent", n.ID()))
	}
	index := parent.IndexOf(n)
	if index < 0 {
		return Anchor{}, errors.Report(errors.IllegalState(op, "node %q is not a child of its parent", n.ID()))
	}
	a := Anchor{
		Node:   n,
		Parent: parent,
		Index:  index,
		Params: n.LayoutParams(),
	}
	parent.RemoveChild(n)
	return a, nil
}

// Attach inserts n into parent at index with params.
func Attach(n Node, parent Group, index int, params LayoutParams) error {
	if IsNil(parent) {
		return errors.Report(errors.InvalidArgument("view.Attach", "parent must not be nil"))
	}
	return parent.InsertChild(n, index, params)
}

// Walk visits root and its descendants depth-first, parents before children.
// Returning false from fn stops the walk.
func Walk(root Node, fn func(Node) bool) bool {
	if IsNil(root) {
		return true
	}
	if !fn(root) {
		return false
	}
	if g, ok := root.(Group); ok {
		for i := 0; i < g.ChildCount(); i++ {
			if !Walk(g.ChildAt(i), fn) {
				return false
			}
		}
	}
	return true
}

// Find returns the first node in root's subtree with the given id, or nil.
func Find(root Node, id string) Node {
	var found Node
	Walk(root, func(n Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// IsDescendant reports whether n is ancestor itself or sits below it.
func IsDescendant(n Node, ancestor Node) bool {
	for cur := n; !IsNil(cur); {
		if cur == ancestor {
			return true
		}
		p := cur.Parent()
		if IsNil(p) {
			return false
		}
		cur = p
	}
	return false
}

// DispatchClick delivers a click at pos, given in root's coordinate space, to
// the topmost visible clickable node under it. It reports whether a handler
// ran.
func DispatchClick(root Node, pos graphics.Offset) bool {
	target := hitTest(root, pos)
	if target == nil {
		return false
	}
	return target.PerformClick()
}

func hitTest(n Node, pos graphics.Offset) Node {
	if IsNil(n) || n.Visibility() != Visible {
		return nil
	}
	size := n.Size()
	if !graphics.RectFromLTWH(0, 0, size.Width, size.Height).Contains(pos) {
		return nil
	}
	if g, ok := n.(Group); ok {
		for i := g.ChildCount() - 1; i >= 0; i-- {
			child := g.ChildAt(i)
			if hit := hitTest(child, pos.Sub(child.Offset())); hit != nil {
				return hit
			}
		}
	}
	if n.Clickable() {
		return n
	}
	return nil
}

// IsNil reports whether v is nil or an interface holding a nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Package view is a small retained view hierarchy: nodes with layout params,
// visibility and click handlers, groups that own ordered children, and the
// detach/attach protocol used to move a node under a new parent without
// losing its layout params.
//
// Any engine can take part by implementing [Node] and [Group]; [Base],
// [Frame] and [Column] are the stock implementations.
package view

import (
	"fmt"

	"github.com/go-drift/pagestate/pkg/graphics"
)

// Visibility controls whether a node is painted and laid out.
type Visibility int

const (
	// Visible nodes are painted and receive clicks.
	Visible Visibility = iota
	// Invisible nodes keep their space but are not painted.
	Invisible
	// Gone nodes are not painted and take no space in a Column.
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Size sentinels for LayoutParams.
const (
	// MatchParent fills the parent along that axis.
	MatchParent = -1
	// WrapContent uses the node's intrinsic size, capped by the parent.
	WrapContent = -2
)

// LayoutParams are the size hints a parent uses to lay out a child.
// Non-negative values are exact pixel sizes.
type LayoutParams struct {
	Width  float64
	Height float64
}

// MatchParentParams fills the parent on both axes.
func MatchParentParams() LayoutParams {
	return LayoutParams{Width: MatchParent, Height: MatchParent}
}

// WrapContentParams sizes to content on both axes.
func WrapContentParams() LayoutParams {
	return LayoutParams{Width: WrapContent, Height: WrapContent}
}

// ExactParams fixes both axes.
func ExactParams(width, height float64) LayoutParams {
	return LayoutParams{Width: width, Height: height}
}

// Node is a single element of the view hierarchy.
type Node interface {
	ID() string

	// Parent returns the group that owns the node, or nil.
	Parent() Group
	// SetParent is called by Group implementations when adopting or
	// releasing the node. Other callers should use InsertChild/RemoveChild.
	SetParent(parent Group)

	LayoutParams() LayoutParams
	SetLayoutParams(params LayoutParams)

	Visibility() Visibility
	SetVisibility(v Visibility)

	// Offset is the node's position within its parent, set during layout.
	Offset() graphics.Offset
	SetOffset(offset graphics.Offset)

	// Size is the size resolved by the last Layout.
	Size() graphics.Size
	// IntrinsicSize is the size the node wants when wrapping its content.
	IntrinsicSize() graphics.Size
	// Layout assigns the node its size and lays out any children.
	Layout(width, height float64)
	// Paint draws the node with its top-left corner at the canvas origin.
	Paint(canvas graphics.Canvas)

	SetOnClick(fn func())
	Clickable() bool
	// PerformClick invokes the click handler and reports whether one ran.
	PerformClick() bool
}

// Group is a node that owns an ordered list of children.
type Group interface {
	Node

	ChildCount() int
	// ChildAt returns the child at index, or nil when out of range.
	ChildAt(index int) Node
	// IndexOf returns the child's index, or -1.
	IndexOf(child Node) int
	// InsertChild adopts child at index (-1 appends) with the given params.
	InsertChild(child Node, index int, params LayoutParams) error
	// RemoveChild releases child and reports whether it was present.
	RemoveChild(child Node) bool
}

func resolveDimension(spec, intrinsic, available float64) float64 {
	switch {
	case spec == MatchParent:
		return available
	case spec == WrapContent:
		return min(intrinsic, available)
	case spec < 0:
		return 0
	default:
		return spec
	}
}

// Resolve turns params into a concrete size inside the available space.
func Resolve(params LayoutParams, intrinsic, available graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  resolveDimension(params.Width, intrinsic.Width, available.Width),
		Height: resolveDimension(params.Height, intrinsic.Height, available.Height),
	}
}

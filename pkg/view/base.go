package view

import "github.com/go-drift/pagestate/pkg/graphics"

// Base is an embeddable leaf node. Its zero value is a visible node that
// wraps its (empty) content.
type Base struct {
	id         string
	parent     Group
	params     LayoutParams
	hasParams  bool
	visibility Visibility
	offset     graphics.Offset
	size       graphics.Size
	background graphics.Color
	onClick    func()
}

// NewBase returns a leaf node with the given id.
func NewBase(id string) *Base {
	return &Base{id: id}
}

func (b *Base) ID() string { return b.id }

// SetID changes the id used by Find.
func (b *Base) SetID(id string) { b.id = id }

func (b *Base) Parent() Group { return b.parent }

func (b *Base) SetParent(parent Group) { b.parent = parent }

func (b *Base) LayoutParams() LayoutParams {
	if !b.hasParams {
		return WrapContentParams()
	}
	return b.params
}

func (b *Base) SetLayoutParams(params LayoutParams) {
	b.params = params
	b.hasParams = true
}

func (b *Base) Visibility() Visibility { return b.visibility }

func (b *Base) SetVisibility(v Visibility) { b.visibility = v }

func (b *Base) Offset() graphics.Offset { return b.offset }

func (b *Base) SetOffset(offset graphics.Offset) { b.offset = offset }

func (b *Base) Size() graphics.Size { return b.size }

// SetSize stores the resolved size and reports whether it changed.
func (b *Base) SetSize(size graphics.Size) bool {
	if b.size == size {
		return false
	}
	b.size = size
	return true
}

func (b *Base) IntrinsicSize() graphics.Size { return graphics.Size{} }

func (b *Base) Layout(width, height float64) {
	b.SetSize(graphics.Size{Width: width, Height: height})
}

// Background returns the fill painted behind the node's content.
func (b *Base) Background() graphics.Color { return b.background }

// SetBackground sets the fill painted behind the node's content.
func (b *Base) SetBackground(c graphics.Color) { b.background = c }

// Paint fills the background, if any.
func (b *Base) Paint(canvas graphics.Canvas) {
	if b.background.IsTransparent() {
		return
	}
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, b.size.Width, b.size.Height), graphics.Paint{Color: b.background})
}

func (b *Base) SetOnClick(fn func()) { b.onClick = fn }

func (b *Base) Clickable() bool { return b.onClick != nil }

func (b *Base) PerformClick() bool {
	if b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

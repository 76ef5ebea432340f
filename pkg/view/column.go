package view

import "github.com/go-drift/pagestate/pkg/graphics"

// Column stacks its non-gone children vertically, centering the block in the
// available space and each child horizontally.
type Column struct {
	Frame

	// Spacing is the vertical gap between children.
	Spacing float64
}

// NewColumn returns an empty column with the given id.
func NewColumn(id string, spacing float64) *Column {
	c := &Column{Spacing: spacing}
	c.SetID(id)
	c.SetSelf(c)
	return c
}

func (c *Column) IntrinsicSize() graphics.Size {
	var s graphics.Size
	n := 0
	for _, child := range c.children {
		if child.Visibility() == Gone {
			continue
		}
		cs := child.IntrinsicSize()
		s.Width = max(s.Width, cs.Width)
		s.Height += cs.Height
		n++
	}
	if n > 1 {
		s.Height += c.Spacing * float64(n-1)
	}
	return s
}

func (c *Column) Layout(width, height float64) {
	c.SetSize(graphics.Size{Width: width, Height: height})
	available := graphics.Size{Width: width, Height: height}

	sizes := make([]graphics.Size, len(c.children))
	total := 0.0
	n := 0
	for i, child := range c.children {
		if child.Visibility() == Gone {
			continue
		}
		sizes[i] = Resolve(child.LayoutParams(), child.IntrinsicSize(), available)
		total += sizes[i].Height
		n++
	}
	if n > 1 {
		total += c.Spacing * float64(n-1)
	}

	y := max(0, (height-total)/2)
	for i, child := range c.children {
		if child.Visibility() == Gone {
			continue
		}
		child.SetOffset(graphics.Offset{X: (width - sizes[i].Width) / 2, Y: y})
		child.Layout(sizes[i].Width, sizes[i].Height)
		y += sizes[i].Height + c.Spacing
	}
}

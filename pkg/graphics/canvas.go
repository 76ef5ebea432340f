package graphics

// Paint describes how shapes are filled.
type Paint struct {
	Color Color
}

// Canvas receives drawing commands from the view tree.
//
// Coordinates are relative to the current origin, which Translate moves and
// Save/Restore push and pop.
type Canvas interface {
	// Save pushes the current origin.
	Save()

	// Restore pops the most recent origin.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// DrawRect fills a rectangle.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle fills a circle.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, paint Paint)
}

package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/pagestate/pkg/graphics"
	"github.com/go-drift/pagestate/pkg/view"
)

type cell struct {
	r     rune
	style tcell.Style
}

type grid map[[2]int]cell

func (g grid) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	g[[2]int{x, y}] = cell{r: primary, style: style}
}

func TestCanvas_RectAndText(t *testing.T) {
	g := grid{}
	c := NewCanvas(g, 1, 1, 10, 3)
	white := graphics.ColorWhite

	c.DrawRect(graphics.RectFromLTWH(0, 0, 10*CellWidth, 3*CellHeight), graphics.Paint{Color: white})
	c.Save()
	c.Translate(2*CellWidth, CellHeight)
	c.DrawText("ok", graphics.Offset{}, graphics.Paint{Color: graphics.ColorBlack})
	c.Restore()

	if len(g) != 30 {
		t.Fatalf("wrote %d cells, want 30", len(g))
	}
	got := g[[2]int{3, 2}]
	if got.r != 'o' {
		t.Fatalf("cell (3,2) = %q, want 'o'", got.r)
	}
	if got.style != tcell.StyleDefault.Foreground(Color(graphics.ColorBlack)).Background(Color(white)) {
		t.Fatal("text should keep the cell background")
	}
	if g[[2]int{4, 2}].r != 'k' {
		t.Fatal("second rune should be in the next cell")
	}
}

func TestCanvas_ClipsToArea(t *testing.T) {
	g := grid{}
	c := NewCanvas(g, 0, 0, 2, 2)
	c.DrawText("long text", graphics.Offset{}, graphics.Paint{Color: graphics.ColorBlack})
	if len(g) != 2 {
		t.Fatalf("wrote %d cells, want 2", len(g))
	}
}

func TestCanvas_SmallCircleIsADot(t *testing.T) {
	g := grid{}
	c := NewCanvas(g, 0, 0, 10, 10)
	c.DrawCircle(graphics.Offset{X: 3 * CellWidth, Y: 3 * CellHeight}, 2, graphics.Paint{Color: graphics.ColorGray})
	if len(g) != 1 || g[[2]int{3, 3}].r != '●' {
		t.Fatalf("cells = %v, want a single dot at (3,3)", g)
	}
}

func TestCanvas_LargeCircleFills(t *testing.T) {
	g := grid{}
	c := NewCanvas(g, 0, 0, 20, 10)
	center := CellCenter(10, 5)
	c.DrawCircle(center, 3*CellHeight, graphics.Paint{Color: graphics.ColorGray})
	if _, ok := g[[2]int{10, 5}]; !ok {
		t.Fatal("center cell not filled")
	}
	if _, ok := g[[2]int{0, 0}]; ok {
		t.Fatal("corner cell should stay empty")
	}
}

func TestHost_ClickMapsCells(t *testing.T) {
	w := view.NewWindow(0, 0)
	target := view.NewBase("target")
	target.SetLayoutParams(view.MatchParentParams())
	clicks := 0
	target.SetOnClick(func() { clicks++ })
	_ = w.SetContent(target)
	w.Resize(4*CellWidth, 2*CellHeight)

	if !w.Click(CellCenter(3, 1)) || clicks != 1 {
		t.Fatal("click inside the window should reach the target")
	}
	if w.Click(CellCenter(4, 1)) {
		t.Fatal("click outside the window should be ignored")
	}
}

package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell of the compositor
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

var emptyCell = Cell{Rune: ' ', Fg: Background, Bg: Background}

// Buffer is a compositor over a cell grid with touch tracking
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y) and whether anything was drawn there
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return emptyCell, false
	}
	i := y*b.width + x
	return b.cells[i], b.touched[i]
}

// Plot draws r with color additively blended onto whatever the cell holds
// A rune already in the cell is kept when priority is lower
func (b *Buffer) Plot(x, y int, r rune, color RGB, alpha float64, priority bool) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	i := y*b.width + x
	c := &b.cells[i]
	if !b.touched[i] {
		c.Fg = Background
	}
	c.Fg = Add(c.Fg, Scale(color, alpha), 1)
	if !b.touched[i] || priority {
		c.Rune = r
	}
	b.touched[i] = true
}

// Text writes s starting at (x, y) with solid colors, clipped at the right edge
func (b *Buffer) Text(x, y int, s string, fg, bg RGB) int {
	n := 0
	for _, r := range s {
		if !b.inBounds(x+n, y) {
			break
		}
		i := y*b.width + x + n
		b.cells[i] = Cell{Rune: r, Fg: fg, Bg: bg}
		b.touched[i] = true
		n++
	}
	return n
}

// Fill paints a row segment with bg
func (b *Buffer) Fill(y int, bg RGB) {
	for x := 0; x < b.width; x++ {
		i := y*b.width + x
		if b.inBounds(x, y) && !b.touched[i] {
			b.cells[i] = Cell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
}

// Flush writes every cell to the screen; the caller calls Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}

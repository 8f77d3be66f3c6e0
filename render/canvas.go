package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/system"
	"github.com/lixenwraith/pulsefield/vmath"
)

// Canvas pixels covered by one terminal cell; cells are roughly twice as tall as wide
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// TrailFade scales a trail segment's alpha relative to its head
const TrailFade = 0.35

// Glyphs by particle size, smallest first
var sizeGlyphs = []struct {
	upTo  float64
	glyph rune
}{
	{2, '·'},
	{3.5, '•'},
	{5, '●'},
	{math.Inf(1), '◉'},
}

// Swirl glyphs by rotation quarter-turn
var spinGlyphs = [4]rune{'|', '/', '-', '\\'}

// Canvas draws particle snapshots into a cell buffer and presents it on a tcell screen
// The bottom row is reserved for the status line
type Canvas struct {
	screen tcell.Screen
	buf    *Buffer
	cols   int
	rows   int
	status string
}

var _ system.Renderer = (*Canvas)(nil)

// NewCanvas sizes the canvas to the screen
func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen, buf: NewBuffer(0, 0)}
	c.Resize(screen.Size())
	return c
}

// Resize updates the grid after a terminal resize
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 2)
	c.buf.Resize(c.cols, c.rows)
}

// Bounds returns the simulation canvas size in pixels, excluding the status row
func (c *Canvas) Bounds() (width, height float64) {
	return float64(c.cols) * CellWidth, float64(c.rows-1) * CellHeight
}

// CellToCanvas maps a terminal cell to the pixel at its center
func (c *Canvas) CellToCanvas(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// canvasToCell maps a canvas pixel to its terminal cell
func canvasToCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// Begin clears the buffer for a new frame
func (c *Canvas) Begin() {
	c.buf.Clear()
}

// SetStatus sets the text shown on the bottom row
func (c *Canvas) SetStatus(s string) {
	c.status = s
}

// DrawParticle composites one snapshot
func (c *Canvas) DrawParticle(s particle.Snapshot) {
	if !s.Position.IsFinite() || s.Alpha <= 0 {
		return
	}
	col, row := canvasToCell(s.Position)
	if row >= c.rows-1 {
		return
	}
	color := HSB(s.Hue, s.Saturation, s.Brightness)
	alpha := vmath.Clamp(s.Alpha, 0, 1)

	if s.Trail {
		c.drawTrail(s.PreviousPosition, s.Position, color, alpha*TrailFade)
	}
	c.buf.Plot(col, row, Glyph(s), color, alpha, true)
}

// drawTrail plots a Bresenham line between two canvas points, excluding the head cell
func (c *Canvas) drawTrail(from, to vmath.Vec2, color RGB, alpha float64) {
	if !from.IsFinite() {
		return
	}
	x0, y0 := canvasToCell(from)
	x1, y1 := canvasToCell(to)
	if abs(x1-x0)+abs(y1-y0) > 2*(c.cols+c.rows) {
		return
	}
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy

	for x0 != x1 || y0 != y1 {
		if y0 < c.rows-1 {
			c.buf.Plot(x0, y0, '·', color, alpha, false)
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PathColor is the color of an in-progress drawn stroke
var PathColor = RGB{122, 162, 247}

// DrawPath marks the cells along a drawn stroke
func (c *Canvas) DrawPath(points []vmath.Vec2) {
	for i := 1; i < len(points); i++ {
		c.drawTrail(points[i-1], points[i], PathColor, 0.6)
	}
	if n := len(points); n > 0 && points[n-1].IsFinite() {
		col, row := canvasToCell(points[n-1])
		if row < c.rows-1 {
			c.buf.Plot(col, row, '+', PathColor, 1, true)
		}
	}
}

// Glyph picks the character for a snapshot
func Glyph(s particle.Snapshot) rune {
	if s.Mode == particle.ModeSwirl {
		q := int(math.Floor(vmath.WrapDegrees(s.Rotation*180/math.Pi) / 45))
		return spinGlyphs[q%4]
	}
	for _, g := range sizeGlyphs {
		if s.Size < g.upTo {
			return g.glyph
		}
	}
	return sizeGlyphs[len(sizeGlyphs)-1].glyph
}

// End draws the status line and presents the frame
func (c *Canvas) End() {
	y := c.rows - 1
	c.buf.Text(0, y, c.status, StatusFg, StatusBg)
	c.buf.Fill(y, StatusBg)
	c.buf.Flush(c.screen)
	c.screen.Show()
}

// Buffer exposes the compositor for inspection
func (c *Canvas) Buffer() *Buffer {
	return c.buf
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

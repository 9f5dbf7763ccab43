package tty

import (
	"image/color"
	"math"
)

// Cell is one character cell of a Canvas.
type Cell struct {
	Rune  rune
	Color color.RGBA
}

// Canvas is a grid of character cells that shapes are rasterized into before being copied to the screen.
// Cells with a zero Rune are empty.
type Canvas struct {
	W, H  int
	cells []Cell
}

// NewCanvas returns an empty w×h canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.W, c.H = w, h
	if cap(c.cells) >= w*h {
		c.cells = c.cells[:w*h]
	} else {
		c.cells = make([]Cell, w*h)
	}
	c.Clear()
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// At returns the cell at (x, y), or an empty cell outside the canvas.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return Cell{}
	}
	return c.cells[y*c.W+x]
}

// Set writes a cell. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, r rune, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.cells[y*c.W+x] = Cell{Rune: r, Color: col}
}

// Text writes s left to right starting at (x, y), one rune per cell.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	for _, r := range s {
		c.Set(x, y, r, col)
		x++
	}
}

// Line draws a line from a to b with a DDA stepper. The segment is clipped to the canvas
// first, so only the visible part is stepped.
func (c *Canvas) Line(a, b Point, r rune, col color.RGBA) {
	a, b, ok := c.clip(a, b)
	if !ok {
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		c.Set(int(math.Round(a.X)), int(math.Round(a.Y)), r, col)
		return
	}
	n := int(steps)
	for i := 0; i <= n; i++ {
		t := float64(i) / steps
		c.Set(int(math.Round(a.X+dx*t)), int(math.Round(a.Y+dy*t)), r, col)
	}
}

// Outcodes for clip.
const (
	clipLeft = 1 << iota
	clipRight
	clipTop
	clipBottom
)

func (c *Canvas) outcode(p Point) int {
	code := 0
	switch {
	case p.X < 0:
		code |= clipLeft
	case p.X > float64(c.W-1):
		code |= clipRight
	}
	switch {
	case p.Y < 0:
		code |= clipTop
	case p.Y > float64(c.H-1):
		code |= clipBottom
	}
	return code
}

// clip trims segment ab to the cell centres of the canvas (Cohen-Sutherland).
// ok is false when no part of it is on the canvas.
func (c *Canvas) clip(a, b Point) (Point, Point, bool) {
	if c.W == 0 || c.H == 0 || !a.finite() || !b.finite() {
		return a, b, false
	}
	maxX, maxY := float64(c.W-1), float64(c.H-1)
	ca, cb := c.outcode(a), c.outcode(b)
	for {
		if ca|cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}
		out := ca
		if out == 0 {
			out = cb
		}
		var p Point
		switch {
		case out&clipTop != 0:
			p = Point{a.X + (b.X-a.X)*(0-a.Y)/(b.Y-a.Y), 0}
		case out&clipBottom != 0:
			p = Point{a.X + (b.X-a.X)*(maxY-a.Y)/(b.Y-a.Y), maxY}
		case out&clipRight != 0:
			p = Point{maxX, a.Y + (b.Y-a.Y)*(maxX-a.X)/(b.X-a.X)}
		default:
			p = Point{0, a.Y + (b.Y-a.Y)*(0-a.X)/(b.X-a.X)}
		}
		if out == ca {
			a, ca = p, c.outcode(p)
		} else {
			b, cb = p, c.outcode(p)
		}
	}
}

// Point is a projected position in cell coordinates.
type Point struct {
	X, Y float64
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// edge is the signed doubled area of (a, b, p); its sign tells which side of a→b p lies on.
func edge(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Triangle fills every cell whose centre lies inside triangle abc, in either winding.
func (c *Canvas) Triangle(a, b, p Point, r rune, col color.RGBA) {
	if !a.finite() || !b.finite() || !p.finite() {
		return
	}
	area := edge(a, b, p)
	if area == 0 {
		return
	}
	// bounds are clamped before the int conversion
	minX := int(math.Max(math.Floor(math.Min(a.X, math.Min(b.X, p.X))), 0))
	maxX := int(math.Min(math.Ceil(math.Max(a.X, math.Max(b.X, p.X))), float64(c.W-1)))
	minY := int(math.Max(math.Floor(math.Min(a.Y, math.Min(b.Y, p.Y))), 0))
	maxY := int(math.Min(math.Ceil(math.Max(a.Y, math.Max(b.Y, p.Y))), float64(c.H-1)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			q := Point{float64(x) + 0.5, float64(y) + 0.5}
			w0, w1, w2 := edge(b, p, q), edge(p, a, q), edge(a, b, q)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				c.Set(x, y, r, col)
			}
		}
	}
}

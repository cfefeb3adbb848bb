package viz

import "strings"

// Braille cells pack 2x4 dots per terminal character, offset 0x2800.
// Dot bit layout:
//
//	1  8
//	2  10
//	4  20
//	40 80
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid. Coordinates are in dots: a canvas of
// w x h characters spans (w*2) x (h*4) dots, origin top-left.
type Canvas struct {
	w, h  int
	cells []rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{w: w, h: h, cells: make([]rune, w*h)}
	c.Clear()
	return c
}

// DotWidth returns the canvas width in dots.
func (c *Canvas) DotWidth() int { return c.w * 2 }

// DotHeight returns the canvas height in dots.
func (c *Canvas) DotHeight() int { return c.h * 4 }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0x2800
	}
}

// Set lights the dot at (x, y); out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.w || row >= c.h {
		return
	}
	c.cells[row*c.w+col] |= brailleBits[y%4][x%2]
}

// Line draws a dot line from (x0, y0) to (x1, y1) with Bresenham's
// algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.w + 1) * c.h)
	for row := 0; row < c.h; row++ {
		b.WriteString(string(c.cells[row*c.w : (row+1)*c.w]))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

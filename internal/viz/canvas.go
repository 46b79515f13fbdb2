package viz

import "strings"

// brailleBase is the empty braille cell; each cell packs a 2x4 dot grid.
const brailleBase = 0x2800

// dotBits maps (subY, subX) to the braille bit for that dot:
//
//	1  4
//	2  5
//	3  6
//	7  8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel buffer. A canvas of Width x Height cells
// exposes a dot grid of (Width*2) x (Height*4) pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}
	return &Canvas{Width: w, Height: h, Grid: grid}
}

// DotWidth and DotHeight report the pixel dimensions of the dot grid.
func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= dotBits[y%4][x%2]
}

// Unset turns off the dot at (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= dotBits[y%4][x%2]
	if c.Grid[row][col] < brailleBase {
		c.Grid[row][col] = brailleBase
	}
}

// SetRune places a literal rune at cell coordinates, overriding braille
// content. Used for markers that should stand out from the dot field.
func (c *Canvas) SetRune(cellX, cellY int, r rune) {
	if cellX < 0 || cellY < 0 || cellX >= c.Width || cellY >= c.Height {
		return
	}
	c.Grid[cellY][cellX] = r
}

// Clear resets every cell to the empty braille pattern.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine draws a line in dot coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
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
	for _, row := range c.Grid {
		b.WriteString(string(row))
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

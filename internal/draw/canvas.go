package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cell is what one terminal character shows: two stacked sub-pixels.
type cell struct {
	top, bottom     colorful.Color
	topOn, bottomOn bool
	dirty           bool // never equal to a rendered cell; forces a redraw
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Logical coordinates are scaled uniformly to fit the terminal and centered;
// drawing outside the logical area is clipped.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2
	pixels         []colorful.Color
	lit            []bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scale         float64
	originX       float64 // pixel position of logical (0,0)
	originY       float64
	clipX0        int
	clipY0        int
	clipX1        int // exclusive
	clipY1        int // exclusive

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Last rendered frame, for sending only changed cells.
	prev      []cell
	prevValid bool

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game world.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change forces the next Render to redraw every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.lit = make([]bool, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.prevValid = false
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scale = math.Min(float64(termWidth)/c.logicalWidth, float64(subPixelHeight)/c.logicalHeight)
	w := c.logicalWidth * c.scale
	h := c.logicalHeight * c.scale
	// epsilon absorbs float error so an exact fit gives a zero origin
	const epsilon = 1e-9
	c.originX = math.Max(0, math.Floor((float64(termWidth)-w)/2+epsilon))
	c.originY = math.Max(0, math.Floor((float64(subPixelHeight)-h)/2+epsilon))
	c.clipX0 = int(c.originX)
	c.clipY0 = int(c.originY)
	c.clipX1 = min(termWidth, int(math.Ceil(c.originX+w-epsilon)))
	c.clipY1 = min(subPixelHeight, int(math.Ceil(c.originY+h-epsilon)))
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.lit)
}

// ForceRedraw makes the next Render send every cell, e.g. after the screen was cleared.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// MarkTextDirty records that text was written over n cells starting at the
// 1-based canvas position (col, row), so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		c.prev[r*c.termWidth+x].dirty = true
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col colorful.Color) {
	if x >= c.clipX0 && x < c.clipX1 && y >= c.clipY0 && y < c.clipY1 {
		i := y*c.termWidth + x
		c.pixels[i] = col
		c.lit[i] = true
	}
}

// toPixel converts logical coordinates to (fractional) pixel coordinates.
func (c *Canvas) toPixel(p Point) Point {
	return Point{X: p.X*c.scale + c.originX, Y: p.Y*c.scale + c.originY}
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col colorful.Color) {
	p := c.toPixel(Point{X: x, Y: y})
	c.setPixel(int(math.Floor(p.X)), int(math.Floor(p.Y)), col)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col colorful.Color) {
	a := c.toPixel(p1)
	b := c.toPixel(p2)
	x1 := int(math.Floor(a.X))
	y1 := int(math.Floor(a.Y))
	x2 := int(math.Floor(b.X))
	y2 := int(math.Floor(b.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, col colorful.Color, filled bool) {
	if len(points) < 2 {
		return
	}

	if filled && len(points) >= 3 {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// FillCircle fills a circle of logical radius r. Circles smaller than a
// pixel still light the pixel under their center.
func (c *Canvas) FillCircle(center Point, r float64, col colorful.Color) {
	p := c.toPixel(center)
	pr := r * c.scale
	if pr < 1 {
		c.setPixel(int(math.Floor(p.X)), int(math.Floor(p.Y)), col)
		return
	}
	x0 := int(math.Floor(p.X - pr))
	x1 := int(math.Ceil(p.X + pr))
	y0 := int(math.Floor(p.Y - pr))
	y1 := int(math.Ceil(p.Y + pr))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - p.X
			dy := float64(y) + 0.5 - p.Y
			if dx*dx+dy*dy <= pr*pr {
				c.setPixel(x, y, col)
			}
		}
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col colorful.Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = c.toPixel(p)
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

func (c *Canvas) cellAt(row, col int) cell {
	top := row * 2 * c.termWidth
	bottom := top + c.termWidth
	var cl cell
	if c.lit[top+col] {
		cl.topOn = true
		cl.top = c.pixels[top+col]
	}
	if c.lit[bottom+col] {
		cl.bottomOn = true
		cl.bottom = c.pixels[bottom+col]
	}
	return cl
}

// Render outputs the cells that changed since the previous Render using
// truecolor half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	lastRow, lastCol := -1, -1
	fg, bg := "", ""
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			i := row*c.termWidth + col
			cur := c.cellAt(row, col)
			if c.prevValid && c.prev[i] == cur {
				continue
			}
			c.prev[i] = cur

			if row != lastRow || col != lastCol+1 {
				c.moveCursor(row+1+c.offsetRow, col+1+c.offsetCol)
			}
			lastRow, lastCol = row, col

			ch, wantFg, wantBg := c.cellStyle(cur)
			if wantFg != fg {
				c.renderBuf.WriteString(wantFg)
				fg = wantFg
			}
			if wantBg != bg {
				c.renderBuf.WriteString(wantBg)
				bg = wantBg
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	c.prevValid = true

	if c.renderBuf.Len() == 0 {
		return
	}
	c.renderBuf.WriteString("\033[0m")
	_, _ = io.WriteString(w, c.renderBuf.String())
}

const (
	defaultFg = "\033[39m"
	defaultBg = "\033[49m"
)

// cellStyle picks the character and SGR sequences for a cell.
func (c *Canvas) cellStyle(cl cell) (rune, string, string) {
	switch {
	case cl.topOn && cl.bottomOn && cl.top == cl.bottom:
		return BlockFull, c.sgr(38, cl.top), defaultBg
	case cl.topOn && cl.bottomOn:
		return BlockUpperHalf, c.sgr(38, cl.top), c.sgr(48, cl.bottom)
	case cl.topOn:
		return BlockUpperHalf, c.sgr(38, cl.top), defaultBg
	case cl.bottomOn:
		return BlockLowerHalf, c.sgr(38, cl.bottom), defaultBg
	}
	return ' ', defaultFg, defaultBg
}

// sgr builds a truecolor foreground (38) or background (48) sequence.
func (c *Canvas) sgr(kind int, col colorful.Color) string {
	r, g, b := col.Clamped().RGB255()
	buf := append(c.numBuf[:0], "\033["...)
	buf = strconv.AppendInt(buf, int64(kind), 10)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendInt(buf, int64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(b), 10)
	buf = append(buf, 'm')
	return string(buf)
}

func (c *Canvas) moveCursor(row, col int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	move := func(row, col int) {
		buf.WriteString("\033[")
		buf.WriteString(strconv.Itoa(row))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(col))
		buf.WriteByte('H')
	}
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			move(top, left)
			buf.WriteString("┌" + line + "┐")
			move(bottom, left)
			buf.WriteString("└" + line + "┘")
		} else {
			move(top, c.offsetCol+1)
			buf.WriteString(line)
			move(bottom, c.offsetCol+1)
			buf.WriteString(line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			move(row, left)
			buf.WriteString("│")
			move(row, right)
			buf.WriteString("│")
		}
	}

	_, _ = io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	p := c.toPixel(Point{X: x, Y: y})
	return int(math.Floor(p.X)) + 1, int(math.Floor(p.Y))/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

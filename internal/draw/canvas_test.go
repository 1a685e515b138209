package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var green = colorful.Color{R: 0, G: 1, B: 0}

func countLit(c *Canvas) int {
	n := 0
	for _, on := range c.lit {
		if on {
			n++
		}
	}
	return n
}

func TestUniformScaleAndLetterbox(t *testing.T) {
	// 80 columns x 30 rows = 80x60 pixels; an 800x600 world scales by 0.1.
	c := NewScaledCanvas(80, 30, 800, 600)
	if c.scale != 0.1 {
		t.Fatalf("scale = %v, want 0.1", c.scale)
	}
	// A wider terminal letterboxes horizontally.
	c.Resize(120, 30)
	if c.scale != 0.1 || c.originX != 20 || c.originY != 0 {
		t.Fatalf("scale %v origin (%v,%v), want 0.1 (20,0)", c.scale, c.originX, c.originY)
	}
	col, row := c.LogicalToTerminal(0, 0)
	if col != 21 || row != 1 {
		t.Fatalf("LogicalToTerminal(0,0) = (%d,%d), want (21,1)", col, row)
	}
}

func TestDrawingIsClipped(t *testing.T) {
	c := NewScaledCanvas(120, 30, 800, 600)
	c.SetFloat(-50, 300, green)
	c.SetFloat(850, 300, green)
	c.DrawLine(Point{X: -400, Y: 10}, Point{X: -10, Y: 10}, green)
	if n := countLit(c); n != 0 {
		t.Fatalf("%d pixels lit outside the world", n)
	}
	c.SetFloat(400, 300, green)
	if n := countLit(c); n != 1 {
		t.Fatalf("%d pixels lit, want 1", n)
	}
}

func TestFillCircle(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillCircle(Point{X: 400, Y: 300}, 50, green) // 5 pixels
	lit := countLit(c)
	if lit < 60 || lit > 100 {
		t.Fatalf("circle lit %d pixels, want about 78", lit)
	}

	c.Clear()
	c.FillCircle(Point{X: 400, Y: 300}, 2, green) // smaller than a pixel
	if n := countLit(c); n != 1 {
		t.Fatalf("tiny circle lit %d pixels, want 1", n)
	}
}

func TestDrawPolygonOutline(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	square := []Point{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 300}, {X: 100, Y: 300}}
	c.DrawPolygon(square, green, false)
	outline := countLit(c)
	if outline != 80 {
		t.Fatalf("outline lit %d pixels, want 80", outline)
	}
	c.Clear()
	c.DrawPolygon(square, green, true)
	if filled := countLit(c); filled <= outline {
		t.Fatalf("filled polygon lit %d pixels, outline %d", filled, outline)
	}
}

func TestRenderSendsOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.SetFloat(400, 300, green)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.Contains(first.String(), "38;2;0;255;0") {
		t.Fatalf("first frame missing green: %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %d bytes", second.Len())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if third.Len() == 0 || strings.Contains(third.String(), string(BlockUpperHalf)) {
		t.Fatalf("cleared frame should erase one cell, got %q", third.String())
	}
}

func TestForceRedrawAndTextDirty(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	var buf bytes.Buffer
	c.Render(&buf)

	buf.Reset()
	c.MarkTextDirty(3, 2, 4)
	c.Render(&buf)
	if got := strings.Count(buf.String(), " "); got != 4 {
		t.Fatalf("repainted %d cells, want 4", got)
	}

	buf.Reset()
	c.ForceRedraw()
	c.Render(&buf)
	if got := strings.Count(buf.String(), " "); got != 50 {
		t.Fatalf("repainted %d cells, want 50", got)
	}
}

func TestHalfBlockChoice(t *testing.T) {
	red := colorful.Color{R: 1}
	c := NewScaledCanvas(4, 2, 4, 4)
	tests := []struct {
		cell cell
		want rune
	}{
		{cell{topOn: true, top: green, bottomOn: true, bottom: green}, BlockFull},
		{cell{topOn: true, top: green, bottomOn: true, bottom: red}, BlockUpperHalf},
		{cell{topOn: true, top: green}, BlockUpperHalf},
		{cell{bottomOn: true, bottom: red}, BlockLowerHalf},
		{cell{}, ' '},
	}
	for _, tt := range tests {
		if ch, _, _ := c.cellStyle(tt.cell); ch != tt.want {
			t.Errorf("cellStyle(%+v) = %q, want %q", tt.cell, ch, tt.want)
		}
	}
}

func TestChunkWriterOffsets(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\033[4;3Hhi" {
		t.Fatalf("got %q", out.String())
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		wantW, wantH, col, row int
	}{
		{80, 24, 80, 24, 0, 0},
		{250, 24, 200, 24, 25, 0},
		{100, 80, 100, 60, 0, 10},
		{301, 71, 200, 60, 50, 5},
	}
	for _, tt := range tests {
		w, h, col, row := ClampSize(tt.w, tt.h, 200, 60)
		if w != tt.wantW || h != tt.wantH || col != tt.col || row != tt.row {
			t.Errorf("ClampSize(%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tt.w, tt.h, w, h, col, row, tt.wantW, tt.wantH, tt.col, tt.row)
		}
	}
}

type countingWriter struct {
	writes  int
	largest int
	total   int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	w.largest = max(w.largest, len(p))
	w.total += len(p)
	return len(p), nil
}

func TestChunkWriterSplitsLargeFrames(t *testing.T) {
	var out countingWriter
	cw := NewChunkWriter(&out, 0, 0)
	cw.WriteString(strings.Repeat("x", 3000))
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.writes != 3 || out.largest > maxChunkSize || out.total != 3000 {
		t.Fatalf("writes=%d largest=%d total=%d", out.writes, out.largest, out.total)
	}

	// Nothing buffered: nothing written.
	if err := cw.Flush(); err != nil || out.writes != 3 {
		t.Fatalf("empty flush wrote (writes=%d, err=%v)", out.writes, err)
	}
}

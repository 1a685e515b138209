package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize keeps each write under a typical 1500 byte MTU.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output (canvas cells, borders
// and overlay text) and sends it in MTU-sized chunks so a frame over SSH
// arrives as a few packets rather than many small writes.
type ChunkWriter struct {
	w      io.Writer
	buf    []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		w:      w,
		buf:    make([]byte, 0, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = append(cw.buf, "\033["...)
	cw.buf = strconv.AppendInt(cw.buf, int64(row+cw.offRow), 10)
	cw.buf = append(cw.buf, ';')
	cw.buf = strconv.AppendInt(cw.buf, int64(col+cw.offCol), 10)
	cw.buf = append(cw.buf, 'H')
}

// Write implements io.Writer so Canvas.Render can target the frame buffer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString appends s to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt writes s at a 1-based canvas position; the offset is applied.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.WriteString(s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the buffered frame in chunks of at most maxChunkSize bytes and
// empties the buffer. Unsent bytes are dropped on error.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf
	cw.buf = cw.buf[:0]
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen resets colors, clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[0m\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnterAltScreen switches to the alternate screen buffer so the game does not
// scroll the user's shell history.
func EnterAltScreen(w io.Writer) {
	fmt.Fprint(w, "\033[?1049h")
}

// ExitAltScreen restores the normal screen buffer.
func ExitAltScreen(w io.Writer) {
	fmt.Fprint(w, "\033[?1049l")
}

// ClampSize limits a terminal size to the max render resolution and returns
// the offsets that center the clamped area in the full terminal.
func ClampSize(width, height, maxWidth, maxHeight int) (w, h, offsetCol, offsetRow int) {
	w, h = width, height
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
	}
	return w, h, (width - w) / 2, (height - h) / 2
}

package grid

import (
	"fmt"

	"nibbled/internal/buffer"
)

// Side selects one half of the byte under the cursor.
type Side int

const (
	SideHigh Side = iota
	SideLow
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Line is a view over one fixed-width run of document bytes.
type Line struct {
	Offset int64
	Bytes  []byte
}

// Address renders the line's starting offset as 8 uppercase hex digits.
func (l Line) Address() string {
	return fmt.Sprintf("%08X", l.Offset)
}

// Cursor addresses a single nibble. It starts invisible; the first
// directional key press only reveals it without moving.
type Cursor struct {
	Line    int
	Col     int
	Side    Side
	Visible bool
}

// Grid partitions a document into fixed-width addressed lines and carries
// the nibble cursor. The document length never changes, so the partition is
// computed once at construction.
type Grid struct {
	buf   *buffer.Buffer
	width int
	lines []Line
	cur   Cursor
}

// Layout partitions data into lines of width bytes each. The last line may
// be shorter; empty input yields no lines. The returned lines alias data.
func Layout(data []byte, width int) []Line {
	if width <= 0 {
		return nil
	}
	lines := make([]Line, 0, (len(data)+width-1)/width)
	for start := 0; start < len(data); start += width {
		end := start + width
		if end > len(data) {
			end = len(data)
		}
		lines = append(lines, Line{
			Offset: int64(start),
			Bytes:  data[start:end],
		})
	}
	return lines
}

func New(buf *buffer.Buffer, width int) *Grid {
	return &Grid{
		buf:   buf,
		width: width,
		lines: Layout(buf.Data(), width),
	}
}

func (g *Grid) Lines() []Line {
	return g.lines
}

func (g *Grid) LineWidth() int {
	return g.width
}

func (g *Grid) Cursor() Cursor {
	return g.cur
}

func (g *Grid) IsModified() bool {
	return g.buf.IsModified()
}

// CursorOffset resolves the cursor to a document offset. The second return
// is false when the cursor hangs past the end of a short last line.
func (g *Grid) CursorOffset() (int64, bool) {
	if len(g.lines) == 0 {
		return 0, false
	}
	off := int64(g.cur.Line)*int64(g.width) + int64(g.cur.Col)
	if off >= g.buf.Size() {
		return 0, false
	}
	return off, true
}

// Move applies one directional key press. From the invisible state any
// direction only reveals the cursor and consumes the press.
func (g *Grid) Move(dir Direction) {
	if len(g.lines) == 0 {
		return
	}

	if !g.cur.Visible {
		g.cur.Visible = true
		return
	}

	switch dir {
	case Left:
		if g.cur.Side == SideLow {
			g.cur.Side = SideHigh
			return
		}
		if g.cur.Col == 0 {
			return
		}
		g.cur.Col--
		g.cur.Side = SideLow

	case Right:
		if g.cur.Side == SideHigh {
			g.cur.Side = SideLow
			return
		}
		if g.cur.Col >= g.lastCol() {
			return
		}
		g.cur.Col++
		g.cur.Side = SideHigh

	case Up:
		// Column is deliberately not re-clamped against the destination
		// line; reads and writes past a short last line no-op instead.
		if g.cur.Line > 0 {
			g.cur.Line--
		}

	case Down:
		if g.cur.Line < len(g.lines)-1 {
			g.cur.Line++
		}
	}
}

// lastCol is the last valid column on the current line.
func (g *Grid) lastCol() int {
	n := len(g.lines[g.cur.Line].Bytes)
	if n == 0 {
		return 0
	}
	return n - 1
}

// WriteNibble replaces the 4-bit half of the byte under the cursor with
// nibble (0x0-0xF). It no-ops while the cursor is hidden or when no byte
// exists under the cursor.
func (g *Grid) WriteNibble(nibble byte) {
	if !g.cur.Visible {
		return
	}
	off, ok := g.CursorOffset()
	if !ok {
		return
	}
	b, ok := g.buf.GetByte(off)
	if !ok {
		return
	}

	nibble &= 0xF
	if g.cur.Side == SideHigh {
		b = (nibble << 4) | (b & 0x0F)
	} else {
		b = (b & 0xF0) | nibble
	}
	g.buf.Replace(off, b)
}

// Bytes reconstructs the document by concatenating all lines in order.
func (g *Grid) Bytes() []byte {
	out := make([]byte, 0, g.buf.Size())
	for _, line := range g.lines {
		out = append(out, line.Bytes...)
	}
	return out
}

package frame

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Frame is a fixed-size grid of cells representing one rendered screen.
// Cells are stored row-major; all writes are bounds-checked no-ops outside
// the grid so a narrow terminal never crashes the renderer.
type Frame struct {
	width, height int
	cells         []Cell
}

// Patch is a single-cell correction turning one frame into another.
type Patch struct {
	X, Y int
	Cell Cell
}

// Sink receives a full-frame repaint, one cell at a time in row-major
// order. Implementations own the actual terminal writes.
type Sink interface {
	// Clear erases the target and homes the write position.
	Clear()
	// SetColors sets the pen for subsequent Put calls.
	SetColors(fg, bg Color)
	// Put writes one glyph and advances one cell to the right.
	Put(r rune)
	// Newline moves the write position to the start of the next row.
	Newline()
}

func New(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Clear resets every cell in place; the allocation is reused so frames can
// be recycled across ticks.
func (f *Frame) Clear() {
	def := DefaultCell()
	for i := range f.cells {
		f.cells[i] = def
	}
}

// At returns the cell at (x,y), or the default cell out of bounds.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return DefaultCell()
	}
	return f.cells[y*f.width+x]
}

// PutCell writes one cell. Out-of-bounds writes are silently dropped.
func (f *Frame) PutCell(x, y int, r rune, fg, bg Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// PutRun writes s into consecutive cells starting at (x,y). It never wraps
// to the next row; cells falling outside the grid are dropped per cell.
// Wide runes advance by their display width.
func (f *Frame) PutRun(x, y int, s string, fg, bg Color) {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		f.PutCell(col, y, r, fg, bg)
		col += w
	}
}

// Diff returns the minimal row-major patch list turning ref into f. Both
// frames must have identical dimensions; a mismatch is a programmer error
// reported as an error value rather than a panic.
func (f *Frame) Diff(ref *Frame) ([]Patch, error) {
	if ref == nil || f.width != ref.width || f.height != ref.height {
		return nil, fmt.Errorf("frame: diff dimension mismatch")
	}

	var patches []Patch
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			i := y*f.width + x
			if f.cells[i] != ref.cells[i] {
				patches = append(patches, Patch{X: x, Y: y, Cell: f.cells[i]})
			}
		}
	}
	return patches, nil
}

// Apply writes a patch list into the frame. Together with Diff it keeps
// the previous frame in lockstep with what the terminal now shows.
func (f *Frame) Apply(patches []Patch) {
	for _, p := range patches {
		f.PutCell(p.X, p.Y, p.Cell.Rune, p.Cell.Fg, p.Cell.Bg)
	}
}

// Render performs an unconditional full repaint into sink. Color commands
// are only re-emitted when the pen actually changes between consecutive
// cells.
func (f *Frame) Render(sink Sink) {
	sink.Clear()

	curFg, curBg := DefaultFg, DefaultBg
	sink.SetColors(curFg, curBg)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sink.Newline()
		}
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c.Fg != curFg || c.Bg != curBg {
				curFg, curBg = c.Fg, c.Bg
				sink.SetColors(curFg, curBg)
			}
			sink.Put(c.Rune)
		}
	}
}

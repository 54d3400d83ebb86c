// Package render projects document and cursor state into frame cells. It
// holds no state of its own; every function is a pure write into a frame.
package render

import (
	"nibbled/internal/config"
	"nibbled/internal/frame"
	"nibbled/internal/grid"
)

// Column layout: 8 address digits, a colon, two blanks, then three cells
// per byte (two digits plus a gap), then one extra gap before the ASCII
// column.
const hexColOffset = 11

const hexDigits = "0123456789ABCDEF"

// DocumentWidth is the total column count of one rendered line for the
// given bytes-per-line width, ASCII column included.
func DocumentWidth(lineWidth int) int {
	return hexColOffset + 3*lineWidth + 1 + lineWidth
}

// Document writes the addressed hex/ASCII grid with the cursor highlight
// at origin (x0,y0). Rows that fall below the frame are skipped; cells
// past its right edge are dropped by the frame itself.
func Document(f *frame.Frame, g *grid.Grid, x0, y0 int, pal *config.Palette) {
	_, h := f.Size()
	cur := g.Cursor()
	asciiX := x0 + hexColOffset + 3*g.LineWidth() + 1

	for y, line := range g.Lines() {
		row := y0 + y
		if row >= h {
			break
		}

		f.PutRun(x0, row, line.Address()+":", pal.Address, pal.Background)

		for x, b := range line.Bytes {
			hiFg, hiBg := pal.Foreground, pal.Background
			loFg, loBg := pal.Foreground, pal.Background
			if cur.Visible && cur.Line == y && cur.Col == x {
				if cur.Side == grid.SideHigh {
					hiFg, hiBg = pal.Background, pal.Foreground
				} else {
					loFg, loBg = pal.Background, pal.Foreground
				}
			}

			f.PutCell(x0+hexColOffset+3*x, row, rune(hexDigits[b>>4]), hiFg, hiBg)
			f.PutCell(x0+hexColOffset+1+3*x, row, rune(hexDigits[b&0xF]), loFg, loBg)
		}

		for x, b := range line.Bytes {
			r := '.'
			if b >= 0x21 && b <= 0x7E {
				r = rune(b)
			}
			f.PutCell(asciiX+x, row, r, pal.ASCII, pal.Background)
		}
	}
}

// Bar fills one full row with bg and writes label left-justified.
func Bar(f *frame.Frame, row int, label string, fg, bg frame.Color) {
	w, h := f.Size()
	if row < 0 || row >= h {
		return
	}
	for x := 0; x < w; x++ {
		f.PutCell(x, row, ' ', fg, bg)
	}
	f.PutRun(0, row, label, fg, bg)
}

// Header writes the top bar: dirty star, file name, byte count.
func Header(f *frame.Frame, label string, dirty bool, pal *config.Palette) {
	Bar(f, 0, "  "+label, pal.HeaderFg, pal.HeaderBg)
	if dirty {
		f.PutCell(0, 0, '*', pal.Dirty, pal.HeaderBg)
	}
}

// Status writes the bottom bar.
func Status(f *frame.Frame, msg string, pal *config.Palette) {
	_, h := f.Size()
	Bar(f, h-1, msg, pal.StatusFg, pal.StatusBg)
}

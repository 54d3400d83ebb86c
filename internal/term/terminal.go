// Package term owns everything that touches the terminal device: mode
// setup and teardown, the decoded key event stream, and cell writes. The
// rest of the editor only sees frames, patches and events.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"nibbled/internal/frame"
)

// Terminal drives the real terminal through tcell. Init acquires raw mode
// and the alternate screen; Release restores the terminal and is safe to
// call more than once, so callers can defer it on every exit path.
type Terminal struct {
	screen tcell.Screen
	events chan Event

	releaseOnce sync.Once

	// full-repaint pen state for the frame.Sink implementation
	penX, penY int
	penStyle   tcell.Style
}

func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{
		screen: screen,
		events: make(chan Event, 16),
	}, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	go t.pump()
	return nil
}

// Release restores the terminal to its original mode. Idempotent.
func (t *Terminal) Release() {
	t.releaseOnce.Do(func() {
		t.screen.Fini()
	})
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// pump forwards decoded events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if e, ok := convertEvent(ev); ok {
			t.events <- e
		}
	}
}

// Poll returns one pending event without blocking.
func (t *Terminal) Poll() (Event, bool) {
	select {
	case e := <-t.events:
		return e, true
	default:
		return Event{}, false
	}
}

// Interrupt queues a quit key press. Used by signal handlers so shutdown
// flows through the ordinary session loop.
func (t *Terminal) Interrupt() {
	select {
	case t.events <- Event{Type: EventKey, Key: KeyCtrlC}:
	default:
	}
}

// Apply writes a patch list to the screen. Show must be called afterwards
// to make the changes visible.
func (t *Terminal) Apply(patches []frame.Patch) {
	for _, p := range patches {
		t.screen.SetContent(p.X, p.Y, p.Cell.Rune, nil, cellStyle(p.Cell))
	}
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func cellStyle(c frame.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
}

// frame.Sink implementation: full repaints land here on the first frame.

func (t *Terminal) Clear() {
	t.screen.Clear()
	t.penX, t.penY = 0, 0
	t.penStyle = cellStyle(frame.DefaultCell())
}

func (t *Terminal) SetColors(fg, bg frame.Color) {
	t.penStyle = cellStyle(frame.Cell{Fg: fg, Bg: bg})
}

func (t *Terminal) Put(r rune) {
	t.screen.SetContent(t.penX, t.penY, r, nil, t.penStyle)
	t.penX++
}

func (t *Terminal) Newline() {
	t.penX = 0
	t.penY++
}

// Package session runs the interactive editing loop: one tick polls at
// most one key event, applies it, renders, diffs against the previous
// frame and ships only the changed cells to the terminal.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"nibbled/internal/buffer"
	"nibbled/internal/config"
	"nibbled/internal/frame"
	"nibbled/internal/grid"
	"nibbled/internal/render"
	"nibbled/internal/term"
)

// Backend is the terminal as the session sees it: an event source, a
// patch target and a full-repaint sink.
type Backend interface {
	frame.Sink
	Size() (int, int)
	Poll() (term.Event, bool)
	Apply([]frame.Patch)
	Show()
}

type Options struct {
	ReadOnly bool
	Tick     time.Duration
	Logger   *slog.Logger
}

const hintLine = " h/j/k/l move   0-9 a-f edit   ^S save   ^C quit"

type Session struct {
	buf     *buffer.Buffer
	grid    *grid.Grid
	backend Backend
	pal     *config.Palette
	log     *slog.Logger

	cur  *frame.Frame
	prev *frame.Frame

	status           string
	confirmOverwrite bool
	readOnly         bool
	tick             time.Duration
	quit             bool
}

func New(buf *buffer.Buffer, g *grid.Grid, backend Backend, pal *config.Palette, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		buf:      buf,
		grid:     g,
		backend:  backend,
		pal:      pal,
		log:      log,
		readOnly: opts.ReadOnly,
		tick:     opts.Tick,
	}
}

// Run drives the tick loop until quit. The frame dimensions are fixed
// from the terminal size at entry.
func (s *Session) Run() error {
	w, h := s.backend.Size()
	s.cur = frame.New(w, h)
	s.prev = frame.New(w, h)
	s.log.Debug("session started", "width", w, "height", h, "bytes", s.buf.Size())

	// The first frame is a full repaint; every later tick ships a diff.
	s.draw(s.cur)
	s.cur.Render(s.backend)
	s.backend.Show()
	s.cur, s.prev = s.prev, s.cur

	for !s.quit {
		if ev, ok := s.backend.Poll(); ok {
			s.handle(ev)
		}

		s.cur.Clear()
		s.draw(s.cur)

		patches, err := s.cur.Diff(s.prev)
		if err != nil {
			return fmt.Errorf("frame diff: %w", err)
		}
		if len(patches) > 0 {
			s.backend.Apply(patches)
			s.backend.Show()
		}

		// Role swap, not a copy: the frame just shown becomes the
		// reference for the next diff.
		s.cur, s.prev = s.prev, s.cur

		if s.tick > 0 {
			time.Sleep(s.tick)
		}
	}

	s.log.Debug("session ended")
	return nil
}

func (s *Session) handle(ev term.Event) {
	if ev.Type != term.EventKey {
		// The frame grid is sized once at startup; resizes are ignored.
		return
	}

	s.status = ""
	if ev.Key != term.KeyCtrlS && !(ev.Key == term.KeyRune && ev.Rune == 's') {
		s.confirmOverwrite = false
	}

	switch ev.Key {
	case term.KeyCtrlC, term.KeyCtrlQ:
		s.quit = true
	case term.KeyUp:
		s.grid.Move(grid.Up)
	case term.KeyDown:
		s.grid.Move(grid.Down)
	case term.KeyLeft:
		s.grid.Move(grid.Left)
	case term.KeyRight:
		s.grid.Move(grid.Right)
	case term.KeyCtrlS:
		s.save()
	case term.KeyRune:
		s.handleRune(ev.Rune)
	}
}

func (s *Session) handleRune(r rune) {
	switch r {
	case 'h':
		s.grid.Move(grid.Left)
	case 'j':
		s.grid.Move(grid.Down)
	case 'k':
		s.grid.Move(grid.Up)
	case 'l':
		s.grid.Move(grid.Right)
	case 's':
		s.save()
	default:
		if n, ok := hexValue(r); ok {
			if s.readOnly {
				s.status = "read-only: edits disabled"
				return
			}
			s.grid.WriteNibble(n)
		}
	}
}

// save is transient on failure: the message lands in the status bar and
// the session keeps running.
func (s *Session) save() {
	if s.readOnly {
		s.status = "read-only: not saved"
		return
	}

	changed, err := s.buf.HasChangedOnDisk()
	if err == nil && changed && !s.confirmOverwrite {
		s.confirmOverwrite = true
		s.status = "file changed on disk, save again to overwrite"
		return
	}
	s.confirmOverwrite = false

	data := s.grid.Bytes()
	if err := s.buf.Save(); err != nil {
		s.status = fmt.Sprintf("save failed: %v", err)
		s.log.Error("save failed", "error", err)
		return
	}
	s.status = fmt.Sprintf("wrote %d bytes", len(data))
	s.log.Debug("saved", "bytes", len(data), "file", s.buf.Filename())
}

func (s *Session) draw(f *frame.Frame) {
	label := fmt.Sprintf("%s (%d bytes)", filepath.Base(s.buf.Filename()), s.buf.Size())
	if s.readOnly {
		label += " [read-only]"
	}
	render.Header(f, label, s.grid.IsModified(), s.pal)

	render.Document(f, s.grid, 0, 1, s.pal)

	msg := hintLine
	if s.status != "" {
		msg = " " + s.status
	}
	render.Status(f, msg, s.pal)
}

func hexValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

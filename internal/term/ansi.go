package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"nibbled/internal/frame"
)

// ANSIWriter is a frame.Sink that renders as a colored escape-sequence
// stream. It backs the one-shot dump mode, where the hex view goes to
// stdout instead of the interactive screen.
type ANSIWriter struct {
	w       io.Writer
	profile termenv.Profile
}

func NewANSIWriter(w io.Writer, profile termenv.Profile) *ANSIWriter {
	return &ANSIWriter{w: w, profile: profile}
}

// Clear resets the pen; a stream has no screen to erase.
func (a *ANSIWriter) Clear() {
	a.Reset()
}

func (a *ANSIWriter) SetColors(fg, bg frame.Color) {
	var parts []string
	if s := a.profile.Color(fg.Hex()).Sequence(false); s != "" {
		parts = append(parts, s)
	}
	if s := a.profile.Color(bg.Hex()).Sequence(true); s != "" {
		parts = append(parts, s)
	}
	if len(parts) > 0 {
		fmt.Fprintf(a.w, "%s%sm", termenv.CSI, strings.Join(parts, ";"))
	}
}

func (a *ANSIWriter) Put(r rune) {
	fmt.Fprintf(a.w, "%c", r)
}

func (a *ANSIWriter) Newline() {
	fmt.Fprintln(a.w)
}

// Reset drops the pen back to the terminal default. Call after Render so
// the shell prompt is not left colored.
func (a *ANSIWriter) Reset() {
	fmt.Fprint(a.w, termenv.CSI+termenv.ResetSeq+"m")
}

package term

import "github.com/gdamore/tcell/v2"

type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlQ
	KeyCtrlS
	KeyEscape
)

// Event is a decoded terminal event. Only key presses the session
// understands and resize notifications come through; everything else is
// dropped at the source.
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	Width, Height int
}

// convertEvent maps a tcell event onto our event type. The second return
// is false for events the session has no use for.
func convertEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return convertKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

func convertKey(ev *tcell.EventKey) (Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp}, true
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown}, true
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft}, true
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight}, true
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}, true
	case tcell.KeyCtrlQ:
		return Event{Type: EventKey, Key: KeyCtrlQ}, true
	case tcell.KeyCtrlS:
		return Event{Type: EventKey, Key: KeyCtrlS}, true
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}, true
	// Ctrl+HJKL double as movement. Ctrl+H shares a code with backspace;
	// movement wins since the editor never deletes.
	case tcell.KeyCtrlH:
		return Event{Type: EventKey, Key: KeyLeft}, true
	case tcell.KeyCtrlJ:
		return Event{Type: EventKey, Key: KeyDown}, true
	case tcell.KeyCtrlK:
		return Event{Type: EventKey, Key: KeyUp}, true
	case tcell.KeyCtrlL:
		return Event{Type: EventKey, Key: KeyRight}, true
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
	}
	return Event{}, false
}

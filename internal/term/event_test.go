package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
		ok   bool
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyUp}, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyCtrlC}, true},
		{"ctrl+s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyCtrlS}, true},
		{"ctrl+h as left", tcell.NewEventKey(tcell.KeyCtrlH, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyLeft}, true},
		{"ctrl+j as down", tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyDown}, true},
		{"ctrl+k as up", tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyUp}, true},
		{"ctrl+l as right", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModNone), Event{Type: EventKey, Key: KeyRight}, true},
		{"hex digit", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), Event{Type: EventKey, Key: KeyRune, Rune: 'a'}, true},
		{"function key dropped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertEvent(tt.ev)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestConvertResize(t *testing.T) {
	got, ok := convertEvent(tcell.NewEventResize(120, 40))
	if !ok {
		t.Fatal("resize events should pass through")
	}
	if got.Type != EventResize || got.Width != 120 || got.Height != 40 {
		t.Errorf("unexpected event: %+v", got)
	}
}

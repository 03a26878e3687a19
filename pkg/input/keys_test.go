package input

import (
	"testing"
	"time"

	"github.com/go-futura/futura/pkg/geometry"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		in      string
		want    KeyEvent
		wantErr bool
	}{
		{in: "left", want: KeyEvent{Key: KeyLeft}},
		{in: "ctrl+shift+Right", want: KeyEvent{Key: KeyRight, Mods: ModCtrl | ModShift}},
		{in: "ctrl+A", want: KeyEvent{Key: KeyRune('a'), Mods: ModCtrl}},
		{in: "alt+pageup", want: KeyEvent{Key: KeyPageUp, Mods: ModAlt}},
		{in: "hyper+a", wantErr: true},
		{in: "ctrl+nope", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChord(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseChord() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseChord() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyEventString(t *testing.T) {
	ev := KeyEvent{Key: KeyBackspace, Mods: ModShift | ModCtrl}
	if got := ev.String(); got != "ctrl+shift+backspace" {
		t.Errorf("String() = %q", got)
	}
}

func TestMotionNames(t *testing.T) {
	for m := MotionLeft; m <= MotionHistoryForward; m++ {
		got, err := ParseMotion(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMotion(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMotion("none"); err == nil {
		t.Error("ParseMotion(\"none\") succeeded")
	}
	if !MotionDocumentEnd.Moves() || MotionBackspace.Moves() {
		t.Error("Moves() misclassified")
	}
}

func TestDefaultKeymapAltWord(t *testing.T) {
	k := DefaultKeymap(ModAlt)
	if b, _ := k.Lookup(KeyEvent{Key: KeyLeft, Mods: ModAlt}); b.Motion != MotionPreviousWord {
		t.Errorf("alt+left = %v, want previous-word", b.Motion)
	}
	if b, _ := k.Lookup(KeyEvent{Key: KeyLeft, Mods: ModCtrl | ModAlt}); b.Motion != MotionHistoryBack {
		t.Errorf("ctrl+alt+left = %v, want history-back", b.Motion)
	}
}

func TestClickCounterCycles(t *testing.T) {
	c := NewClickCounter(0, 0)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := geometry.Offset{X: 10, Y: 10}
	var got []int
	for i := 0; i < 5; i++ {
		got = append(got, c.Click(p, start.Add(time.Duration(i)*100*time.Millisecond)))
	}
	want := []int{1, 2, 3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("counts = %v, want %v", got, want)
		}
	}
	if c.Click(geometry.Offset{X: 13, Y: 12}, start.Add(550*time.Millisecond)) != 3 {
		t.Error("click within slop did not continue the sequence")
	}
}

package widgets

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/input"
	futuratest "github.com/go-futura/futura/pkg/testing"
	"github.com/go-futura/futura/pkg/theme"
)

func TestLabelUpdateRate(t *testing.T) {
	tester := futuratest.NewTester(t)
	l := NewLabel("a", LabelConfig{UpdateRate: 2})
	if got := l.Updater().Redraws(); got != 1 {
		t.Fatalf("Redraws after construction = %d, want 1", got)
	}

	l.SetText("b")
	l.SetText("c")
	if l.Text() != "c" {
		t.Errorf("Text = %q, want requested %q", l.Text(), "c")
	}

	tester.Pump(l)
	if got := l.DisplayedText(); got != "a" {
		t.Errorf("after frame 1 displayed %q, want %q", got, "a")
	}
	tester.Pump(l)
	if got := l.DisplayedText(); got != "c" {
		t.Errorf("after frame 2 displayed %q, want %q", got, "c")
	}
	if got := l.Updater().Redraws(); got != 2 {
		t.Errorf("Redraws = %d, want one more for a burst of writes", got)
	}
}

func TestLabelSetTextSameIsNoop(t *testing.T) {
	l := NewLabel("same", LabelConfig{UpdateRate: 1})
	l.SetText("same")
	if l.Updater().Pending() {
		t.Error("setting identical text invalidated the label")
	}
}

func TestLabelForceText(t *testing.T) {
	l := NewLabel("a", LabelConfig{UpdateRate: 60})
	l.ForceText("now")
	if got := l.DisplayedText(); got != "now" {
		t.Errorf("displayed %q, want %q", got, "now")
	}
	if l.Updater().Pending() {
		t.Error("ForceText left work pending")
	}
}

func TestLabelBindings(t *testing.T) {
	calls := 0
	enter := input.KeyEvent{Key: input.KeyEnter}
	plus := input.KeyEvent{Key: input.KeyRune('+')}
	up := input.KeyEvent{Key: input.KeyUp}
	l := NewLabel("go", LabelConfig{Command: func() { calls++ }})

	got := l.Bind(enter, plus, up)
	if diff := cmp.Diff([]input.KeyEvent{enter, plus, up}, got); diff != "" {
		t.Errorf("Bind mismatch (-want +got):\n%s", diff)
	}
	got = l.Unbind(plus)
	if diff := cmp.Diff([]input.KeyEvent{enter, up}, got); diff != "" {
		t.Errorf("Unbind mismatch (-want +got):\n%s", diff)
	}

	if !l.HandleKey(enter) || calls != 1 {
		t.Errorf("bound key: calls = %d, want 1", calls)
	}
	if !l.Pressed() {
		t.Error("invoke did not show the pressed state")
	}
	if l.HandleKey(plus) || calls != 1 {
		t.Errorf("unbound key invoked the command")
	}

	l.Tick(futuratest.NewFakeClock().Now())
	if l.Pressed() {
		t.Error("key press outlived its frame")
	}
}

func TestLabelInvokeDisabled(t *testing.T) {
	calls := 0
	l := NewLabel("x", LabelConfig{Command: func() { calls++ }})
	l.SetDisabled(true)
	l.Invoke()
	l.HandleMouse(input.MouseEvent{Action: input.MousePress, Button: input.ButtonPrimary, Pos: geometry.Offset{X: 2, Y: 2}})
	if calls != 0 {
		t.Errorf("disabled label ran its command %d times", calls)
	}
}

func TestLabelHoverColour(t *testing.T) {
	tester := futuratest.NewTester(t)
	l := NewLabel("hi", LabelConfig{UpdateRate: 2})

	l.HandleMouse(input.MouseEvent{Action: input.MouseMove, Pos: geometry.Offset{X: 3, Y: 3}})
	if !l.Hovered() {
		t.Fatal("pointer inside bounds did not hover")
	}
	tester.PumpN(2, l)
	if got := l.Document().StyleAt(0).Color; got != theme.CoolBlack {
		t.Errorf("hover colour = %v, want %v", got, theme.CoolBlack)
	}

	l.HandleMouse(input.MouseEvent{Action: input.MouseMove, Pos: geometry.Offset{X: 300, Y: 3}})
	tester.PumpN(2, l)
	if got := l.Document().StyleAt(0).Color; got != theme.DefaultLabelColors().Normal {
		t.Errorf("normal colour = %v, want black", got)
	}
}

func TestLabelDraw(t *testing.T) {
	tester := futuratest.NewTester(t)
	l := NewLabel("one\ntwo", LabelConfig{Position: geometry.Offset{X: 10, Y: 20}})

	dl := tester.Paint(l)
	if diff := cmp.Diff([]string{"one", "two"}, dl.Texts()); diff != "" {
		t.Errorf("drawn text mismatch (-want +got):\n%s", diff)
	}
	ops := dl.Ops()
	if ops[1].Start.Y <= ops[0].Start.Y || ops[0].Start.X != 10 {
		t.Errorf("lines drawn at %v and %v", ops[0].Start, ops[1].Start)
	}
	futuratest.CaptureSnapshot(l).MatchesFile(t, filepath.Join("testdata", "label_draw.snapshot.json"))
}

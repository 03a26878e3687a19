package textedit

import (
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-futura/futura/pkg/batch"
	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/errors"
)

type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func newEngine(t *testing.T, text string, cfg Config) (*Engine, *recorder) {
	t.Helper()
	e := NewEngine(document.New(text), cfg)
	rec := &recorder{}
	e.AddListener(rec.listen)
	return e, rec
}

type snapshot struct {
	Text    string
	Caret   int
	Mark    int
	HasMark bool
	History []int
}

func snap(e *Engine) snapshot {
	m, ok := e.Mark()
	return snapshot{Text: e.Text(), Caret: e.CaretIndex(), Mark: m, HasMark: ok, History: e.History().Entries()}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		index     int
		insert    string
		want      string
		wantCaret int
	}{
		{"append after bang", "Hello!", 6, " world", "Hello! world", 12},
		{"before bang", "Hello!", 5, " world", "Hello world!", 11},
		{"start", "bc", 0, "a", "abc", 1},
		{"clamped high", "ab", 50, "c", "abc", 3},
		{"clamped low", "bc", -7, "a", "abc", 1},
		{"multibyte", "hé", 1, "ü", "hüé", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newEngine(t, tt.text, Config{})
			if err := e.Insert(tt.index, tt.insert, true); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			if got := e.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if got := e.CaretIndex(); got != tt.wantCaret {
				t.Errorf("CaretIndex() = %d, want %d", got, tt.wantCaret)
			}
			want := []Event{TextEdited{Text: tt.insert, Previous: tt.text}}
			if diff := cmp.Diff(want, rec.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertWithoutIndexChange(t *testing.T) {
	e, _ := newEngine(t, "abc", Config{})
	e.SetCaretIndex(1)
	e.Insert(3, "def", false)
	if e.CaretIndex() != 1 {
		t.Errorf("CaretIndex() = %d, want 1", e.CaretIndex())
	}
}

func TestInsertEmptyIsNoop(t *testing.T) {
	for i := -1; i <= 4; i++ {
		e, rec := newEngine(t, "abc", Config{})
		e.Select(1, 2)
		e.PushHistory()
		rec.events = nil
		before := snap(e)

		if err := e.Insert(i, "", true); err != nil {
			t.Fatalf("Insert(%d, \"\") error = %v", i, err)
		}
		if diff := cmp.Diff(before, snap(e)); diff != "" {
			t.Errorf("Insert(%d, \"\") changed state (-want +got):\n%s", i, diff)
		}
		if len(rec.events) != 0 {
			t.Errorf("Insert(%d, \"\") emitted %v", i, rec.events)
		}
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		start, end  int
		want        string
		wantRemoved string
		wantCaret   int
	}{
		{"half open", "Hello world!", 5, 10, "Hellod!", " worl", 5},
		{"whole word", "Hello world!", 5, 11, "Hello!", " world", 5},
		{"inverted", "abcdef", 4, 1, "aef", "bcd", 1},
		{"clamped", "abc", -3, 99, "", "abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newEngine(t, tt.text, Config{})
			e.Select(0, 2)
			rec.events = nil

			removed := e.Delete(tt.start, tt.end)
			if removed != tt.wantRemoved {
				t.Errorf("Delete() = %q, want %q", removed, tt.wantRemoved)
			}
			if got := e.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if e.CaretIndex() != tt.wantCaret {
				t.Errorf("CaretIndex() = %d, want %d", e.CaretIndex(), tt.wantCaret)
			}
			if _, ok := e.Mark(); ok {
				t.Error("mark survived Delete")
			}
			want := []Event{TextEdited{Text: "", Previous: tt.wantRemoved}}
			if diff := cmp.Diff(want, rec.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteEmptyRangeIsNoop(t *testing.T) {
	e, rec := newEngine(t, "abc", Config{})
	e.Select(0, 2)
	rec.events = nil
	before := snap(e)
	if got := e.Delete(1, 1); got != "" {
		t.Errorf("Delete(1, 1) = %q", got)
	}
	if diff := cmp.Diff(before, snap(e)); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %v", rec.events)
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	inserts := []struct {
		index int
		text  string
	}{
		{0, "x"}, {3, "yz"}, {6, "end"}, {2, "ünï"},
	}
	for _, in := range inserts {
		e, _ := newEngine(t, "Hello!", Config{})
		e.Insert(in.index, in.text, true)
		e.Delete(in.index, in.index+len([]rune(in.text)))
		if e.Text() != "Hello!" {
			t.Errorf("round trip at %d with %q = %q", in.index, in.text, e.Text())
		}
	}
}

func TestIndicesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e, _ := newEngine(t, "the quick brown fox", Config{})
	for step := 0; step < 500; step++ {
		n := e.Len()
		a, b := rng.Intn(n+10)-5, rng.Intn(n+10)-5
		switch rng.Intn(7) {
		case 0:
			e.Insert(a, "ab", rng.Intn(2) == 0)
		case 1:
			e.Delete(a, b)
		case 2:
			e.SetCaretIndex(a)
		case 3:
			e.SetMark(a)
		case 4:
			e.Select(a, b)
		case 5:
			e.MoveCaret(a, true)
		case 6:
			e.DeleteSelection()
		}
		l := e.Len()
		if c := e.CaretIndex(); c < 0 || c > l {
			t.Fatalf("step %d: caret %d outside [0, %d]", step, c, l)
		}
		if m, ok := e.Mark(); ok && (m < 0 || m > l) {
			t.Fatalf("step %d: mark %d outside [0, %d]", step, m, l)
		}
		if s := e.Selection(); s.Start > s.End {
			t.Fatalf("step %d: inverted selection %+v", step, s)
		}
	}
}

func TestExternalShrinkClampsCaret(t *testing.T) {
	doc := document.New("abcdef")
	e := NewEngine(doc, Config{})
	e.Select(2, 6)
	doc.Splice(0, "", 1, 6)
	if e.CaretIndex() != 1 {
		t.Errorf("CaretIndex() = %d, want 1", e.CaretIndex())
	}
	if m, _ := e.Mark(); m != 1 {
		t.Errorf("Mark() = %d, want 1", m)
	}
}

func TestRejectedValidationLeavesStateUntouched(t *testing.T) {
	e, rec := newEngine(t, "abc", Config{Validator: ValidateLowercase})
	e.SetCaretIndex(2)
	e.PushHistory()
	e.SetMark(1)
	rec.events = nil
	before := snap(e)

	err := e.Insert(1, "X", true)
	if !errors.IsValidation(err) {
		t.Fatalf("Insert() error = %v, want validation error", err)
	}
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) || ve.Candidate != "aXbc" || ve.Pattern != ValidateLowercase.String() {
		t.Errorf("ValidationError = %+v", ve)
	}
	if diff := cmp.Diff(before, snap(e)); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %v", rec.events)
	}

	if err := e.ReplaceSelection("Q"); !errors.IsValidation(err) {
		t.Errorf("ReplaceSelection() error = %v", err)
	}
	if diff := cmp.Diff(before, snap(e)); diff != "" {
		t.Errorf("state changed after ReplaceSelection (-want +got):\n%s", diff)
	}
}

func TestValidatorFunc(t *testing.T) {
	short := ValidatorFunc(func(s string) bool { return len(s) <= 3 })
	e, _ := newEngine(t, "ab", Config{Validator: short})
	if err := e.Insert(2, "c", true); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	err := e.Insert(3, "d", true)
	if err == nil || err.Error() != `text "abcd" rejected by validator` {
		t.Errorf("Insert() error = %v", err)
	}
}

func TestNoopEditSkipsValidation(t *testing.T) {
	e, rec := newEngine(t, "abc", Config{Validator: ValidateDigits})

	if err := e.Insert(1, "", true); err != nil {
		t.Errorf("Insert(1, \"\") error = %v, want nil", err)
	}
	e.Select(1, 2)
	rec.events = nil
	if err := e.ReplaceSelection("b"); err != nil {
		t.Errorf("ReplaceSelection(\"b\") error = %v, want nil", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none", rec.events)
	}
	if err := e.Insert(3, "d", true); !errors.IsValidation(err) {
		t.Errorf("Insert(3, \"d\") error = %v, want validation error", err)
	}
}

func TestSelectAll(t *testing.T) {
	e, rec := newEngine(t, "abc", Config{})
	e.SelectAll()
	m, ok := e.Mark()
	if !ok || m != 0 || e.CaretIndex() != 3 {
		t.Errorf("mark = %d (%v), caret = %d", m, ok, e.CaretIndex())
	}
	if got := e.Selection(); got != (Selection{Start: 0, End: 3}) {
		t.Errorf("Selection() = %+v", got)
	}
	if got := e.SelectedText(); got != "abc" {
		t.Errorf("SelectedText() = %q", got)
	}
	want := []Event{TextInteracted{Index: 3, Selection: Selection{Start: 0, End: 3}}}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestInteractionEventsOnlyOnChange(t *testing.T) {
	e, rec := newEngine(t, "abcdef", Config{})
	e.SetCaretIndex(0)
	e.SetCaretIndex(99)
	e.SetCaretIndex(6)
	e.SetMark(2)
	e.SetMark(2)
	e.ClearMark()
	e.ClearMark()
	want := []Event{
		TextInteracted{Index: 6, Selection: Selection{Start: 6, End: 6}},
		TextInteracted{Index: 6, Selection: Selection{Start: 2, End: 6}},
		TextInteracted{Index: 6, Selection: Selection{Start: 6, End: 6}},
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveCaret(t *testing.T) {
	e, _ := newEngine(t, "abcdef", Config{})
	e.SetCaretIndex(2)
	e.MoveCaret(4, true)
	if got := e.Selection(); got != (Selection{Start: 2, End: 4}) {
		t.Errorf("extend Selection() = %+v", got)
	}
	e.MoveCaret(1, true)
	if got := e.Selection(); got != (Selection{Start: 1, End: 2}) {
		t.Errorf("extend backwards Selection() = %+v", got)
	}
	e.MoveCaret(5, false)
	if e.HasSelection() {
		t.Error("plain move kept the selection")
	}
}

func TestReplaceSelection(t *testing.T) {
	e, rec := newEngine(t, "Hello world!", Config{})
	e.Select(6, 11)
	rec.events = nil
	if err := e.ReplaceSelection("there"); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "Hello there!" || e.CaretIndex() != 11 || e.HasSelection() {
		t.Errorf("Text() = %q, caret %d", e.Text(), e.CaretIndex())
	}
	want := []Event{TextEdited{Text: "there", Previous: "Hello world!"}}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSetText(t *testing.T) {
	e, rec := newEngine(t, "abc", Config{})
	e.SetCaretIndex(3)
	e.SetText("x", false)
	if e.Text() != "x" || e.CaretIndex() != 1 {
		t.Errorf("Text() = %q, caret %d", e.Text(), e.CaretIndex())
	}
	e.SetText("hello", true)
	if e.CaretIndex() != 5 {
		t.Errorf("CaretIndex() = %d, want 5", e.CaretIndex())
	}
	rec.events = nil
	e.SetText("hello", true)
	if len(rec.events) != 0 {
		t.Errorf("unchanged SetText emitted %v", rec.events)
	}
}

func TestClear(t *testing.T) {
	e, rec := newEngine(t, "abc", Config{})
	cleared := 0
	e.OnClear(func() { cleared++ })
	e.Select(1, 3)
	e.PushHistory()
	rec.events = nil

	e.Clear()
	if e.Text() != "" || e.CaretIndex() != 0 || e.History().Len() != 0 {
		t.Errorf("after Clear: %+v", snap(e))
	}
	if _, ok := e.Mark(); ok {
		t.Error("mark survived Clear")
	}
	if cleared != 1 {
		t.Errorf("OnClear hooks ran %d times", cleared)
	}
	want := []Event{TextEdited{Text: "", Previous: "abc"}}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryNavigation(t *testing.T) {
	e, _ := newEngine(t, "0123456789", Config{HistoryLimit: 3})
	for _, i := range []int{1, 4, 7} {
		e.SetCaretIndex(i)
		e.PushHistory()
	}
	if !e.HistoryBack() || e.CaretIndex() != 4 {
		t.Errorf("HistoryBack() caret = %d, want 4", e.CaretIndex())
	}
	e.HistoryBack()
	e.HistoryBack()
	if e.CaretIndex() != 1 {
		t.Errorf("caret at oldest = %d, want 1", e.CaretIndex())
	}
	e.HistoryForward()
	e.HistoryForward()
	e.HistoryForward()
	if e.CaretIndex() != 7 {
		t.Errorf("caret at newest = %d, want 7", e.CaretIndex())
	}

	empty, _ := newEngine(t, "x", Config{})
	if empty.HistoryBack() || empty.HistoryForward() {
		t.Error("navigation on empty history reported success")
	}
}

func TestEditsInvalidateUpdater(t *testing.T) {
	u := batch.New(2, nil)
	e, _ := newEngine(t, "ab", Config{Updater: u})
	e.Insert(2, "c", true)
	if !u.Pending() {
		t.Error("Insert did not invalidate the updater")
	}
}

func TestRemoveListener(t *testing.T) {
	e := NewEngine(document.New(""), Config{})
	calls := 0
	remove := e.AddListener(func(Event) { calls++ })
	e.Insert(0, "a", true)
	remove()
	e.Insert(1, "b", true)
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

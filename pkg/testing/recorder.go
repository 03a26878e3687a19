package testing

import (
	"sync"
	"testing"

	"github.com/go-futura/futura/pkg/errors"
	"github.com/go-futura/futura/pkg/textedit"
)

// Recorder captures engine events in emission order.
type Recorder struct {
	events []textedit.Event
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Listener returns a listener that appends to the recorder.
func (r *Recorder) Listener() textedit.Listener {
	return func(ev textedit.Event) {
		r.events = append(r.events, ev)
	}
}

// Events returns every recorded event.
func (r *Recorder) Events() []textedit.Event {
	return append([]textedit.Event(nil), r.events...)
}

// Edits returns the recorded TextEdited events.
func (r *Recorder) Edits() []textedit.TextEdited {
	return only[textedit.TextEdited](r.events)
}

// Interactions returns the recorded TextInteracted events.
func (r *Recorder) Interactions() []textedit.TextInteracted {
	return only[textedit.TextInteracted](r.events)
}

// Blinks returns the recorded Blink events.
func (r *Recorder) Blinks() []textedit.Blink {
	return only[textedit.Blink](r.events)
}

// Reset forgets every recorded event.
func (r *Recorder) Reset() {
	r.events = nil
}

func only[T textedit.Event](events []textedit.Event) []T {
	var out []T
	for _, ev := range events {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// ErrorRecorder is an errors.ErrorHandler that keeps what it receives.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.FuturaError
	panics []*errors.PanicError
}

// InstallErrorRecorder routes reported errors to a new recorder until the
// test ends.
func InstallErrorRecorder(t testing.TB) *ErrorRecorder {
	t.Helper()
	rec := &ErrorRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

func (r *ErrorRecorder) HandleError(err *errors.FuturaError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors.
func (r *ErrorRecorder) Errors() []*errors.FuturaError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.FuturaError(nil), r.errs...)
}

// Panics returns the reported panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFuturaErrorString(t *testing.T) {
	err := &FuturaError{
		Op:   "input.Router.Paste",
		Kind: KindClipboard,
		Err:  ErrClipboardUnavailable,
	}
	want := "input.Router.Paste [clipboard]: clipboard unavailable"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFuturaErrorWithWidget(t *testing.T) {
	err := &FuturaError{
		Op:     "widgets.Entry.Text",
		Kind:   KindValidation,
		Widget: "entry-1",
		Err:    &ValidationError{Candidate: "abc1", Pattern: "^[a-z]*$"},
	}
	got := err.Error()
	if !strings.Contains(got, "widget=entry-1") {
		t.Errorf("error string %q should contain widget id", got)
	}
	if !IsValidation(err) {
		t.Error("IsValidation should see through FuturaError")
	}
}

func TestFuturaErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("paste: %w", &FuturaError{Op: "op", Kind: KindClipboard, Err: ErrClipboardUnavailable})
	if !stderrors.Is(err, ErrClipboardUnavailable) {
		t.Error("errors.Is should find ErrClipboardUnavailable through the chain")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindValidation, "validation"},
		{KindClipboard, "clipboard"},
		{KindConfig, "config"},
		{KindInit, "init"},
		{KindInput, "input"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestValidationErrorString(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Candidate: "A1"}, `text "A1" rejected by validator`},
		{&ValidationError{Candidate: "A1", Pattern: "^[A-Z]*$"}, `text "A1" rejected by pattern ^[A-Z]*$`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Op = "app.Application.Tick"
	if got, want := err.Error(), "panic in app.Application.Tick: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *FuturaError
	handler := &testHandler{onError: func(err *FuturaError) { captured = err }}

	old := SetHandler(handler)
	defer SetHandler(old)

	Report(&FuturaError{Op: "config.Load", Kind: KindConfig, Err: stderrors.New("bad yaml")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "config.Load" {
		t.Errorf("Op = %q, want %q", captured.Op, "config.Load")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	old := SetHandler(handler)
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	old := SetHandler(&testHandler{})
	defer SetHandler(old)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	defer SetHandler(old)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestRecoverWidget(t *testing.T) {
	var captured *PanicError
	old := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(old)

	func() {
		defer RecoverWidget("app.Application.Tick", "entry-1")
		panic("tick")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	want := "panic in app.Application.Tick widget=entry-1: tick"
	if got := captured.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if strings.Contains(captured.StackTrace, "pkg/errors.RecoverWidget") {
		t.Errorf("stack should not include the errors package:\n%s", captured.StackTrace)
	}
	if !strings.Contains(captured.StackTrace, "TestRecoverWidget") {
		t.Errorf("stack should include the panicking test:\n%s", captured.StackTrace)
	}
}

func TestLogHandlerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := &LogHandler{Logger: zap.New(core)}

	h.HandleError(&FuturaError{Op: "paste", Kind: KindClipboard, Err: ErrClipboardUnavailable})
	h.HandleError(&FuturaError{Op: "load", Kind: KindConfig, Err: stderrors.New("missing")})
	h.HandlePanic(&PanicError{Op: "tick", Value: "boom"})

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.ErrorLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, wantLevels[i])
		}
	}
	if op := entries[1].ContextMap()["op"]; op != "load" {
		t.Errorf("op field = %v, want %q", op, "load")
	}
}

type testHandler struct {
	onError func(*FuturaError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *FuturaError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

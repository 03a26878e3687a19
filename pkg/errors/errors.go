// Package errors provides structured error handling for the futura toolkit.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindValidation indicates a text mutation rejected by a validator.
	KindValidation
	// KindClipboard indicates the system clipboard could not be used.
	KindClipboard
	// KindConfig indicates a configuration loading or parsing failure.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
	// KindInput indicates a malformed or unroutable input event.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindClipboard:
		return "clipboard"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrClipboardUnavailable is returned when the platform clipboard cannot be
// read or written. Copy, cut and paste treat it as a silent no-op.
var ErrClipboardUnavailable = stderrors.New("clipboard unavailable")

// FuturaError represents a structured error in the futura toolkit.
type FuturaError struct {
	// Op is the operation that failed (e.g., "input.Router.Paste").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the ID of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FuturaError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FuturaError) Unwrap() error {
	return e.Err
}

// ValidationError reports a mutation whose resulting text was rejected.
// The document, caret, mark and history are left untouched.
type ValidationError struct {
	// Candidate is the full text the mutation would have produced.
	Candidate string
	// Pattern describes the validator, when it can describe itself.
	Pattern string
}

func (e *ValidationError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("text %q rejected by pattern %s", e.Candidate, e.Pattern)
	}
	return fmt.Sprintf("text %q rejected by validator", e.Candidate)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Application.Tick").
	Op string
	// Widget is the ID of the widget being served, if any.
	Widget string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" && e.Widget != "" {
		return fmt.Sprintf("panic in %s widget=%s: %v", e.Op, e.Widget, e.Value)
	}
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FuturaError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

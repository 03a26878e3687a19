package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide error handler and returns the
// previous one. Nil restores a LogHandler on the process logger.
func SetHandler(h ErrorHandler) (previous ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	previous, handler = handler, h
	return previous
}

// Handler returns the process-wide error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report hands err to the handler, stamping it if Timestamp is zero.
func Report(err *FuturaError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress and stops it. It must be deferred
// directly:
//
//	defer errors.Recover("widgets.Entry.HandleKey")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, "", r))
	}
}

// RecoverWidget is Recover with the id of the widget whose handler was
// running.
func RecoverWidget(op, widget string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, widget, r))
	}
}

// RecoverWithCallback is Recover followed by callback(r).
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(newPanic(op, "", r))
	if callback != nil {
		callback(r)
	}
}

func newPanic(op, widget string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Widget:     widget,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame. Runtime frames and the recovery helpers are left out.
func CaptureStack() string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.Function) {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const pkgPath = "github.com/go-futura/futura/pkg/errors."

var recoverFrames = map[string]bool{
	"CaptureStack":        true,
	"newPanic":            true,
	"Recover":             true,
	"RecoverWidget":       true,
	"RecoverWithCallback": true,
}

func skipFrame(fn string) bool {
	if strings.HasPrefix(fn, "runtime.") {
		return true
	}
	name, ok := strings.CutPrefix(fn, pkgPath)
	return ok && recoverFrames[name]
}

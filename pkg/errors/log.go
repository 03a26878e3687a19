package errors

import (
	"go.uber.org/zap"

	"github.com/go-futura/futura/pkg/logging"
)

// LogHandler is an ErrorHandler that writes to a zap logger.
type LogHandler struct {
	// Logger receives the entries. Nil uses the process-wide logger.
	Logger *zap.Logger
	// Verbose adds stack traces to the logged fields.
	Verbose bool
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Named("futura")
}

// HandleError logs a FuturaError. Clipboard and validation failures are
// recovered locally by the toolkit and are logged at debug level.
func (h *LogHandler) HandleError(err *FuturaError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Widget != "" {
		fields = append(fields, zap.String("widget", err.Widget))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	switch err.Kind {
	case KindClipboard, KindValidation:
		h.logger().Debug("recovered error", fields...)
	default:
		h.logger().Error("error", fields...)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if err.Widget != "" {
		fields = append(fields, zap.String("widget", err.Widget))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("panic", fields...)
}

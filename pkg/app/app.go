// Package app hosts futura widgets in a frame-driven loop.
//
// Platform code posts raw input with Post from any goroutine. Tick, called
// once per frame from the loop goroutine, drains the queue in arrival order,
// steps animation tickers and then runs every widget's redraw checkpoint.
package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/go-futura/futura/pkg/animation"
	"github.com/go-futura/futura/pkg/errors"
	"github.com/go-futura/futura/pkg/focus"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/widgets"
)

// DefaultFrameInterval is the frame period used by Run when none is given.
const DefaultFrameInterval = time.Second / 60

// Application owns a set of widgets, the focus order and the input queue.
type Application struct {
	widgets []widgets.Widget
	byID    map[string]widgets.Widget
	focus   *focus.Manager
	log     *zap.Logger
	frames  int

	queueMu sync.Mutex
	queue   []input.Event
}

// New returns an empty application. A nil logger uses the process logger.
func New(log *zap.Logger) *Application {
	if log == nil {
		log = logging.Named("app")
	}
	return &Application{
		byID:  make(map[string]widgets.Widget),
		focus: focus.NewManager(),
		log:   log,
	}
}

// Add registers widgets in traversal order. The last focusable widget added
// receives focus.
func (a *Application) Add(ws ...widgets.Widget) {
	var last widgets.Focusable
	for _, w := range ws {
		if _, dup := a.byID[w.ID()]; dup {
			continue
		}
		a.widgets = append(a.widgets, w)
		a.byID[w.ID()] = w
		if f, ok := w.(widgets.Focusable); ok {
			a.focus.Register(f)
			last = f
		}
	}
	if last != nil {
		a.focus.RequestFocus(last)
	}
}

// Remove unregisters the widget with id. It reports whether it was found.
func (a *Application) Remove(id string) bool {
	w, ok := a.byID[id]
	if !ok {
		return false
	}
	delete(a.byID, id)
	for i, other := range a.widgets {
		if other == w {
			a.widgets = append(a.widgets[:i], a.widgets[i+1:]...)
			break
		}
	}
	if f, ok := w.(widgets.Focusable); ok {
		a.focus.Unregister(f)
	}
	return true
}

// Widget returns the widget with id.
func (a *Application) Widget(id string) (widgets.Widget, bool) {
	w, ok := a.byID[id]
	return w, ok
}

// Widgets returns the widgets in the order they were added.
func (a *Application) Widgets() []widgets.Widget {
	return append([]widgets.Widget(nil), a.widgets...)
}

// Focused returns the widget holding focus, or nil.
func (a *Application) Focused() widgets.Focusable {
	if n := a.focus.PrimaryFocus(); n != nil {
		return n.(widgets.Focusable)
	}
	return nil
}

// Focus gives focus to w. It reports whether w accepted it.
func (a *Application) Focus(w widgets.Focusable) bool {
	return a.focus.RequestFocus(w)
}

// Frames returns how many ticks have run.
func (a *Application) Frames() int {
	return a.frames
}

// Post queues an input event for the next Tick. It is safe to call from
// any goroutine.
func (a *Application) Post(ev input.Event) {
	a.queueMu.Lock()
	a.queue = append(a.queue, ev)
	a.queueMu.Unlock()
}

// Pending returns the number of queued events.
func (a *Application) Pending() int {
	a.queueMu.Lock()
	defer a.queueMu.Unlock()
	return len(a.queue)
}

func (a *Application) drainQueue() []input.Event {
	a.queueMu.Lock()
	events := a.queue
	a.queue = nil
	a.queueMu.Unlock()
	return events
}

// Tick runs one frame: queued events in arrival order, then tickers, then
// every widget checkpoint. A panic in a handler is reported and the frame
// continues with the next event or widget.
func (a *Application) Tick(now time.Time) {
	for _, ev := range a.drainQueue() {
		a.dispatch(ev)
	}
	a.stepTickers()
	for _, w := range a.widgets {
		a.tickWidget(w, now)
	}
	a.frames++
}

// Draw renders every drawable widget in the order they were added.
func (a *Application) Draw(c graphics.Canvas) {
	for _, w := range a.widgets {
		if d, ok := w.(widgets.Drawable); ok {
			d.Draw(c)
		}
	}
}

// Run ticks at interval until ctx is done. A non-positive interval uses
// DefaultFrameInterval.
func (a *Application) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	a.log.Debug("run", zap.Duration("interval", interval), zap.Int("widgets", len(a.widgets)))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.Tick(animation.Now())
		}
	}
}

// stepTickers advances the animation tickers. A panicking ticker skips the
// rest of this frame's tickers; they run again on the next frame.
func (a *Application) stepTickers() {
	defer errors.RecoverWithCallback("app.Application.stepTickers", func(r any) {
		a.log.Warn("ticker panicked", zap.Int("frame", a.frames), zap.Any("value", r))
	})
	animation.StepTickers()
}

func (a *Application) tickWidget(w widgets.Widget, now time.Time) {
	defer errors.RecoverWidget("app.Application.Tick", w.ID())
	w.Tick(now)
}

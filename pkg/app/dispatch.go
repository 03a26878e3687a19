package app

import (
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/go-futura/futura/pkg/errors"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/widgets"
)

var errUnknownEvent = stderrors.New("unknown input event")

var (
	tab      = input.KeyEvent{Key: input.KeyTab}
	shiftTab = input.KeyEvent{Key: input.KeyTab, Mods: input.ModShift}
)

func (a *Application) dispatch(ev input.Event) {
	defer errors.Recover("app.Application.dispatch")
	switch ev := ev.(type) {
	case input.KeyEvent:
		a.dispatchKey(ev)
	case input.KeyReleaseEvent:
		release := input.KeyEvent{Key: ev.Key, Mods: ev.Mods}
		for _, w := range a.widgets {
			if r, ok := w.(widgets.KeyReleaser); ok {
				r.HandleKeyRelease(release)
			}
		}
	case input.MouseEvent:
		a.dispatchMouse(ev)
	case input.TextEvent:
		if t, ok := a.Focused().(widgets.Typed); ok {
			t.HandleText(ev)
		}
	default:
		errors.Report(&errors.FuturaError{
			Op:   "app.Application.dispatch",
			Kind: errors.KindInput,
			Err:  errUnknownEvent,
		})
	}
}

// dispatchKey handles focus traversal, then offers the key to the focused
// widget and, if it declines, to every other keyed widget in order.
func (a *Application) dispatchKey(ev input.KeyEvent) {
	switch ev {
	case tab:
		a.focus.NextFocus()
		return
	case shiftTab:
		a.focus.PreviousFocus()
		return
	}
	focused := a.Focused()
	if k, ok := focused.(widgets.Keyed); ok && k.HandleKey(ev) {
		return
	}
	for _, w := range a.widgets {
		if f, ok := w.(widgets.Focusable); ok && f == focused {
			continue
		}
		if k, ok := w.(widgets.Keyed); ok && k.HandleKey(ev) {
			return
		}
	}
	a.log.Debug("unhandled key", zap.Stringer("key", ev))
}

// dispatchMouse focuses the topmost focusable widget under a press, then
// delivers the event to every pointer widget so each can track hover.
func (a *Application) dispatchMouse(ev input.MouseEvent) {
	if ev.Action == input.MousePress && ev.Button == input.ButtonPrimary {
		for i := len(a.widgets) - 1; i >= 0; i-- {
			w := a.widgets[i]
			if !w.Bounds().Contains(ev.Pos) {
				continue
			}
			if f, ok := w.(widgets.Focusable); ok {
				a.focus.RequestFocus(f)
				break
			}
		}
	}
	for _, w := range a.widgets {
		if p, ok := w.(widgets.Pointer); ok {
			p.HandleMouse(ev)
		}
	}
}

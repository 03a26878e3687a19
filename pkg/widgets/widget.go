package widgets

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/textedit"
	"github.com/go-futura/futura/pkg/theme"
)

// Widget is implemented by every component.
type Widget interface {
	// ID returns a process-unique identifier.
	ID() string
	// Bounds returns the hit box in window coordinates.
	Bounds() geometry.Rect
	// Tick is the per-frame redraw checkpoint.
	Tick(now time.Time)
}

// Drawable widgets render onto a canvas.
type Drawable interface {
	Draw(c graphics.Canvas)
}

// Focusable widgets take part in focus traversal.
type Focusable interface {
	Widget
	SetFocused(focused bool)
	Focused() bool
}

// Editable widgets expose their text editing engine.
type Editable interface {
	Engine() *textedit.Engine
}

// Pointer widgets receive mouse events in window coordinates.
type Pointer interface {
	HandleMouse(ev input.MouseEvent)
}

// Keyed widgets receive key presses. HandleKey reports whether the key was
// consumed.
type Keyed interface {
	HandleKey(ev input.KeyEvent) bool
}

// KeyReleaser widgets observe key releases.
type KeyReleaser interface {
	HandleKeyRelease(ev input.KeyEvent)
}

// Typed widgets receive committed text input.
type Typed interface {
	HandleText(ev input.TextEvent)
}

// State holds the interaction flags shared by all widgets.
type State struct {
	id       string
	hovered  bool
	pressed  bool
	focused  bool
	disabled bool
	frames   int
}

func newState() State {
	return State{id: uuid.NewString()}
}

// ID returns the widget identifier.
func (s *State) ID() string {
	return s.id
}

// Hovered reports whether the pointer is over the widget.
func (s *State) Hovered() bool {
	return s.hovered
}

// Pressed reports whether the primary button is held on the widget.
func (s *State) Pressed() bool {
	return s.pressed
}

// Focused reports whether the widget has focus.
func (s *State) Focused() bool {
	return s.focused
}

// Disabled reports whether the widget ignores input.
func (s *State) Disabled() bool {
	return s.disabled
}

// SetDisabled enables or disables input handling. Disabling drops the
// pressed state.
func (s *State) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.pressed = false
	}
}

// Frames returns how many redraw checkpoints the widget has seen.
func (s *State) Frames() int {
	return s.frames
}

// States returns the flags as a theme state set.
func (s *State) States() theme.States {
	var st theme.States
	if s.hovered {
		st |= theme.StateHovered
	}
	if s.pressed {
		st |= theme.StatePressed
	}
	if s.focused {
		st |= theme.StateFocused
	}
	if s.disabled {
		st |= theme.StateDisabled
	}
	return st
}

// track updates hover and press from a pointer event and reports whether
// the event position lies inside bounds.
func (s *State) track(ev input.MouseEvent, bounds geometry.Rect) bool {
	inside := bounds.Contains(ev.Pos)
	switch ev.Action {
	case input.MouseMove, input.MouseDrag:
		s.hovered = inside
	case input.MousePress:
		s.hovered = inside
		if inside && ev.Button == input.ButtonPrimary && !s.disabled {
			s.pressed = true
		}
	case input.MouseRelease:
		s.pressed = false
	}
	return inside
}

// Package input translates raw keyboard and pointer events into editing
// operations on a textedit.Engine.
package input

import (
	"strings"

	"github.com/go-futura/futura/pkg/geometry"
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// String joins the held modifiers with "+", e.g. "ctrl+shift".
func (m Modifiers) String() string {
	var parts []string
	for _, mod := range []struct {
		bit  Modifiers
		name string
	}{{ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModSuper, "super"}, {ModShift, "shift"}} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseModifier returns the modifier named s.
func ParseModifier(s string) (Modifiers, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shift":
		return ModShift, true
	case "ctrl", "control":
		return ModCtrl, true
	case "alt", "option":
		return ModAlt, true
	case "super", "cmd", "meta":
		return ModSuper, true
	}
	return 0, false
}

// Event is a KeyEvent, MouseEvent or TextEvent.
type Event interface {
	isInputEvent()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// MouseAction is the kind of pointer event.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
	MouseMove
	MouseScroll
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseDrag:
		return "drag"
	case MouseMove:
		return "move"
	case MouseScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// MouseEvent is a pointer event. Pos is in the coordinate space of the
// receiver: window coordinates for the application, local coordinates once
// a widget hands it to its router.
type MouseEvent struct {
	Action MouseAction
	Pos    geometry.Offset
	Button MouseButton
	Mods   Modifiers
	// Scroll is the vertical wheel delta for MouseScroll.
	Scroll float64
}

// KeyReleaseEvent is a key release. Only widgets that repeat while a key is
// held observe it.
type KeyReleaseEvent struct {
	Key  Key
	Mods Modifiers
}

// TextEvent carries committed text input.
type TextEvent struct {
	Text string
}

func (KeyEvent) isInputEvent()        {}
func (KeyReleaseEvent) isInputEvent() {}
func (MouseEvent) isInputEvent()      {}
func (TextEvent) isInputEvent()       {}

package widgets

import (
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/go-futura/futura/pkg/config"
	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/theme"
)

// CallbackMode controls how often a held button fires.
type CallbackMode int

const (
	// CallbackSingle fires once per click, Space press or bound key press.
	CallbackSingle CallbackMode = iota + 1
	// CallbackDouble also fires on every frame a bound key is held while
	// the button has focus.
	CallbackDouble
	// CallbackMultiple fires on every frame the button is pressed or a
	// bound key is held.
	CallbackMultiple
)

func (m CallbackMode) String() string {
	switch m {
	case CallbackSingle:
		return "single"
	case CallbackDouble:
		return "double"
	case CallbackMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// ButtonConfig configures a Button.
type ButtonConfig struct {
	// Bounds is the button box. Zero sizes it around the caption.
	Bounds   geometry.Rect
	Face     font.Face
	Theme    *theme.ThemeData
	Command  func()
	Bindings []input.KeyEvent
	// Callback defaults to CallbackSingle.
	Callback CallbackMode
	Logger   *zap.Logger
}

// Button runs a command when clicked, when Space is pressed while focused,
// or when a bound key is pressed.
type Button struct {
	State
	bounds   geometry.Rect
	caption  *Label
	theme    theme.ButtonThemeData
	command  func()
	bindings []input.KeyEvent
	mode     CallbackMode
	held     map[input.KeyEvent]bool
	push     []func()
	log      *zap.Logger
}

// NewButton returns a button labelled text.
func NewButton(text string, cfg ButtonConfig) *Button {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	b := &Button{
		State:    newState(),
		theme:    th.ButtonThemeOf(),
		command:  cfg.Command,
		bindings: slices.Clone(cfg.Bindings),
		mode:     cfg.Callback,
		held:     make(map[input.KeyEvent]bool),
		log:      cfg.Logger,
	}
	if b.mode == 0 {
		b.mode = CallbackSingle
	}
	if b.log == nil {
		b.log = logging.Named("button")
	}
	colors := b.theme.Label
	b.caption = NewLabel(text, LabelConfig{
		Face:       cfg.Face,
		Colors:     &colors,
		UpdateRate: config.Current().LabelUpdateRate,
		Logger:     b.log,
	})
	b.SetBounds(cfg.Bounds)
	return b
}

// SetBounds moves and resizes the button. An empty rect keeps the current
// position and sizes the box around the caption.
func (b *Button) SetBounds(r geometry.Rect) {
	if r.IsEmpty() {
		size := b.caption.Document().ContentSize()
		pad := b.theme.Padding
		r = geometry.RectFromLTWH(r.Left, r.Top, size.Width+2*pad, size.Height+2*pad)
	}
	b.bounds = r
	size := b.caption.Document().ContentSize()
	b.caption.SetPosition(geometry.Offset{
		X: r.Center().X - size.Width/2,
		Y: r.Center().Y - size.Height/2,
	})
}

// Bounds returns the button box.
func (b *Button) Bounds() geometry.Rect {
	return b.bounds
}

// Caption returns the label drawn inside the button.
func (b *Button) Caption() *Label {
	return b.caption
}

// Mode returns the callback mode.
func (b *Button) Mode() CallbackMode {
	return b.mode
}

// SetCommand replaces the command run by Invoke.
func (b *Button) SetCommand(fn func()) {
	b.command = fn
}

// Bind replaces the key bindings.
func (b *Button) Bind(keys ...input.KeyEvent) {
	b.bindings = slices.Clone(keys)
}

// OnPush registers fn to run on every push and returns a function that
// removes it.
func (b *Button) OnPush(fn func()) (remove func()) {
	b.push = append(b.push, fn)
	idx := len(b.push) - 1
	return func() {
		if idx < len(b.push) {
			b.push[idx] = nil
		}
	}
}

// SetFocused gives or takes focus.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
	b.caption.focused = focused
}

// SetDisabled enables or disables the button.
func (b *Button) SetDisabled(disabled bool) {
	b.State.SetDisabled(disabled)
	b.caption.SetDisabled(disabled)
}

// Invoke notifies push listeners and runs the command. Disabled buttons
// ignore it.
func (b *Button) Invoke() {
	if b.disabled {
		return
	}
	for _, fn := range slices.Clone(b.push) {
		if fn != nil {
			fn()
		}
	}
	if b.command != nil {
		b.command()
	}
	b.log.Debug("push", zap.String("widget", b.id), zap.Stringer("mode", b.mode))
}

// HandleMouse tracks hover and press and invokes on a primary press.
func (b *Button) HandleMouse(ev input.MouseEvent) {
	inside := b.track(ev, b.bounds)
	b.caption.hovered, b.caption.pressed = b.hovered, b.pressed
	if ev.Action == input.MousePress && inside && ev.Button == input.ButtonPrimary {
		b.Invoke()
	}
}

// HandleKey invokes for Space while focused and for bound keys.
func (b *Button) HandleKey(ev input.KeyEvent) bool {
	bound := slices.Contains(b.bindings, ev)
	if bound {
		b.held[ev] = true
	}
	if bound || (b.focused && ev.Key == input.KeySpace && ev.Mods == 0) {
		b.Invoke()
		return true
	}
	return false
}

// HandleKeyRelease stops repeating a held binding.
func (b *Button) HandleKeyRelease(ev input.KeyEvent) {
	delete(b.held, ev)
	for k := range b.held {
		if k.Key == ev.Key {
			delete(b.held, k)
		}
	}
}

// Tick repeats the command for held input according to the callback mode.
func (b *Button) Tick(now time.Time) {
	b.frames++
	held := len(b.held) > 0
	switch b.mode {
	case CallbackDouble:
		if b.focused && held {
			b.Invoke()
		}
	case CallbackMultiple:
		if b.pressed || held {
			b.Invoke()
		}
	}
	b.caption.Tick(now)
}

// Draw renders the box and the caption.
func (b *Button) Draw(c graphics.Canvas) {
	bg := b.theme.BackgroundColor
	switch {
	case b.disabled:
		bg = b.theme.DisabledBackgroundColor
	case b.pressed:
		bg = b.theme.PressedBackgroundColor
	}
	c.DrawRect(b.bounds, graphics.FillPaint(bg))
	b.caption.Draw(c)
}

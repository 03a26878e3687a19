package widgets

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/theme"
)

// ToggleVelocity is how far the knob travels per frame, in pixels.
const ToggleVelocity = 2

// Default toggle track size.
const (
	DefaultToggleWidth  = 44
	DefaultToggleHeight = 20
)

// ToggleConfig configures a Toggle.
type ToggleConfig struct {
	// Position is the top left corner of the track.
	Position geometry.Offset
	Value    bool
	// Text is an optional caption drawn right of the track.
	Text  string
	Face  font.Face
	Theme *theme.ThemeData
	// Callback CallbackMultiple keeps switching while Space is held.
	Callback CallbackMode
	Logger   *zap.Logger
}

// Toggle switches between true and false. The knob glides across the track
// and the value changes when it arrives.
type Toggle struct {
	State
	pos       geometry.Offset
	value     bool
	knob      float64
	switching bool
	spaceHeld bool
	mode      CallbackMode
	caption   *Label
	theme     theme.ToggleThemeData
	listeners []func(bool)
	log       *zap.Logger
}

// NewToggle returns a toggle at rest on cfg.Value.
func NewToggle(cfg ToggleConfig) *Toggle {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	t := &Toggle{
		State: newState(),
		pos:   cfg.Position,
		mode:  cfg.Callback,
		theme: th.ToggleThemeOf(),
		log:   cfg.Logger,
	}
	if t.mode == 0 {
		t.mode = CallbackSingle
	}
	if t.log == nil {
		t.log = logging.Named("toggle")
	}
	t.SetValue(cfg.Value)
	if cfg.Text != "" {
		t.caption = NewLabel(cfg.Text, LabelConfig{
			Position: geometry.Offset{X: t.pos.X + DefaultToggleWidth + 10, Y: t.pos.Y + 4},
			Face:     cfg.Face,
			Theme:    th,
			Logger:   t.log,
		})
	}
	return t
}

// Value returns the settled value.
func (t *Toggle) Value() bool {
	return t.value
}

// SetValue sets the value without animation or notification.
func (t *Toggle) SetValue(v bool) {
	t.value = v
	t.switching = false
	t.knob = t.rest(v)
}

// Switching reports whether the knob is travelling.
func (t *Toggle) Switching() bool {
	return t.switching
}

// Knob returns the knob offset from the left of the track.
func (t *Toggle) Knob() float64 {
	return t.knob
}

// OnToggle registers fn to receive the new value when a switch completes.
func (t *Toggle) OnToggle(fn func(value bool)) {
	t.listeners = append(t.listeners, fn)
}

// Switch starts moving the knob to the other side. Disabled toggles and
// toggles already switching ignore it.
func (t *Toggle) Switch() {
	if t.disabled || t.switching {
		return
	}
	t.switching = true
}

// Bounds returns the track box.
func (t *Toggle) Bounds() geometry.Rect {
	return geometry.RectFromLTWH(t.pos.X, t.pos.Y, DefaultToggleWidth, DefaultToggleHeight)
}

// SetFocused gives or takes focus.
func (t *Toggle) SetFocused(focused bool) {
	t.focused = focused
}

// HandleMouse switches on a primary click without Ctrl.
func (t *Toggle) HandleMouse(ev input.MouseEvent) {
	inside := t.track(ev, t.Bounds())
	if ev.Action == input.MousePress && inside && ev.Button == input.ButtonPrimary && !ev.Mods.Ctrl() {
		t.Switch()
	}
}

// HandleKey switches on Space or Enter while focused.
func (t *Toggle) HandleKey(ev input.KeyEvent) bool {
	if !t.focused || ev.Mods != 0 {
		return false
	}
	switch ev.Key {
	case input.KeySpace:
		t.spaceHeld = true
	case input.KeyEnter:
	default:
		return false
	}
	t.Switch()
	return true
}

// HandleKeyRelease ends a held Space.
func (t *Toggle) HandleKeyRelease(ev input.KeyEvent) {
	if ev.Key == input.KeySpace {
		t.spaceHeld = false
	}
}

// Tick moves the knob one step and completes the switch on arrival.
func (t *Toggle) Tick(now time.Time) {
	t.frames++
	if t.mode == CallbackMultiple && t.spaceHeld && t.focused {
		t.Switch()
	}
	if t.switching && !t.disabled {
		target := t.rest(!t.value)
		if target > t.knob {
			t.knob = min(t.knob+ToggleVelocity, target)
		} else {
			t.knob = max(t.knob-ToggleVelocity, target)
		}
		if t.knob == target {
			t.switching = false
			t.value = !t.value
			t.log.Debug("toggle", zap.String("widget", t.id), zap.Bool("value", t.value))
			for _, fn := range t.listeners {
				fn(t.value)
			}
		}
	}
	if t.caption != nil {
		t.caption.Tick(now)
	}
}

// Draw renders the track, the knob and the caption.
func (t *Toggle) Draw(c graphics.Canvas) {
	b := t.Bounds()
	track := t.theme.InactiveTrackColor
	// Past the middle the track takes the colour of the value it is heading to.
	if t.knob > t.travel()/2 {
		track = t.theme.ActiveTrackColor
	}
	if t.disabled {
		track = t.theme.DisabledTrackColor
	}
	c.DrawRect(b, graphics.FillPaint(track))
	r := b.Height()/2 - 2
	center := geometry.Offset{X: b.Left + 2 + r + t.knob, Y: b.Center().Y}
	if t.hovered {
		r++
	}
	c.DrawCircle(center, r, graphics.FillPaint(t.theme.ThumbColor))
	if t.caption != nil {
		t.caption.Draw(c)
	}
}

func (t *Toggle) travel() float64 {
	return DefaultToggleWidth - DefaultToggleHeight
}

func (t *Toggle) rest(v bool) float64 {
	if v {
		return t.travel()
	}
	return 0
}

package widgets

import (
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/theme"
)

// SliderVelocity is how far the knob glides per frame, in pixels.
const SliderVelocity = 10

// Slider defaults.
const (
	DefaultSliderSize    = 100
	DefaultSliderLength  = 200
	DefaultSliderPadding = 50
	sliderHeight         = 16
)

// SliderConfig configures a Slider. Zero values select defaults.
type SliderConfig struct {
	// Position is the left end of the bar.
	Position geometry.Offset
	// Value is where the knob starts.
	Value float64
	// Size is the largest value.
	Size float64
	// Length is the bar length in pixels.
	Length float64
	// Padding separates the bar from the value caption.
	Padding float64
	// Round is the number of decimal digits values are rounded to. A
	// negative value disables rounding.
	Round  int
	Face   font.Face
	Theme  *theme.ThemeData
	Logger *zap.Logger
}

// Slider picks a value in [0, Size] by dragging a knob along a bar. Presses
// and drags set a destination the knob glides to over several frames.
type Slider struct {
	State
	pos         geometry.Offset
	value       float64
	size        float64
	length      float64
	round       int
	knob        float64
	destination float64
	gliding     bool
	caption     *Label
	theme       theme.SliderThemeData

	onStart  []func(float64)
	onMotion []func(float64)
	onFinish []func(float64)
	log      *zap.Logger
}

// NewSlider returns a slider resting on cfg.Value.
func NewSlider(cfg SliderConfig) *Slider {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	s := &Slider{
		State:  newState(),
		pos:    cfg.Position,
		size:   cfg.Size,
		length: cfg.Length,
		round:  cfg.Round,
		theme:  th.SliderThemeOf(),
		log:    cfg.Logger,
	}
	if s.size <= 0 {
		s.size = DefaultSliderSize
	}
	if s.length <= 0 {
		s.length = DefaultSliderLength
	}
	padding := cfg.Padding
	if padding == 0 {
		padding = DefaultSliderPadding
	}
	if s.log == nil {
		s.log = logging.Named("slider")
	}
	colors := s.theme.Label
	s.caption = NewLabel("", LabelConfig{
		Position: geometry.Offset{X: s.pos.X + s.length + padding, Y: s.pos.Y},
		Face:     cfg.Face,
		Colors:   &colors,
		Logger:   s.log,
	})
	s.SetValue(cfg.Value)
	s.caption.ForceText(s.format())
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// Size returns the largest value.
func (s *Slider) Size() float64 {
	return s.size
}

// Knob returns the knob offset from the left end of the bar.
func (s *Slider) Knob() float64 {
	return s.knob
}

// Gliding reports whether the knob is moving to a destination.
func (s *Slider) Gliding() bool {
	return s.gliding
}

// Caption returns the value label.
func (s *Slider) Caption() *Label {
	return s.caption
}

// SetValue clamps v into [0, Size], rounds it and moves the knob there at
// once, cancelling any glide.
func (s *Slider) SetValue(v float64) {
	s.value = s.roundValue(max(0, min(v, s.size)))
	s.knob = s.length * s.value / s.size
	s.gliding = false
	s.caption.SetText(s.format())
}

// OnSlideStart registers fn to receive the value when a glide starts.
func (s *Slider) OnSlideStart(fn func(value float64)) {
	s.onStart = append(s.onStart, fn)
}

// OnSlideMotion registers fn to receive the value on every glide step.
func (s *Slider) OnSlideMotion(fn func(value float64)) {
	s.onMotion = append(s.onMotion, fn)
}

// OnSlideFinish registers fn to receive the value when a glide ends.
func (s *Slider) OnSlideFinish(fn func(value float64)) {
	s.onFinish = append(s.onFinish, fn)
}

// SlideTo sets the glide destination to window x, clamped to the bar.
func (s *Slider) SlideTo(x float64) {
	if s.disabled {
		return
	}
	s.destination = max(0, min(x-s.pos.X, s.length))
	s.gliding = s.destination != s.knob
	emit(s.onStart, s.value)
	if !s.gliding {
		emit(s.onFinish, s.value)
	}
}

// Bounds returns the bar box.
func (s *Slider) Bounds() geometry.Rect {
	return geometry.RectFromLTWH(s.pos.X, s.pos.Y, s.length, sliderHeight)
}

// SetFocused gives or takes focus.
func (s *Slider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleMouse glides to presses and drags and steps on scroll.
func (s *Slider) HandleMouse(ev input.MouseEvent) {
	inside := s.track(ev, s.Bounds())
	if s.disabled {
		return
	}
	switch ev.Action {
	case input.MousePress:
		if inside && ev.Button == input.ButtonPrimary {
			s.SlideTo(ev.Pos.X)
		}
	case input.MouseDrag:
		if s.pressed {
			s.SlideTo(ev.Pos.X)
		}
	case input.MouseScroll:
		if inside {
			s.SetValue(s.value + ev.Scroll)
		}
	}
}

// HandleKey steps the value by one with the arrow keys while focused.
func (s *Slider) HandleKey(ev input.KeyEvent) bool {
	if !s.focused || s.disabled || ev.Mods != 0 {
		return false
	}
	switch ev.Key {
	case input.KeyRight, input.KeyUp:
		s.SetValue(s.value + 1)
	case input.KeyLeft, input.KeyDown:
		s.SetValue(s.value - 1)
	default:
		return false
	}
	return true
}

// Tick advances a glide by one step.
func (s *Slider) Tick(now time.Time) {
	s.frames++
	if s.gliding {
		if s.destination > s.knob {
			s.knob = min(s.knob+SliderVelocity, s.destination)
		} else {
			s.knob = max(s.knob-SliderVelocity, s.destination)
		}
		s.value = s.roundValue(s.knob * s.size / s.length)
		s.caption.SetText(s.format())
		emit(s.onMotion, s.value)
		if s.knob == s.destination {
			s.gliding = false
			s.log.Debug("slide", zap.String("widget", s.id), zap.Float64("value", s.value))
			emit(s.onFinish, s.value)
		}
	}
	s.caption.Tick(now)
}

// Draw renders the bar, the knob and the value caption.
func (s *Slider) Draw(c graphics.Canvas) {
	b := s.Bounds()
	mid := b.Center().Y
	c.DrawLine(geometry.Offset{X: b.Left, Y: mid}, geometry.Offset{X: b.Right, Y: mid},
		graphics.StrokePaint(s.theme.TrackColor, 4))
	r := sliderHeight / 2 * 0.9
	if s.hovered {
		r = sliderHeight / 2 * s.theme.KnobHoverScale
	}
	c.DrawCircle(geometry.Offset{X: b.Left + s.knob, Y: mid}, r, graphics.FillPaint(s.theme.KnobColor))
	s.caption.Draw(c)
}

func (s *Slider) roundValue(v float64) float64 {
	if s.round < 0 {
		return v
	}
	p := math.Pow(10, float64(s.round))
	return math.Round(v*p) / p
}

func (s *Slider) format() string {
	return strconv.FormatFloat(s.value, 'f', s.round, 64)
}

func emit(fns []func(float64), v float64) {
	for _, fn := range fns {
		fn(v)
	}
}

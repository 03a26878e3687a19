package widgets

import (
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/go-futura/futura/pkg/batch"
	"github.com/go-futura/futura/pkg/config"
	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/theme"
)

// LabelConfig configures a Label. Zero values select defaults.
type LabelConfig struct {
	// Position is the top left corner of the text.
	Position geometry.Offset
	Face     font.Face
	// Colors overrides the theme label colours.
	Colors *theme.Colors
	Theme  *theme.ThemeData
	// UpdateRate is the relayout rate in frames. Zero uses the process
	// settings.
	UpdateRate int
	// WrapWidth wraps the text into several lines. Multiline labels keep
	// their normal colour in every state.
	WrapWidth float64
	// Command runs when the label is clicked or a bound key is pressed.
	Command  func()
	Bindings []input.KeyEvent
	Logger   *zap.Logger
}

// Label displays text whose relayouts are batched by an update rate.
//
// SetText records the requested text; the displayed document follows at
// the next checkpoint whose frame count is a multiple of the rate. ForceText
// bypasses the rate.
type Label struct {
	State
	doc       *document.Document
	text      string
	pos       geometry.Offset
	colors    theme.Colors
	multiline bool
	updater   *batch.Updater
	drawn     theme.States
	keyPress  bool
	command   func()
	bindings  []input.KeyEvent
	log       *zap.Logger
}

// NewLabel returns a label showing text.
func NewLabel(text string, cfg LabelConfig) *Label {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	colors := th.LabelColors
	if cfg.Colors != nil {
		colors = *cfg.Colors
	}
	rate := cfg.UpdateRate
	if rate == 0 {
		rate = config.Current().LabelUpdateRate
	}
	l := &Label{
		State:     newState(),
		text:      text,
		pos:       cfg.Position,
		colors:    colors,
		multiline: cfg.WrapWidth > 0,
		command:   cfg.Command,
		bindings:  slices.Clone(cfg.Bindings),
		log:       cfg.Logger,
	}
	if l.log == nil {
		l.log = logging.Named("label")
	}
	l.doc = document.New(text,
		document.WithFace(cfg.Face),
		document.WithWrapWidth(cfg.WrapWidth),
		document.WithStyle(document.Style{Color: colors.Normal, FontSize: 13}),
	)
	l.updater = batch.New(rate, l.relayout)
	l.updater.ForceUpdate()
	return l
}

// Text returns the most recently requested text, which may not be displayed
// yet.
func (l *Label) Text() string {
	return l.text
}

// DisplayedText returns the text currently laid out.
func (l *Label) DisplayedText() string {
	return l.doc.Text()
}

// Document returns the displayed document.
func (l *Label) Document() *document.Document {
	return l.doc
}

// Updater returns the relayout gate.
func (l *Label) Updater() *batch.Updater {
	return l.updater
}

// SetText requests new text. The document is relaid out at the next
// eligible checkpoint.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.updater.Invalidate()
}

// ForceText replaces the displayed text immediately, ignoring the update
// rate. Excessive use defeats batching.
func (l *Label) ForceText(text string) {
	if text == l.text && text == l.doc.Text() {
		return
	}
	l.text = text
	l.updater.ForceUpdate()
}

// Position returns the top left corner.
func (l *Label) Position() geometry.Offset {
	return l.pos
}

// SetPosition moves the label.
func (l *Label) SetPosition(p geometry.Offset) {
	l.pos = p
}

// Bounds returns the laid out text box.
func (l *Label) Bounds() geometry.Rect {
	size := l.doc.ContentSize()
	return geometry.RectFromLTWH(l.pos.X, l.pos.Y, size.Width, size.Height)
}

// SetCommand replaces the command run by Invoke.
func (l *Label) SetCommand(fn func()) {
	l.command = fn
}

// Bind replaces the key bindings and returns them.
func (l *Label) Bind(keys ...input.KeyEvent) []input.KeyEvent {
	l.bindings = slices.Clone(keys)
	return l.Bindings()
}

// Unbind removes keys from the bindings and returns the rest.
func (l *Label) Unbind(keys ...input.KeyEvent) []input.KeyEvent {
	l.bindings = slices.DeleteFunc(l.bindings, func(k input.KeyEvent) bool {
		return slices.Contains(keys, k)
	})
	return l.Bindings()
}

// Bindings returns a copy of the key bindings.
func (l *Label) Bindings() []input.KeyEvent {
	return slices.Clone(l.bindings)
}

// Invoke shows the pressed state and runs the command. It does nothing when
// the label is disabled or has no command.
func (l *Label) Invoke() {
	if l.disabled || l.command == nil {
		return
	}
	l.pressed = true
	l.log.Debug("label invoked", zap.String("widget", l.id))
	l.command()
}

// HandleKey invokes the label for a bound key.
func (l *Label) HandleKey(ev input.KeyEvent) bool {
	if !slices.Contains(l.bindings, ev) {
		return false
	}
	l.Invoke()
	l.keyPress = l.pressed
	return true
}

// HandleMouse tracks hover and invokes the label on a primary click.
func (l *Label) HandleMouse(ev input.MouseEvent) {
	inside := l.track(ev, l.Bounds())
	if ev.Action == input.MousePress && inside && ev.Button == input.ButtonPrimary {
		l.Invoke()
	}
}

// Tick is the redraw checkpoint. A state change recolours the text through
// the same update rate as text changes. A press from a key binding lasts
// one frame.
func (l *Label) Tick(time.Time) {
	l.frames++
	if st := l.States(); st != l.drawn {
		l.updater.Invalidate()
	}
	l.updater.Tick()
	if l.keyPress {
		l.keyPress = false
		l.pressed = false
	}
}

// Draw renders the text.
func (l *Label) Draw(c graphics.Canvas) {
	drawDocument(c, l.doc, l.pos, 0)
}

func (l *Label) relayout() {
	l.drawn = l.States()
	color := l.colors.Normal
	if !l.multiline {
		color = l.colors.Resolve(l.drawn)
	}
	l.doc.BeginUpdate()
	if l.doc.Text() != l.text {
		l.doc.SetText(l.text)
	}
	l.doc.UpdateStyle(0, l.doc.Len(), func(s document.Style) document.Style {
		s.Color = color
		return s
	})
	l.doc.EndUpdate()
}

package widgets

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/go-futura/futura/pkg/animation"
	"github.com/go-futura/futura/pkg/batch"
	"github.com/go-futura/futura/pkg/clipboard"
	"github.com/go-futura/futura/pkg/config"
	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/textedit"
	"github.com/go-futura/futura/pkg/theme"
)

// DefaultEntryWidth is the width of an Entry when none is configured.
const DefaultEntryWidth = 200

const caretWidth = 1

// PasswordMask is the rune shown in place of each character of a password
// entry.
const PasswordMask = '•'

// Format is a set of character styles applied to a selection.
type Format uint8

const (
	FormatBold Format = 1 << iota
	FormatItalic
	FormatUnderline
)

// EntryConfig configures an Entry. Zero values select defaults.
type EntryConfig struct {
	// Position is the top left corner of the field.
	Position geometry.Offset
	Width    float64
	Face     font.Face
	// Settings overrides the process settings.
	Settings  *config.Settings
	Theme     *theme.ThemeData
	Validator textedit.Validator
	Clipboard clipboard.Clipboard
	// Placeholder is shown in an empty entry until the first interaction.
	Placeholder string
	// Password masks the displayed text.
	Password bool
	Logger   *zap.Logger
}

// Entry is a single field text input.
//
// Edits reach the document immediately but its glyph layout is deferred to
// the redraw checkpoint, gated by the entry update rate. Text wider than the
// field scrolls horizontally; each checkpoint scrolls the caret into view.
type Entry struct {
	State
	doc      *document.Document
	engine   *textedit.Engine
	router   *input.Router
	updater  *batch.Updater
	blink    *animation.Ticker
	pos      geometry.Offset
	width    float64
	view     float64
	theme    theme.EntryThemeData
	settings config.Settings
	log      *zap.Logger
}

// NewEntry returns an unfocused entry holding text with the caret at the end.
func NewEntry(text string, cfg EntryConfig) *Entry {
	settings := config.Current()
	if cfg.Settings != nil {
		settings = *cfg.Settings
	}
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	e := &Entry{
		State:    newState(),
		pos:      cfg.Position,
		width:    cfg.Width,
		theme:    th.EntryThemeOf(),
		settings: settings,
		log:      cfg.Logger,
	}
	if e.width <= 0 {
		e.width = DefaultEntryWidth
	}
	if e.log == nil {
		e.log = logging.Named("entry")
	}

	e.doc = document.New(text,
		document.WithFace(cfg.Face),
		document.WithStyle(document.Style{Color: e.theme.TextColor, FontSize: 13}),
	)
	if cfg.Password {
		e.doc.SetMask(PasswordMask)
	}
	// Layout stays deferred until the checkpoint reopens the bracket.
	e.doc.BeginUpdate()
	e.updater = batch.New(settings.EntryUpdateRate, e.relayout)

	e.engine = textedit.NewEngine(e.doc, textedit.Config{
		Validator:     cfg.Validator,
		HistoryLimit:  settings.HistoryLimit,
		BlinkPeriod:   settings.BlinkPeriod.Std(),
		BlinkDisabled: !settings.BlinkEnabled,
		Updater:       e.updater,
		Logger:        e.log,
	})
	e.engine.SetCaretIndex(e.engine.Len())

	word, ok := input.ParseModifier(settings.WordModifier)
	if !ok {
		word = input.ModCtrl
	}
	e.router = input.NewRouter(e.engine, input.RouterConfig{
		Keymap:          input.DefaultKeymap(word),
		Clipboard:       cfg.Clipboard,
		ClickWindow:     settings.ClickWindow.Std(),
		ClickSlop:       settings.ClickSlop,
		MaxLength:       settings.MaxLength,
		TitleCase:       settings.TitleCase,
		HistoryDisabled: !settings.HistoryEnabled,
		Widget:          e.id,
		Logger:          e.log,
	})
	e.router.SetPlaceholder(cfg.Placeholder)

	e.blink = animation.NewTicker(func(time.Duration) {
		e.engine.Caret().Tick(animation.Now())
	})
	e.updater.ForceUpdate()
	return e
}

// Engine returns the editing engine.
func (e *Entry) Engine() *textedit.Engine {
	return e.engine
}

// Router returns the input router.
func (e *Entry) Router() *input.Router {
	return e.router
}

// Document returns the edited document.
func (e *Entry) Document() *document.Document {
	return e.doc
}

// Updater returns the relayout gate.
func (e *Entry) Updater() *batch.Updater {
	return e.updater
}

// Text returns the entered text. It is empty while the placeholder shows.
func (e *Entry) Text() string {
	if e.router.ShowingPlaceholder() {
		return ""
	}
	return e.engine.Text()
}

// SetText replaces the text and moves the caret to the end. It bypasses
// validation.
func (e *Entry) SetText(text string) {
	e.engine.SetText(text, true)
}

// AddListener subscribes to the engine events.
func (e *Entry) AddListener(fn textedit.Listener) (remove func()) {
	return e.engine.AddListener(fn)
}

// SetPassword toggles display masking.
func (e *Entry) SetPassword(on bool) {
	if on {
		e.doc.SetMask(PasswordMask)
	} else {
		e.doc.SetMask(0)
	}
	e.updater.Invalidate()
}

// Password reports whether the display is masked.
func (e *Entry) Password() bool {
	return e.doc.Mask() != 0
}

// SetMaxLength changes the length cap. Zero means unlimited.
func (e *Entry) SetMaxLength(n int) {
	e.router.SetMaxLength(n)
}

// SetFocused gives or takes focus. Losing focus moves the caret to the
// start, drops the mark and stops blinking.
func (e *Entry) SetFocused(focused bool) {
	if e.focused == focused {
		return
	}
	e.focused = focused
	now := animation.Now()
	e.engine.Caret().SetFocused(focused, now)
	if focused {
		e.blink.Start()
	} else {
		e.blink.Stop()
		e.router.Release()
		e.engine.ClearMark()
		e.engine.SetCaretIndex(0)
	}
	e.updater.Invalidate()
	e.log.Debug("focus", zap.String("widget", e.id), zap.Bool("focused", focused))
}

// Position returns the top left corner of the field.
func (e *Entry) Position() geometry.Offset {
	return e.pos
}

// SetPosition moves the field.
func (e *Entry) SetPosition(p geometry.Offset) {
	e.pos = p
}

// Bounds returns the field box including padding.
func (e *Entry) Bounds() geometry.Rect {
	pad := e.theme.Padding
	h := float64(e.doc.LineCount())*e.doc.LineHeight() + 2*pad
	return geometry.RectFromLTWH(e.pos.X, e.pos.Y, e.width, h)
}

// View returns the horizontal scroll offset in pixels.
func (e *Entry) View() float64 {
	return e.view
}

// SetView scrolls the text so that document x lies at the left edge of the
// field interior. The offset is clamped to the scrollable range.
func (e *Entry) SetView(x float64) {
	e.view = min(max(x, 0), e.maxView())
}

// innerWidth is the width available to text inside the padding.
func (e *Entry) innerWidth() float64 {
	return max(e.width-2*e.theme.Padding, 0)
}

// maxView leaves room for the caret after the last glyph.
func (e *Entry) maxView() float64 {
	return max(e.doc.ContentSize().Width+caretWidth-e.innerWidth(), 0)
}

// scrollToCaret moves the view the least distance that shows the caret.
func (e *Entry) scrollToCaret() {
	x := e.doc.PointOf(e.engine.CaretIndex()).X
	view := e.view
	if x < view {
		view = x
	} else if inner := e.innerWidth(); x+caretWidth > view+inner {
		view = x + caretWidth - inner
	}
	e.SetView(view)
}

// textOrigin is the window position of document coordinate zero.
func (e *Entry) textOrigin() geometry.Offset {
	return e.pos.Add(geometry.Offset{X: e.theme.Padding - e.view, Y: e.theme.Padding})
}

// HandleMouse routes pointer events to the caret while the entry is
// enabled. Presses outside the field are ignored.
func (e *Entry) HandleMouse(ev input.MouseEvent) {
	inside := e.track(ev, e.Bounds())
	if e.disabled {
		return
	}
	switch ev.Action {
	case input.MousePress:
		if !inside {
			return
		}
	case input.MouseDrag:
		if !e.router.Dragging() {
			return
		}
	case input.MouseRelease:
	default:
		return
	}
	ev.Pos = ev.Pos.Sub(e.textOrigin())
	e.router.Mouse(ev)
}

// HandleKey applies editing keys while focused. Ctrl+B, Ctrl+I and Ctrl+U
// toggle bold, italic and underline on the selection.
func (e *Entry) HandleKey(ev input.KeyEvent) bool {
	if !e.focused || e.disabled {
		return false
	}
	if ev.Mods == input.ModCtrl {
		switch ev.Key {
		case input.KeyRune('b'):
			e.ToggleFormat(FormatBold)
			return true
		case input.KeyRune('i'):
			e.ToggleFormat(FormatItalic)
			return true
		case input.KeyRune('u'):
			e.ToggleFormat(FormatUnderline)
			return true
		}
	}
	return e.router.Key(ev)
}

// HandleText inserts typed text while focused. Rejected text is reported
// by the router and dropped.
func (e *Entry) HandleText(ev input.TextEvent) {
	if !e.focused || e.disabled {
		return
	}
	_ = e.Type(ev.Text)
}

// Type inserts text at the caret as if typed, returning a validation error
// if the result was rejected.
func (e *Entry) Type(text string) error {
	return e.router.Text(text)
}

// SetFormat turns the formats in f on or off over the selection. It reports
// whether anything was selected.
func (e *Entry) SetFormat(f Format, on bool) bool {
	sel := e.engine.Selection()
	if sel.IsEmpty() {
		return false
	}
	e.doc.UpdateStyle(sel.Start, sel.End, func(s document.Style) document.Style {
		if f&FormatBold != 0 {
			s.Bold = on
		}
		if f&FormatItalic != 0 {
			s.Italic = on
		}
		if f&FormatUnderline != 0 {
			s.Underline = on
		}
		return s
	})
	e.updater.Invalidate()
	return true
}

// ToggleFormat sets f over the selection unless the whole selection already
// has it, in which case f is cleared.
func (e *Entry) ToggleFormat(f Format) bool {
	sel := e.engine.Selection()
	if sel.IsEmpty() {
		return false
	}
	all := true
	for i := sel.Start; i < sel.End && all; i++ {
		all = hasFormat(e.doc.StyleAt(i), f)
	}
	return e.SetFormat(f, !all)
}

func hasFormat(s document.Style, f Format) bool {
	if f&FormatBold != 0 && !s.Bold {
		return false
	}
	if f&FormatItalic != 0 && !s.Italic {
		return false
	}
	if f&FormatUnderline != 0 && !s.Underline {
		return false
	}
	return true
}

// Tick is the redraw checkpoint.
func (e *Entry) Tick(time.Time) {
	e.frames++
	e.updater.Tick()
}

// Draw renders the field, the selection, the text and the caret.
func (e *Entry) Draw(c graphics.Canvas) {
	b := e.Bounds()
	c.DrawRect(b, graphics.FillPaint(e.theme.BackgroundColor))
	border := e.theme.BorderColor
	if e.focused {
		border = e.theme.FocusColor
	}
	c.DrawRect(b, graphics.StrokePaint(border, e.theme.BorderWidth))

	origin := e.textOrigin()
	minX, maxX := e.view, e.view+e.innerWidth()
	if sel := e.engine.Selection(); !sel.IsEmpty() {
		for _, r := range e.doc.BoundsOf(sel.Start, sel.End) {
			r.Left, r.Right = max(r.Left, minX), min(r.Right, maxX)
			if r.IsEmpty() {
				continue
			}
			c.DrawRect(r.Translate(origin.X, origin.Y), graphics.FillPaint(e.theme.SelectionColor))
		}
	}

	var override graphics.Color
	if e.router.ShowingPlaceholder() {
		override = e.theme.PlaceholderColor
	} else if e.disabled {
		override = theme.DarkGray
	}
	drawDocumentWithin(c, e.doc, origin, override, minX, maxX)

	caret := e.engine.Caret()
	if e.focused && caret.Visible() {
		r := caret.Rect(e.doc, e.engine.CaretIndex())
		if r.Left >= minX && r.Right <= maxX {
			c.DrawRect(r.Translate(origin.X, origin.Y), graphics.FillPaint(e.theme.CaretColor))
		}
	}
}

func (e *Entry) relayout() {
	e.doc.EndUpdate()
	e.doc.BeginUpdate()
	e.scrollToCaret()
}

package input

import (
	"math"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-futura/futura/pkg/animation"
	"github.com/go-futura/futura/pkg/clipboard"
	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/errors"
	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/logging"
	"github.com/go-futura/futura/pkg/textedit"
)

// RouterConfig configures a Router. Zero values select defaults.
type RouterConfig struct {
	Keymap      Keymap
	Clipboard   clipboard.Clipboard
	ClickWindow time.Duration
	ClickSlop   float64
	// PageLines is how many lines NextPage and PreviousPage move.
	PageLines int
	// MaxLength caps the text length in runes. Zero means unlimited.
	MaxLength int
	// TitleCase capitalizes text typed into an empty document.
	TitleCase bool
	// HistoryDisabled turns off caret history recording and navigation.
	HistoryDisabled bool
	// Widget identifies the owner in error reports.
	Widget string
	Logger *zap.Logger
}

// Router drives an Engine from raw input.
type Router struct {
	engine *textedit.Engine
	doc    document.StyledDocument
	clicks *ClickCounter
	keymap Keymap
	clip   clipboard.Clipboard
	cfg    RouterConfig
	title  cases.Caser
	log    *zap.Logger

	placeholder bool
	dragging    bool
	dragAnchor  int
	idealX      float64
}

// NewRouter returns a router for e.
func NewRouter(e *textedit.Engine, cfg RouterConfig) *Router {
	if cfg.Keymap == nil {
		cfg.Keymap = DefaultKeymap(ModCtrl)
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.System()
	}
	if cfg.PageLines <= 0 {
		cfg.PageLines = 10
	}
	r := &Router{
		engine: e,
		doc:    e.Document(),
		clicks: NewClickCounter(cfg.ClickWindow, cfg.ClickSlop),
		keymap: cfg.Keymap,
		clip:   cfg.Clipboard,
		cfg:    cfg,
		title:  cases.Title(language.Und),
		log:    cfg.Logger,
		idealX: math.NaN(),
	}
	if r.log == nil {
		r.log = logging.Named("input")
	}
	e.OnClear(func() {
		r.clicks.Reset()
		r.dragging = false
		r.idealX = math.NaN()
	})
	return r
}

// Engine returns the driven engine.
func (r *Router) Engine() *textedit.Engine {
	return r.engine
}

// Clicks returns the click counter.
func (r *Router) Clicks() *ClickCounter {
	return r.clicks
}

// Keymap returns the active keymap.
func (r *Router) Keymap() Keymap {
	return r.keymap
}

// SetPageLines changes how far page motions move.
func (r *Router) SetPageLines(n int) {
	if n > 0 {
		r.cfg.PageLines = n
	}
}

// SetMaxLength changes the length cap. Zero means unlimited.
func (r *Router) SetMaxLength(n int) {
	r.cfg.MaxLength = max(n, 0)
}

// SetPlaceholder shows text until the first interaction. It has no effect
// when the document already holds text.
func (r *Router) SetPlaceholder(text string) {
	if r.engine.Len() > 0 || text == "" {
		return
	}
	r.engine.SetText(text, false)
	r.placeholder = true
}

// ShowingPlaceholder reports whether the placeholder is displayed.
func (r *Router) ShowingPlaceholder() bool {
	return r.placeholder
}

// Dragging reports whether a primary button drag is in progress.
func (r *Router) Dragging() bool {
	return r.dragging
}

// Mouse dispatches a pointer event in document coordinates.
func (r *Router) Mouse(ev MouseEvent) {
	switch ev.Action {
	case MousePress:
		if ev.Button == ButtonPrimary {
			r.Press(ev.Pos, ev.Mods, animation.Now())
		}
	case MouseDrag:
		r.Drag(ev.Pos)
	case MouseRelease:
		r.Release()
	}
}

// Press handles a primary button press at pos.
func (r *Router) Press(pos geometry.Offset, mods Modifiers, now time.Time) {
	r.clearPlaceholder()
	r.idealX = math.NaN()

	before := r.engine.CaretIndex()
	index := r.doc.HitTest(pos)
	switch n := r.clicks.Click(pos, now); {
	case n == 2:
		start, end := r.doc.WordBoundsAt(index)
		r.engine.Select(start, end)
		r.dragging = false
	case n >= 3:
		start, end := r.doc.ParagraphBoundsAt(index)
		r.engine.Select(start, end)
		r.dragging = false
	case mods.Shift():
		r.engine.MoveCaret(index, true)
		r.dragAnchor, _ = r.engine.Mark()
		r.dragging = true
	default:
		r.engine.MoveCaret(index, false)
		if index != before || r.engine.History().Len() == 0 {
			r.pushHistory()
		}
		r.dragAnchor = index
		r.dragging = true
	}
	r.log.Debug("press", zap.String("widget", r.cfg.Widget), zap.Int("index", index), zap.Int("clicks", r.clicks.Count()))
}

// Drag moves the caret to pos while the primary button is held, selecting
// from where the drag started.
func (r *Router) Drag(pos geometry.Offset) {
	if !r.dragging {
		return
	}
	r.engine.Select(r.dragAnchor, r.doc.HitTest(pos))
}

// Release ends a drag.
func (r *Router) Release() {
	r.dragging = false
}

// Key applies the binding for ev. It reports whether ev was bound.
func (r *Router) Key(ev KeyEvent) bool {
	b, ok := r.keymap.Lookup(ev)
	if !ok {
		return false
	}
	r.Apply(b)
	return true
}

// Apply performs a binding.
func (r *Router) Apply(b Binding) {
	r.clearPlaceholder()
	e := r.engine
	caret := e.CaretIndex()

	if b.Motion != MotionUp && b.Motion != MotionDown &&
		b.Motion != MotionNextPage && b.Motion != MotionPreviousPage {
		r.idealX = math.NaN()
	}

	switch b.Motion {
	case MotionLeft:
		if e.HasSelection() && !b.Extend {
			e.MoveCaret(e.Selection().Start, false)
			return
		}
		e.MoveCaret(r.doc.PrevGrapheme(caret), b.Extend)
	case MotionRight:
		if e.HasSelection() && !b.Extend {
			e.MoveCaret(e.Selection().End, false)
			return
		}
		e.MoveCaret(r.doc.NextGrapheme(caret), b.Extend)
	case MotionUp:
		r.moveLines(-1, b.Extend)
	case MotionDown:
		r.moveLines(1, b.Extend)
	case MotionPreviousPage:
		r.moveLines(-r.cfg.PageLines, b.Extend)
	case MotionNextPage:
		r.moveLines(r.cfg.PageLines, b.Extend)
	case MotionNextWord:
		e.MoveCaret(r.doc.NextWord(caret), b.Extend)
	case MotionPreviousWord:
		e.MoveCaret(r.doc.PreviousWord(caret), b.Extend)
	case MotionLineStart:
		e.MoveCaret(r.doc.LineStart(r.doc.LineOf(caret)), b.Extend)
	case MotionLineEnd:
		e.MoveCaret(r.doc.LineEnd(r.doc.LineOf(caret)), b.Extend)
	case MotionDocumentStart:
		e.MoveCaret(0, b.Extend)
	case MotionDocumentEnd:
		e.MoveCaret(e.Len(), b.Extend)
	case MotionBackspace:
		switch {
		case e.HasSelection():
			e.DeleteSelection()
		case b.Word:
			e.Delete(r.doc.PreviousWord(caret), caret)
		default:
			e.Delete(r.doc.PrevGrapheme(caret), caret)
		}
	case MotionDelete:
		switch {
		case e.HasSelection():
			e.DeleteSelection()
		case b.Word:
			e.Delete(caret, r.doc.NextWord(caret))
		default:
			e.Delete(caret, r.doc.NextGrapheme(caret))
		}
	case MotionCopy:
		r.Copy()
	case MotionCut:
		r.Cut()
	case MotionPaste:
		r.Paste()
	case MotionSelectAll:
		e.SelectAll()
	case MotionHistoryBack:
		if !r.cfg.HistoryDisabled {
			e.HistoryBack()
		}
	case MotionHistoryForward:
		if !r.cfg.HistoryDisabled {
			e.HistoryForward()
		}
	}
}

// Copy writes the selection to the clipboard. It reports success; an empty
// selection or an unavailable clipboard copies nothing.
func (r *Router) Copy() bool {
	if !r.engine.HasSelection() {
		return false
	}
	if err := r.clip.Write(r.engine.SelectedText()); err != nil {
		r.report("input.Router.Copy", errors.KindClipboard, err)
		return false
	}
	return true
}

// Cut copies the selection and then deletes it.
func (r *Router) Cut() {
	if r.Copy() {
		r.engine.DeleteSelection()
	}
}

// Paste inserts the clipboard text at the caret, replacing the selection.
func (r *Router) Paste() {
	text, err := r.clip.Read()
	if err != nil {
		r.report("input.Router.Paste", errors.KindClipboard, err)
		return
	}
	r.insert("input.Router.Paste", text)
}

// Text inserts typed text at the caret, replacing the selection. Text
// beyond the length cap is dropped. A validation failure is returned and
// reported; the document is left as it was.
func (r *Router) Text(text string) error {
	r.clearPlaceholder()
	if r.cfg.TitleCase && text != "" && r.engine.Len()-r.engine.Selection().Len() == 0 {
		text = r.titleFirst(text)
	}
	return r.insert("input.Router.Text", text)
}

func (r *Router) insert(op, text string) error {
	if text == "" {
		return nil
	}
	if limit := r.cfg.MaxLength; limit > 0 {
		room := limit - (r.engine.Len() - r.engine.Selection().Len())
		if room <= 0 {
			return nil
		}
		if utf8.RuneCountInString(text) > room {
			text = string([]rune(text)[:room])
		}
	}
	if err := r.engine.ReplaceSelection(text); err != nil {
		r.report(op, errors.KindValidation, err)
		return err
	}
	return nil
}

// titleFirst capitalizes the first word of text.
func (r *Router) titleFirst(text string) string {
	runes := []rune(text)
	end := 0
	for end < len(runes) && runes[end] != ' ' && runes[end] != '\n' {
		end++
	}
	return r.title.String(string(runes[:end])) + string(runes[end:])
}

func (r *Router) moveLines(delta int, extend bool) {
	caret := r.engine.CaretIndex()
	if math.IsNaN(r.idealX) {
		r.idealX = r.doc.PointOf(caret).X
	}
	line := r.doc.LineOf(caret) + delta
	line = max(0, min(line, r.doc.LineCount()-1))
	r.engine.MoveCaret(r.doc.PositionAtLineX(line, r.idealX), extend)
}

func (r *Router) pushHistory() {
	if !r.cfg.HistoryDisabled {
		r.engine.PushHistory()
	}
}

func (r *Router) clearPlaceholder() {
	if !r.placeholder {
		return
	}
	r.placeholder = false
	r.engine.Clear()
}

func (r *Router) report(op string, kind errors.ErrorKind, err error) {
	errors.Report(&errors.FuturaError{Op: op, Kind: kind, Err: err, Widget: r.cfg.Widget})
}

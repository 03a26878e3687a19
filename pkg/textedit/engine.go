// Package textedit implements the editing core shared by entry widgets:
// index based insertion and deletion, caret and mark tracking, caret
// position history, validation and change events.
//
// All indices are rune offsets. Out-of-range indices are clamped into
// [0, Len()] and never reported as errors.
package textedit

import (
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/go-futura/futura/pkg/animation"
	"github.com/go-futura/futura/pkg/batch"
	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/errors"
	"github.com/go-futura/futura/pkg/logging"
)

// Config configures an Engine.
type Config struct {
	// Validator gates every insertion. Nil accepts all text.
	Validator Validator
	// HistoryLimit caps the caret history. Zero uses DefaultHistoryLimit.
	HistoryLimit int
	// BlinkPeriod is the caret blink period. Zero uses DefaultBlinkPeriod.
	BlinkPeriod time.Duration
	// BlinkDisabled keeps the caret permanently visible.
	BlinkDisabled bool
	// Updater receives an invalidation after every content change.
	Updater *batch.Updater
	// Logger receives debug logs. Nil uses the process logger.
	Logger *zap.Logger
}

// Engine owns the caret, mark and history of one document.
type Engine struct {
	doc       document.StyledDocument
	caret     int
	mark      int
	hasMark   bool
	history   *History
	validator Validator
	blink     *Caret
	updater   *batch.Updater
	listeners listeners
	onClear   []func()
	log       *zap.Logger
}

// NewEngine returns an engine editing doc with the caret at the start.
func NewEngine(doc document.StyledDocument, cfg Config) *Engine {
	e := &Engine{
		doc:       doc,
		history:   NewHistory(cfg.HistoryLimit),
		validator: cfg.Validator,
		blink:     NewCaret(cfg.BlinkPeriod),
		updater:   cfg.Updater,
		log:       cfg.Logger,
	}
	if e.log == nil {
		e.log = logging.Named("textedit")
	}
	e.blink.SetBlinkEnabled(!cfg.BlinkDisabled)
	e.blink.notify = e.listeners.emit
	return e
}

// Document returns the edited document.
func (e *Engine) Document() document.StyledDocument {
	return e.doc
}

// Caret returns the blink controller.
func (e *Engine) Caret() *Caret {
	return e.blink
}

// History returns the caret history.
func (e *Engine) History() *History {
	return e.history
}

// Text returns the document text.
func (e *Engine) Text() string {
	return e.doc.Text()
}

// Len returns the document length in runes.
func (e *Engine) Len() int {
	return e.doc.Len()
}

// CaretIndex returns the caret position.
func (e *Engine) CaretIndex() int {
	e.sync()
	return e.caret
}

// Mark returns the mark and whether one is set.
func (e *Engine) Mark() (int, bool) {
	e.sync()
	return e.mark, e.hasMark
}

// HasSelection reports whether a non-empty range is selected.
func (e *Engine) HasSelection() bool {
	e.sync()
	return e.hasMark && e.mark != e.caret
}

// Selection returns the range between mark and caret. Without a mark it is
// the empty range at the caret.
func (e *Engine) Selection() Selection {
	e.sync()
	if !e.hasMark {
		return Selection{Start: e.caret, End: e.caret}
	}
	return NewSelection(e.mark, e.caret)
}

// SelectedText returns the text covered by the selection.
func (e *Engine) SelectedText() string {
	s := e.Selection()
	return e.doc.Slice(s.Start, s.End)
}

// Validator returns the configured validator, or nil.
func (e *Engine) Validator() Validator {
	return e.validator
}

// SetValidator replaces the validator. Existing text is not re-checked.
func (e *Engine) SetValidator(v Validator) {
	e.validator = v
}

// AddListener registers fn for every event. The returned func removes it.
func (e *Engine) AddListener(fn Listener) (remove func()) {
	return e.listeners.add(fn)
}

// OnClear registers fn to run whenever Clear is called.
func (e *Engine) OnClear(fn func()) {
	e.onClear = append(e.onClear, fn)
}

// Insert splices text into the document at index. Inserting text that does
// not change the document is a no-op and skips validation. Otherwise the
// candidate text is validated first; a rejection returns a
// *errors.ValidationError and leaves every piece of state untouched. On success the mark is cleared and, if changeIndex
// is set, the caret moves to the end of the insertion.
func (e *Engine) Insert(index int, text string, changeIndex bool) error {
	e.sync()
	index = e.clamp(index)
	old := e.doc.Text()
	candidate := splice(old, index, index, text)
	if candidate == old {
		return nil
	}
	if err := e.validate(candidate); err != nil {
		return err
	}

	e.doc.Splice(index, text, 0, 0)
	e.hasMark = false
	if changeIndex {
		e.caret = index + utf8.RuneCountInString(text)
	}
	e.caret = e.clamp(e.caret)
	e.edited(TextEdited{Text: text, Previous: old})
	e.log.Debug("insert", zap.Int("index", index), zap.Int("len", e.doc.Len()))
	return nil
}

// Delete removes [start, end) and returns the removed text. The bounds are
// clamped and swapped when inverted. The caret moves to start and the mark
// is cleared. An empty range is a no-op.
func (e *Engine) Delete(start, end int) string {
	start, end = e.clamp(start), e.clamp(end)
	if start > end {
		start, end = end, start
	}
	if start == end {
		return ""
	}
	removed := e.doc.Slice(start, end)
	e.doc.Splice(start, "", start, end)
	e.hasMark = false
	e.caret = start
	e.edited(TextEdited{Text: "", Previous: removed})
	e.log.Debug("delete", zap.Int("start", start), zap.Int("end", end), zap.Int("len", e.doc.Len()))
	return removed
}

// ReplaceSelection replaces the selected range with text, or inserts at the
// caret when nothing is selected. The combined result is validated once.
func (e *Engine) ReplaceSelection(text string) error {
	if !e.HasSelection() {
		return e.Insert(e.caret, text, true)
	}
	sel := e.Selection()
	old := e.doc.Text()
	candidate := splice(old, sel.Start, sel.End, text)
	if candidate == old {
		return nil
	}
	if err := e.validate(candidate); err != nil {
		return err
	}
	e.doc.BeginUpdate()
	e.doc.Splice(sel.Start, text, sel.Start, sel.End)
	e.doc.EndUpdate()
	e.hasMark = false
	e.caret = e.clamp(sel.Start + utf8.RuneCountInString(text))
	e.edited(TextEdited{Text: text, Previous: old})
	e.log.Debug("replace", zap.Int("start", sel.Start), zap.Int("end", sel.End), zap.Int("len", e.doc.Len()))
	return nil
}

// DeleteSelection removes the selected text, if any.
func (e *Engine) DeleteSelection() string {
	if !e.HasSelection() {
		return ""
	}
	sel := e.Selection()
	return e.Delete(sel.Start, sel.End)
}

// SetText replaces the whole text without validation. With changeIndex the
// caret moves to the end, otherwise it is clamped.
func (e *Engine) SetText(text string, changeIndex bool) {
	old := e.doc.Text()
	if text == old {
		return
	}
	e.doc.BeginUpdate()
	e.doc.Splice(0, text, 0, e.doc.Len())
	e.doc.EndUpdate()
	e.hasMark = false
	if changeIndex {
		e.caret = e.doc.Len()
	}
	e.caret = e.clamp(e.caret)
	e.edited(TextEdited{Text: text, Previous: old})
}

// Clear empties the document, moves the caret to 0, drops the mark and the
// history, and runs the OnClear hooks.
func (e *Engine) Clear() {
	old := e.doc.Text()
	if old != "" {
		e.doc.Splice(0, "", 0, e.doc.Len())
	}
	e.caret = 0
	e.hasMark = false
	e.history.Reset()
	for _, fn := range e.onClear {
		fn()
	}
	if old != "" {
		e.edited(TextEdited{Text: "", Previous: old})
	}
}

// SetCaretIndex moves the caret, keeping the mark. It emits TextInteracted
// only when the caret moved.
func (e *Engine) SetCaretIndex(index int) {
	e.sync()
	index = e.clamp(index)
	if index == e.caret {
		return
	}
	e.caret = index
	e.interacted()
}

// SetMark sets the mark. It emits TextInteracted only when the mark changed.
func (e *Engine) SetMark(index int) {
	e.sync()
	index = e.clamp(index)
	if e.hasMark && e.mark == index {
		return
	}
	e.mark, e.hasMark = index, true
	e.interacted()
}

// ClearMark drops the mark.
func (e *Engine) ClearMark() {
	if !e.hasMark {
		return
	}
	e.hasMark = false
	e.interacted()
}

// MoveCaret moves the caret to index. With extend the selection grows from
// the existing mark, or from the old caret when there is none; without it
// the mark is dropped. At most one TextInteracted is emitted.
func (e *Engine) MoveCaret(index int, extend bool) {
	e.sync()
	index = e.clamp(index)
	mark, hasMark := e.mark, e.hasMark
	if extend {
		if !hasMark {
			mark, hasMark = e.caret, true
		}
	} else {
		hasMark = false
	}
	e.setSelection(mark, hasMark, index)
}

// Select sets the mark to anchor and the caret to index.
func (e *Engine) Select(anchor, index int) {
	e.setSelection(e.clamp(anchor), true, e.clamp(index))
}

// SelectAll selects the whole document with the caret at the end.
func (e *Engine) SelectAll() {
	e.Select(0, e.doc.Len())
}

// PushHistory records the current caret position.
func (e *Engine) PushHistory() {
	e.history.Push(e.caret)
}

// HistoryBack moves the caret to the previous recorded position.
func (e *Engine) HistoryBack() bool {
	index, ok := e.history.Back()
	if ok {
		e.MoveCaret(index, false)
	}
	return ok
}

// HistoryForward moves the caret to the next recorded position.
func (e *Engine) HistoryForward() bool {
	index, ok := e.history.Forward()
	if ok {
		e.MoveCaret(index, false)
	}
	return ok
}

func (e *Engine) setSelection(mark int, hasMark bool, caret int) {
	e.sync()
	changed := caret != e.caret || hasMark != e.hasMark || (hasMark && mark != e.mark)
	if !changed {
		return
	}
	e.mark, e.hasMark, e.caret = mark, hasMark, caret
	e.interacted()
}

func (e *Engine) validate(candidate string) error {
	if e.validator == nil || e.validator.Accept(candidate) {
		return nil
	}
	err := &errors.ValidationError{Candidate: candidate}
	if s, ok := e.validator.(interface{ String() string }); ok {
		err.Pattern = s.String()
	}
	e.log.Debug("rejected", zap.String("candidate", candidate))
	return err
}

func (e *Engine) edited(ev TextEdited) {
	e.blink.Reset(animation.Now())
	if e.updater != nil {
		e.updater.Invalidate()
	}
	e.listeners.emit(ev)
}

func (e *Engine) interacted() {
	e.blink.Reset(animation.Now())
	if e.updater != nil {
		e.updater.Invalidate()
	}
	e.listeners.emit(TextInteracted{Index: e.caret, Selection: e.Selection()})
}

// sync clamps caret and mark after the document was changed behind the
// engine's back.
func (e *Engine) sync() {
	e.caret = e.clamp(e.caret)
	e.mark = e.clamp(e.mark)
}

func (e *Engine) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if n := e.doc.Len(); i > n {
		return n
	}
	return i
}

// splice returns s with the rune range [start, end) replaced by text.
func splice(s string, start, end int, text string) string {
	r := []rune(s)
	return string(r[:start]) + text + string(r[end:])
}

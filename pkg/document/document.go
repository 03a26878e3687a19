// Package document provides the styled text model edited by entries and
// displayed by labels.
//
// A Document stores its content as runes. Every index accepted or returned
// by this package is a rune offset in [0, Len()], and ranges are half-open.
// Out-of-range indices are clamped, never rejected.
package document

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
)

// StyledDocument is the text and layout collaborator used by the editing
// engine and the input router.
type StyledDocument interface {
	Text() string
	Len() int
	Slice(start, end int) string
	// Splice deletes [delStart, delEnd) and then inserts inserted at index.
	// The index is interpreted against the text after the deletion.
	Splice(index int, inserted string, delStart, delEnd int)

	HitTest(p geometry.Offset) int
	BoundsOf(start, end int) []geometry.Rect
	PointOf(i int) geometry.Offset

	WordBoundsAt(i int) (int, int)
	ParagraphBoundsAt(i int) (int, int)
	NextWord(i int) int
	PreviousWord(i int) int
	NextGrapheme(i int) int
	PrevGrapheme(i int) int

	LineOf(i int) int
	LineCount() int
	LineStart(line int) int
	LineEnd(line int) int
	LineHeight() float64
	PositionAtLineX(line int, x float64) int

	BeginUpdate()
	EndUpdate()
}

// Style holds the attributes applied to a run of text.
type Style struct {
	Color     graphics.Color
	Bold      bool
	Italic    bool
	Underline bool
	FontSize  float64
}

// Run is a maximal range of text sharing one style.
type Run struct {
	Start int
	End   int
	Style Style
}

// Option configures a Document at construction.
type Option func(*Document)

// WithFace sets the face used for glyph metrics.
func WithFace(face font.Face) Option {
	return func(d *Document) {
		if face != nil {
			d.face = face
		}
	}
}

// WithWrapWidth enables soft wrapping at the given width in pixels.
// Zero disables wrapping.
func WithWrapWidth(width float64) Option {
	return func(d *Document) { d.wrapWidth = width }
}

// WithStyle sets the style given to text inserted with no styled neighbour.
func WithStyle(style Style) Option {
	return func(d *Document) { d.defaultStyle = style }
}

// Document is a rune buffer with per-rune styles and a lazily computed
// glyph layout. It is not safe for concurrent use.
type Document struct {
	runes  []rune
	styles []Style

	defaultStyle Style
	face         font.Face
	wrapWidth    float64
	mask         rune

	lay         layout
	dirty       bool
	updateDepth int
	relayouts   int
}

var _ StyledDocument = (*Document)(nil)

// New returns a document holding text.
func New(text string, opts ...Option) *Document {
	d := &Document{
		face:         basicfont.Face7x13,
		defaultStyle: Style{Color: graphics.ColorBlack, FontSize: 13},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.runes = []rune(text)
	d.styles = make([]Style, len(d.runes))
	for i := range d.styles {
		d.styles[i] = d.defaultStyle
	}
	d.invalidate()
	return d
}

// Text returns the full content.
func (d *Document) Text() string {
	return string(d.runes)
}

// Len returns the length in runes.
func (d *Document) Len() int {
	return len(d.runes)
}

// Clamp returns i limited to [0, Len()].
func (d *Document) Clamp(i int) int {
	return clamp(i, 0, len(d.runes))
}

// Slice returns the text in [start, end). The bounds are clamped and swapped
// when inverted.
func (d *Document) Slice(start, end int) string {
	start, end = d.span(start, end)
	return string(d.runes[start:end])
}

// Splice removes [delStart, delEnd) and inserts inserted at index. Inserted
// runes take the style of the rune before them.
func (d *Document) Splice(index int, inserted string, delStart, delEnd int) {
	delStart, delEnd = d.span(delStart, delEnd)
	if delEnd > delStart {
		d.runes = append(d.runes[:delStart], d.runes[delEnd:]...)
		d.styles = append(d.styles[:delStart], d.styles[delEnd:]...)
	}
	ins := []rune(inserted)
	if len(ins) == 0 {
		if delEnd > delStart {
			d.invalidate()
		}
		return
	}
	index = d.Clamp(index)
	style := d.defaultStyle
	if index > 0 {
		style = d.styles[index-1]
	} else if len(d.styles) > 0 {
		style = d.styles[0]
	}
	newStyles := make([]Style, len(ins))
	for i := range newStyles {
		newStyles[i] = style
	}
	d.runes = append(d.runes[:index], append(ins, d.runes[index:]...)...)
	d.styles = append(d.styles[:index], append(newStyles, d.styles[index:]...)...)
	d.invalidate()
}

// SetText replaces the whole content. Styles reset to the default style.
func (d *Document) SetText(text string) {
	d.runes = []rune(text)
	d.styles = make([]Style, len(d.runes))
	for i := range d.styles {
		d.styles[i] = d.defaultStyle
	}
	d.invalidate()
}

// SetStyle applies style to [start, end).
func (d *Document) SetStyle(start, end int, style Style) {
	start, end = d.span(start, end)
	if start == end {
		return
	}
	for i := start; i < end; i++ {
		d.styles[i] = style
	}
	d.invalidate()
}

// UpdateStyle applies fn to the style of every rune in [start, end).
func (d *Document) UpdateStyle(start, end int, fn func(Style) Style) {
	start, end = d.span(start, end)
	if start == end {
		return
	}
	for i := start; i < end; i++ {
		d.styles[i] = fn(d.styles[i])
	}
	d.invalidate()
}

// StyleAt returns the style of the rune at i. Past the end it returns the
// style new text would receive.
func (d *Document) StyleAt(i int) Style {
	if len(d.styles) == 0 {
		return d.defaultStyle
	}
	i = clamp(i, 0, len(d.styles)-1)
	return d.styles[i]
}

// DefaultStyle returns the style used for unstyled text.
func (d *Document) DefaultStyle() Style {
	return d.defaultStyle
}

// Runs returns the style runs covering the document, merged so that no two
// adjacent runs share a style.
func (d *Document) Runs() []Run {
	var runs []Run
	for i, s := range d.styles {
		if n := len(runs); n > 0 && runs[n-1].Style == s {
			runs[n-1].End = i + 1
			continue
		}
		runs = append(runs, Run{Start: i, End: i + 1, Style: s})
	}
	return runs
}

// SetMask lays out every rune as r, for password fields. Zero disables
// masking. Text and indices are unaffected.
func (d *Document) SetMask(r rune) {
	if d.mask == r {
		return
	}
	d.mask = r
	d.invalidate()
}

// Mask returns the display mask rune, or zero.
func (d *Document) Mask() rune {
	return d.mask
}

// DisplayText returns the text as laid out, with the mask applied.
func (d *Document) DisplayText() string {
	if d.mask == 0 {
		return d.Text()
	}
	out := make([]rune, len(d.runes))
	for i, r := range d.runes {
		if r == '\n' {
			out[i] = r
			continue
		}
		out[i] = d.mask
	}
	return string(out)
}

// SetWrapWidth changes the soft wrap width. Zero disables wrapping.
func (d *Document) SetWrapWidth(width float64) {
	if d.wrapWidth == width {
		return
	}
	d.wrapWidth = width
	d.invalidate()
}

// Face returns the face used for metrics.
func (d *Document) Face() font.Face {
	return d.face
}

// BeginUpdate defers relayout until the matching EndUpdate. Brackets nest.
func (d *Document) BeginUpdate() {
	d.updateDepth++
}

// EndUpdate closes a bracket opened by BeginUpdate. Leaving the outermost
// bracket performs at most one relayout.
func (d *Document) EndUpdate() {
	if d.updateDepth == 0 {
		return
	}
	d.updateDepth--
	if d.updateDepth == 0 && d.dirty {
		d.relayout()
	}
}

// Relayouts returns how many times glyph layout has been computed.
func (d *Document) Relayouts() int {
	return d.relayouts
}

func (d *Document) invalidate() {
	d.dirty = true
	if d.updateDepth == 0 {
		d.relayout()
	}
}

// span clamps both bounds and orders them.
func (d *Document) span(start, end int) (int, int) {
	start, end = d.Clamp(start), d.Clamp(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

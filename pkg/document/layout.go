package document

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/go-futura/futura/pkg/geometry"
)

// line is one laid out row of text. End excludes the terminating newline.
// A soft line ends where wrapping broke it, so End equals the next Start.
type line struct {
	start int
	end   int
	soft  bool
}

type layout struct {
	lines      []line
	advances   []float64
	lineHeight float64
	ascent     float64
	width      float64
}

// relayout recomputes glyph advances and line breaks for the whole text.
func (d *Document) relayout() {
	d.dirty = false
	d.relayouts++

	metrics := d.face.Metrics()
	lay := layout{
		lineHeight: fixedToFloat(metrics.Height),
		ascent:     fixedToFloat(metrics.Ascent),
		advances:   make([]float64, len(d.runes)),
	}
	if lay.lineHeight <= 0 {
		lay.lineHeight = fixedToFloat(metrics.Ascent + metrics.Descent)
	}

	prev := rune(-1)
	for i, r := range d.runes {
		if r == '\n' {
			prev = -1
			continue
		}
		if d.mask != 0 {
			r = d.mask
		}
		adv, _ := d.face.GlyphAdvance(r)
		if prev >= 0 {
			adv += d.face.Kern(prev, r)
		}
		lay.advances[i] = fixedToFloat(adv)
		prev = r
	}

	start := 0
	x := 0.0
	lastBreak := -1
	for i, r := range d.runes {
		if r == '\n' {
			lay.lines = append(lay.lines, line{start: start, end: i})
			lay.width = math.Max(lay.width, x)
			start, x, lastBreak = i+1, 0, -1
			continue
		}
		if d.wrapWidth > 0 && i > start && x+lay.advances[i] > d.wrapWidth {
			brk := i
			if lastBreak > start {
				brk = lastBreak
			}
			lay.lines = append(lay.lines, line{start: start, end: brk, soft: true})
			lay.width = math.Max(lay.width, sum(lay.advances[start:brk]))
			start, lastBreak = brk, -1
			x = sum(lay.advances[start:i])
		}
		x += lay.advances[i]
		if r == ' ' || r == '\t' {
			lastBreak = i + 1
		}
	}
	lay.lines = append(lay.lines, line{start: start, end: len(d.runes)})
	lay.width = math.Max(lay.width, x)
	d.lay = lay
}

// ensure returns the layout queries read. Inside an update bracket it is
// the last committed layout, which may describe a shorter or longer text.
func (d *Document) ensure() *layout {
	if d.dirty && d.updateDepth == 0 {
		d.relayout()
	}
	return &d.lay
}

// lineAt returns line n limited to the current text. The last line always
// runs to the end of the text, so a stale layout still reaches every index.
func (d *Document) lineAt(lay *layout, n int) line {
	n = clamp(n, 0, len(lay.lines)-1)
	l := lay.lines[n]
	if n == len(lay.lines)-1 {
		l.end = len(d.runes)
	}
	l.start = d.Clamp(l.start)
	l.end = clamp(l.end, l.start, len(d.runes))
	return l
}

// advance sums the committed glyph advances over [start, end).
func (lay *layout) advance(start, end int) float64 {
	start = clamp(start, 0, len(lay.advances))
	end = clamp(end, start, len(lay.advances))
	return sum(lay.advances[start:end])
}

// LineCount returns the number of laid out lines. An empty document has one.
func (d *Document) LineCount() int {
	return len(d.ensure().lines)
}

// LineHeight returns the height of one line in pixels.
func (d *Document) LineHeight() float64 {
	return d.ensure().lineHeight
}

// Ascent returns the distance from the top of a line to its baseline.
func (d *Document) Ascent() float64 {
	return d.ensure().ascent
}

// ContentSize returns the size of the laid out text.
func (d *Document) ContentSize() geometry.Size {
	lay := d.ensure()
	return geometry.Size{Width: lay.width, Height: float64(len(lay.lines)) * lay.lineHeight}
}

// LineOf returns the line holding index i.
func (d *Document) LineOf(i int) int {
	lay := d.ensure()
	i = d.Clamp(i)
	for n := range lay.lines {
		l := d.lineAt(lay, n)
		if i < l.end || (i == l.end && !l.soft) {
			return n
		}
	}
	return len(lay.lines) - 1
}

// LineStart returns the first index of line.
func (d *Document) LineStart(n int) int {
	return d.lineAt(d.ensure(), n).start
}

// LineEnd returns the index just past the last character of line, before
// any newline.
func (d *Document) LineEnd(n int) int {
	return d.lineAt(d.ensure(), n).end
}

// PointOf returns the top-left of the caret position at index i.
func (d *Document) PointOf(i int) geometry.Offset {
	lay := d.ensure()
	i = d.Clamp(i)
	n := d.LineOf(i)
	l := d.lineAt(lay, n)
	return geometry.Offset{
		X: lay.advance(l.start, i),
		Y: float64(n) * lay.lineHeight,
	}
}

// PositionAtLineX returns the index on line nearest to x. A point past the
// middle of a glyph resolves to the index after it.
func (d *Document) PositionAtLineX(n int, x float64) int {
	lay := d.ensure()
	l := d.lineAt(lay, n)
	pos := 0.0
	for i := l.start; i < min(l.end, len(lay.advances)); i++ {
		adv := lay.advances[i]
		if x < pos+adv/2 {
			return i
		}
		pos += adv
	}
	return l.end
}

// HitTest returns the index nearest to p, in document coordinates.
func (d *Document) HitTest(p geometry.Offset) int {
	lay := d.ensure()
	n := 0
	if lay.lineHeight > 0 {
		n = int(math.Floor(p.Y / lay.lineHeight))
	}
	return d.PositionAtLineX(clamp(n, 0, len(lay.lines)-1), p.X)
}

// BoundsOf returns one rectangle per line covered by [start, end). An empty
// range yields a single zero-width rectangle at the caret position.
func (d *Document) BoundsOf(start, end int) []geometry.Rect {
	lay := d.ensure()
	start, end = d.span(start, end)
	if start == end {
		p := d.PointOf(start)
		return []geometry.Rect{geometry.RectFromLTWH(p.X, p.Y, 0, lay.lineHeight)}
	}
	var rects []geometry.Rect
	for n := range lay.lines {
		l := d.lineAt(lay, n)
		lo, hi := max(start, l.start), min(end, l.end)
		if lo > hi || (lo == hi && !(start <= l.start && end > l.end)) {
			continue
		}
		left := lay.advance(l.start, lo)
		right := left + lay.advance(lo, hi)
		rects = append(rects, geometry.Rect{
			Left:   left,
			Top:    float64(n) * lay.lineHeight,
			Right:  right,
			Bottom: float64(n+1) * lay.lineHeight,
		})
	}
	return rects
}

func sum(vs []float64) float64 {
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

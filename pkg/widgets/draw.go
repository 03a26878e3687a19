package widgets

import (
	"math"

	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
)

// drawDocument draws the style runs of doc line by line, offset by origin.
// A non-zero override replaces the run colours.
func drawDocument(c graphics.Canvas, doc *document.Document, origin geometry.Offset, override graphics.Color) {
	drawDocumentWithin(c, doc, origin, override, math.Inf(-1), math.Inf(1))
}

// drawDocumentWithin is drawDocument limited to the glyphs lying entirely
// between minX and maxX in document coordinates.
func drawDocumentWithin(c graphics.Canvas, doc *document.Document, origin geometry.Offset, override graphics.Color, minX, maxX float64) {
	display := []rune(doc.DisplayText())
	runs := doc.Runs()
	for n, lines := 0, doc.LineCount(); n < lines; n++ {
		ls, le := doc.LineStart(n), doc.LineEnd(n)
		for _, run := range runs {
			s, e := max(ls, run.Start), min(le, run.End)
			for s < e && doc.PointOf(s).X < minX {
				s++
			}
			for e > s && doc.PointOf(e).X > maxX {
				e--
			}
			if s >= e {
				continue
			}
			paint := textPaint(run.Style)
			if override != 0 {
				paint.Color = override
			}
			c.DrawText(string(display[s:e]), origin.Add(doc.PointOf(s)), paint)
		}
	}
}

func textPaint(s document.Style) graphics.TextPaint {
	return graphics.TextPaint{
		Color:     s.Color,
		Bold:      s.Bold,
		Italic:    s.Italic,
		Underline: s.Underline,
		Size:      s.FontSize,
	}
}

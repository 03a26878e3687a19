// Package graphics provides colors and the drawing surface widgets paint
// into.
//
// Widgets draw through the [Canvas] interface. A [PictureRecorder] captures
// the calls as a [DisplayList] for tests and snapshots, and a [RasterCanvas]
// renders them into an image.
package graphics

import "github.com/go-futura/futura/pkg/geometry"

// Paint describes how a shape is drawn.
type Paint struct {
	Color Color
	// Stroke outlines the shape instead of filling it.
	Stroke      bool
	StrokeWidth float64
}

// FillPaint returns a fill paint of color c.
func FillPaint(c Color) Paint {
	return Paint{Color: c}
}

// StrokePaint returns an outline paint of color c and the given width.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Stroke: true, StrokeWidth: width}
}

// TextPaint describes how a run of text is drawn.
type TextPaint struct {
	Color     Color
	Bold      bool
	Italic    bool
	Underline bool
	Size      float64
}

// Canvas receives drawing commands from widgets. Coordinates are in pixels
// with the origin at the top left. DrawText positions text by the top left
// corner of its line box.
type Canvas interface {
	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect geometry.Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center geometry.Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end geometry.Offset, paint Paint)

	// DrawText draws a single line of text.
	DrawText(text string, origin geometry.Offset, paint TextPaint)
}

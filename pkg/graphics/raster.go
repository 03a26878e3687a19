package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-futura/futura/pkg/geometry"
)

// RasterCanvas draws onto an in-memory RGBA image. It backs headless
// snapshots; text uses a single fixed face regardless of TextPaint.Size.
type RasterCanvas struct {
	img  *image.RGBA
	face font.Face
}

// NewRasterCanvas returns a canvas of the given size filled with background.
// A nil face uses basicfont.Face7x13.
func NewRasterCanvas(width, height int, background Color, face font.Face) *RasterCanvas {
	if face == nil {
		face = basicfont.Face7x13
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	return &RasterCanvas{img: img, face: face}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) DrawRect(rect geometry.Rect, paint Paint) {
	if paint.Stroke {
		w := max(paint.StrokeWidth, 1)
		c.fill(geometry.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Right, Bottom: rect.Top + w}, paint.Color)
		c.fill(geometry.Rect{Left: rect.Left, Top: rect.Bottom - w, Right: rect.Right, Bottom: rect.Bottom}, paint.Color)
		c.fill(geometry.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Left + w, Bottom: rect.Bottom}, paint.Color)
		c.fill(geometry.Rect{Left: rect.Right - w, Top: rect.Top, Right: rect.Right, Bottom: rect.Bottom}, paint.Color)
		return
	}
	c.fill(rect, paint.Color)
}

func (c *RasterCanvas) DrawCircle(center geometry.Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	const segments = 48
	z := c.rasterizer()
	polygon := func(r float64) {
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			x, y := float32(center.X+r*math.Cos(a)), float32(center.Y+r*math.Sin(a))
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
	}
	polygon(radius)
	if paint.Stroke {
		// Inner contour wound the other way punches the hole.
		inner := radius - max(paint.StrokeWidth, 1)
		if inner > 0 {
			for i := segments; i >= 0; i-- {
				a := 2 * math.Pi * float64(i) / segments
				x, y := float32(center.X+inner*math.Cos(a)), float32(center.Y+inner*math.Sin(a))
				if i == segments {
					z.MoveTo(x, y)
				} else {
					z.LineTo(x, y)
				}
			}
			z.ClosePath()
		}
	}
	c.paint(z, paint.Color)
}

func (c *RasterCanvas) DrawLine(start, end geometry.Offset, paint Paint) {
	d := end.Sub(start)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	half := max(paint.StrokeWidth, 1) / 2
	nx, ny := -d.Y/length*half, d.X/length*half
	z := c.rasterizer()
	z.MoveTo(float32(start.X+nx), float32(start.Y+ny))
	z.LineTo(float32(end.X+nx), float32(end.Y+ny))
	z.LineTo(float32(end.X-nx), float32(end.Y-ny))
	z.LineTo(float32(start.X-nx), float32(start.Y-ny))
	z.ClosePath()
	c.paint(z, paint.Color)
}

func (c *RasterCanvas) DrawText(text string, origin geometry.Offset, paint TextPaint) {
	ascent := c.face.Metrics().Ascent
	dot := fixed.Point26_6{
		X: fixed.Int26_6(origin.X * 64),
		Y: fixed.Int26_6(origin.Y*64) + ascent,
	}
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(paint.Color.NRGBA()), Face: c.face, Dot: dot}
	advance := d.MeasureString(text)
	d.DrawString(text)
	if paint.Bold {
		d.Dot = fixed.Point26_6{X: dot.X + fixed.I(1), Y: dot.Y}
		d.DrawString(text)
	}
	if paint.Underline {
		y := float64(dot.Y)/64 + 1
		c.fill(geometry.Rect{Left: origin.X, Top: y, Right: origin.X + float64(advance)/64, Bottom: y + 1}, paint.Color)
	}
}

func (c *RasterCanvas) fill(rect geometry.Rect, col Color) {
	r := image.Rect(
		int(math.Floor(rect.Left)), int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)), int(math.Ceil(rect.Bottom)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
}

func (c *RasterCanvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (c *RasterCanvas) paint(z *vector.Rasterizer, col Color) {
	z.DrawOp = draw.Over
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

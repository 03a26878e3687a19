package graphics

import "github.com/go-futura/futura/pkg/geometry"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpRect OpKind = iota
	OpCircle
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing operation. Only the fields relevant to Kind
// are set.
type Op struct {
	Kind      OpKind
	Rect      geometry.Rect
	Start     geometry.Offset
	End       geometry.Offset
	Radius    float64
	Text      string
	Paint     Paint
	TextPaint TextPaint
}

func (op Op) execute(c Canvas) {
	switch op.Kind {
	case OpRect:
		c.DrawRect(op.Rect, op.Paint)
	case OpCircle:
		c.DrawCircle(op.Start, op.Radius, op.Paint)
	case OpLine:
		c.DrawLine(op.Start, op.End, op.Paint)
	case OpText:
		c.DrawText(op.Text, op.Start, op.TextPaint)
	}
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops []Op
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []Op {
	return append([]Op(nil), d.ops...)
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Texts returns the text of every text operation in recording order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording() Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) DrawRect(rect geometry.Rect, paint Paint) {
	c.recorder.append(Op{Kind: OpRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center geometry.Offset, radius float64, paint Paint) {
	c.recorder.append(Op{Kind: OpCircle, Start: center, Radius: radius, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end geometry.Offset, paint Paint) {
	c.recorder.append(Op{Kind: OpLine, Start: start, End: end, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, origin geometry.Offset, paint TextPaint) {
	c.recorder.append(Op{Kind: OpText, Start: origin, Text: text, TextPaint: paint})
}

package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-futura/futura/pkg/graphics"
)

// TestingT is the subset of testing.TB snapshots need.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable record of the drawing operations of a widget.
type Snapshot struct {
	DisplayOps []DisplayOp `json:"displayOps"`
}

// DisplayOp is one drawing operation with coordinates rounded to two
// decimals.
type DisplayOp struct {
	Op     string     `json:"op"`
	Rect   [4]float64 `json:"rect,omitempty"`
	Points [4]float64 `json:"points,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Text   string     `json:"text,omitempty"`
	Color  string     `json:"color"`
	Stroke float64    `json:"stroke,omitempty"`
	Style  string     `json:"style,omitempty"`
}

// CaptureSnapshot records d and serializes its operations.
func CaptureSnapshot(d Drawer) *Snapshot {
	var rec graphics.PictureRecorder
	d.Draw(rec.BeginRecording())
	return SnapshotOf(rec.EndRecording())
}

// SnapshotOf serializes a display list.
func SnapshotOf(dl *graphics.DisplayList) *Snapshot {
	snap := &Snapshot{DisplayOps: []DisplayOp{}}
	for _, op := range dl.Ops() {
		out := DisplayOp{Op: op.Kind.String()}
		switch op.Kind {
		case graphics.OpRect:
			out.Rect = [4]float64{round2(op.Rect.Left), round2(op.Rect.Top), round2(op.Rect.Right), round2(op.Rect.Bottom)}
		case graphics.OpCircle:
			out.Points = [4]float64{round2(op.Start.X), round2(op.Start.Y)}
			out.Radius = round2(op.Radius)
		case graphics.OpLine:
			out.Points = [4]float64{round2(op.Start.X), round2(op.Start.Y), round2(op.End.X), round2(op.End.Y)}
		case graphics.OpText:
			out.Points = [4]float64{round2(op.Start.X), round2(op.Start.Y)}
			out.Text = op.Text
			out.Color = op.TextPaint.Color.String()
			out.Style = textStyle(op.TextPaint)
			snap.DisplayOps = append(snap.DisplayOps, out)
			continue
		}
		out.Color = op.Paint.Color.String()
		if op.Paint.Stroke {
			out.Stroke = round2(max(op.Paint.StrokeWidth, 1))
		}
		snap.DisplayOps = append(snap.DisplayOps, out)
	}
	return snap
}

// MatchesFile compares the snapshot with the one stored at path. With
// FUTURA_UPDATE_SNAPSHOTS=1 the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("FUTURA_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: FUTURA_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: FUTURA_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes the snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a readable difference from other, or "" when equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

func textStyle(p graphics.TextPaint) string {
	var b bytes.Buffer
	if p.Bold {
		b.WriteString("b")
	}
	if p.Italic {
		b.WriteString("i")
	}
	if p.Underline {
		b.WriteString("u")
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package testing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
)

type box struct{ text string }

func (b box) Draw(c graphics.Canvas) {
	c.DrawRect(geometry.RectFromLTWH(0, 0, 10.004, 5), graphics.StrokePaint(graphics.ColorRed, 2))
	c.DrawText(b.text, geometry.Offset{X: 1, Y: 1}, graphics.TextPaint{Color: graphics.ColorBlack, Bold: true})
}

func TestCaptureSnapshot(t *testing.T) {
	snap := CaptureSnapshot(box{text: "hi"})
	if len(snap.DisplayOps) != 2 {
		t.Fatalf("ops = %d, want 2", len(snap.DisplayOps))
	}
	rect := snap.DisplayOps[0]
	if rect.Op != "rect" || rect.Rect[2] != 10 || rect.Stroke != 2 || rect.Color != graphics.ColorRed.String() {
		t.Errorf("rect op = %+v", rect)
	}
	text := snap.DisplayOps[1]
	if text.Op != "text" || text.Text != "hi" || text.Style != "b" {
		t.Errorf("text op = %+v", text)
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	t.Setenv("FUTURA_UPDATE_SNAPSHOTS", "")
	path := filepath.Join(t.TempDir(), "snap", "box.json")

	snap := CaptureSnapshot(box{text: "hi"})
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	snap.MatchesFile(t, path)

	other := CaptureSnapshot(box{text: "ho"})
	diff := other.Diff(snap)
	if diff == "" || !strings.Contains(diff, "ho") {
		t.Errorf("Diff = %q, want a difference mentioning the new text", diff)
	}
}

type fakeT struct {
	testing.TB
	failed bool
}

func (f *fakeT) Fatalf(string, ...any) { f.failed = true }
func (f *fakeT) Errorf(string, ...any) { f.failed = true }

func TestSnapshotMissingFile(t *testing.T) {
	t.Setenv("FUTURA_UPDATE_SNAPSHOTS", "")
	ft := &fakeT{TB: t}
	CaptureSnapshot(box{}).MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	if !ft.failed {
		t.Error("missing snapshot did not fail")
	}
}

package testing

import (
	"testing"
	"time"

	"github.com/go-futura/futura/pkg/animation"
	"github.com/go-futura/futura/pkg/graphics"
)

// FrameInterval is how far Pump advances the clock.
const FrameInterval = 16 * time.Millisecond

// Ticker is anything with a per-frame checkpoint.
type Ticker interface {
	Tick(now time.Time)
}

// Drawer is anything that renders onto a canvas.
type Drawer interface {
	Draw(c graphics.Canvas)
}

// Tester drives widgets frame by frame against a fake clock and a
// recording canvas.
type Tester struct {
	clock    *FakeClock
	frames   int
	recorder graphics.PictureRecorder
}

// NewTester installs a fake clock for the duration of the test.
func NewTester(t testing.TB) *Tester {
	t.Helper()
	return &Tester{clock: InstallClock(t)}
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Frames returns how many frames were pumped.
func (t *Tester) Frames() int {
	return t.frames
}

// Pump advances one frame: the clock moves by FrameInterval, active tickers
// step, then every widget reaches its checkpoint.
func (t *Tester) Pump(widgets ...Ticker) {
	t.clock.Advance(FrameInterval)
	t.frames++
	animation.StepTickers()
	now := t.clock.Now()
	for _, w := range widgets {
		w.Tick(now)
	}
}

// PumpN pumps n frames.
func (t *Tester) PumpN(n int, widgets ...Ticker) {
	for i := 0; i < n; i++ {
		t.Pump(widgets...)
	}
}

// PumpFor pumps frames until d has elapsed on the fake clock.
func (t *Tester) PumpFor(d time.Duration, widgets ...Ticker) {
	end := t.clock.Now().Add(d)
	for t.clock.Now().Before(end) {
		t.Pump(widgets...)
	}
}

// Paint records the drawing operations of d.
func (t *Tester) Paint(d Drawer) *graphics.DisplayList {
	d.Draw(t.recorder.BeginRecording())
	return t.recorder.EndRecording()
}

package input

import (
	"time"

	"github.com/go-futura/futura/pkg/geometry"
)

// Default click classification parameters.
const (
	DefaultClickWindow = 500 * time.Millisecond
	DefaultClickSlop   = 4.0
)

// ClickCounter classifies presses as single, double or triple clicks. A
// press continues the sequence when it lands within Window of the previous
// press and within Slop pixels of it. A fourth press starts over.
type ClickCounter struct {
	Window time.Duration
	Slop   float64

	count int
	last  time.Time
	pos   geometry.Offset
}

// NewClickCounter returns a counter. Non-positive values use the defaults.
func NewClickCounter(window time.Duration, slop float64) *ClickCounter {
	if window <= 0 {
		window = DefaultClickWindow
	}
	if slop <= 0 {
		slop = DefaultClickSlop
	}
	return &ClickCounter{Window: window, Slop: slop}
}

// Click records a press and returns its count: 1, 2 or 3.
func (c *ClickCounter) Click(pos geometry.Offset, now time.Time) int {
	if c.count > 0 && c.count < 3 &&
		now.Sub(c.last) < c.Window &&
		pos.Distance(c.pos) <= c.Slop {
		c.count++
	} else {
		c.count = 1
	}
	c.last = now
	c.pos = pos
	return c.count
}

// Count returns the count of the last press, or 0 after Reset.
func (c *ClickCounter) Count() int {
	return c.count
}

// Reset forgets the previous press.
func (c *ClickCounter) Reset() {
	c.count = 0
	c.last = time.Time{}
}

package textedit

import (
	"time"

	"github.com/go-futura/futura/pkg/document"
	"github.com/go-futura/futura/pkg/geometry"
)

// DefaultBlinkPeriod is the time between two caret visibility toggles.
const DefaultBlinkPeriod = 500 * time.Millisecond

// Caret tracks the blink state of the insertion point. The caret index
// itself lives in the Engine.
type Caret struct {
	period   time.Duration
	disabled bool
	focused  bool
	visible  bool
	last     time.Time
	notify   func(Event)
}

// NewCaret returns a visible, unfocused caret. A non-positive period uses
// DefaultBlinkPeriod.
func NewCaret(period time.Duration) *Caret {
	if period <= 0 {
		period = DefaultBlinkPeriod
	}
	return &Caret{period: period, visible: true}
}

// Period returns the blink period.
func (c *Caret) Period() time.Duration {
	return c.period
}

// SetBlinkEnabled turns blinking on or off. A caret that does not blink is
// always visible.
func (c *Caret) SetBlinkEnabled(enabled bool) {
	c.disabled = !enabled
	if c.disabled {
		c.visible = true
	}
}

// BlinkEnabled reports whether the caret blinks.
func (c *Caret) BlinkEnabled() bool {
	return !c.disabled
}

// SetFocused starts or stops blinking. Gaining focus shows the caret and
// restarts the period.
func (c *Caret) SetFocused(focused bool, now time.Time) {
	if c.focused == focused {
		return
	}
	c.focused = focused
	c.Reset(now)
}

// Focused reports whether the caret is active.
func (c *Caret) Focused() bool {
	return c.focused
}

// Visible reports whether the caret should be drawn in its blink cycle.
func (c *Caret) Visible() bool {
	return c.disabled || c.visible
}

// Reset shows the caret and restarts the blink period.
func (c *Caret) Reset(now time.Time) {
	c.last = now
	if !c.visible {
		c.visible = true
		c.emit()
	}
}

// Tick toggles visibility once a full period has elapsed since the last
// toggle or reset. It reports whether visibility changed. Unfocused or
// non-blinking carets never toggle.
func (c *Caret) Tick(now time.Time) bool {
	if c.disabled || !c.focused {
		return false
	}
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) < c.period {
		return false
	}
	c.visible = !c.visible
	c.last = now
	c.emit()
	return true
}

// Rect returns the caret bar for index in document coordinates.
func (c *Caret) Rect(doc document.StyledDocument, index int) geometry.Rect {
	b := doc.BoundsOf(index, index)[0]
	return geometry.RectFromLTWH(b.Left, b.Top, 1, b.Height())
}

func (c *Caret) emit() {
	if c.notify != nil {
		c.notify(Blink{Visible: c.visible})
	}
}

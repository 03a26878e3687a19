// Package animation provides the frame-driven timing primitives used by
// futura widgets.
//
// Widgets never start goroutines or timers. Instead a [Ticker] registers a
// callback that the host loop advances once per frame through
// [StepTickers]; the caret blink of an Entry is the main user. Time is read
// from a replaceable [Clock] so tests can step frames deterministically.
//
//	t := animation.NewTicker(func(elapsed time.Duration) {
//	    caret.Tick(animation.Now())
//	})
//	t.Start()
//	// once per frame, from the host loop:
//	animation.StepTickers()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
	tickerOrder   []*Ticker
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerOrder = append(tickerOrder, t)
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	for i, other := range tickerOrder {
		if other == t {
			tickerOrder = append(tickerOrder[:i], tickerOrder[i+1:]...)
			break
		}
	}
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers in the order they were started.
// The host calls it once per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(tickerOrder) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, len(tickerOrder))
	copy(tickers, tickerOrder)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

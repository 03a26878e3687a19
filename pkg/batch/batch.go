// Package batch gates expensive relayouts behind a per-widget update rate.
//
// Widgets call Invalidate whenever a property changes and Tick once per
// frame. The relayout runs only on ticks where the frame counter is a
// multiple of the rate, so a burst of writes between two checkpoints costs
// a single relayout.
package batch

// Updater counts frames and runs a relayout function at the configured rate.
// The zero value is not usable; call New.
type Updater struct {
	rate     int
	counter  int
	pending  bool
	depth    int
	relayout func()
	redraws  int
}

// New returns an Updater that calls relayout at most once every rate ticks.
// A rate of zero or less redraws on every tick that has pending changes.
func New(rate int, relayout func()) *Updater {
	if relayout == nil {
		relayout = func() {}
	}
	return &Updater{rate: rate, relayout: relayout}
}

// Rate returns the configured update rate.
func (u *Updater) Rate() int {
	return u.rate
}

// SetRate changes the update rate. The frame counter is kept.
func (u *Updater) SetRate(rate int) {
	u.rate = rate
}

// Invalidate marks pending work. It never relayouts by itself.
func (u *Updater) Invalidate() {
	u.pending = true
}

// Pending reports whether a relayout is owed.
func (u *Updater) Pending() bool {
	return u.pending
}

// Begin opens a bracket around a burst of property writes. Ticks inside a
// bracket never relayout. Brackets nest.
func (u *Updater) Begin() {
	u.depth++
}

// End closes a bracket opened by Begin.
func (u *Updater) End() {
	if u.depth > 0 {
		u.depth--
	}
}

// Batch runs fn inside a Begin/End bracket.
func (u *Updater) Batch(fn func()) {
	u.Begin()
	defer u.End()
	fn()
}

// Tick advances the frame counter and relayouts when work is pending and
// the counter has reached a multiple of the rate. It reports whether a
// relayout ran.
func (u *Updater) Tick() bool {
	u.counter++
	if !u.pending || u.depth > 0 {
		return false
	}
	rate := u.rate
	if rate < 1 {
		rate = 1
	}
	if u.counter%rate != 0 {
		return false
	}
	u.run()
	return true
}

// ForceUpdate relayouts immediately regardless of the counter.
func (u *Updater) ForceUpdate() {
	u.run()
}

// Counter returns the number of ticks seen.
func (u *Updater) Counter() int {
	return u.counter
}

// Redraws returns how many relayouts have run.
func (u *Updater) Redraws() int {
	return u.redraws
}

func (u *Updater) run() {
	u.pending = false
	u.redraws++
	u.relayout()
}

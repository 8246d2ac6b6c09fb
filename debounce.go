package celest

import "time"

// Debouncer collapses bursts of calls into one callback. Each Trigger cancels
// the pending timer and schedules a fresh one; the callback runs only after a
// full quiet period.
type Debouncer struct {
	sched   *Scheduler
	delay   time.Duration
	fn      func()
	pending *Timer
}

// NewDebouncer creates a debouncer that runs fn once delay has passed on
// sched without another Trigger.
func NewDebouncer(sched *Scheduler, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{sched: sched, delay: delay, fn: fn}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.pending.Stop()
	d.pending = d.sched.After(d.delay, d.fire)
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	d.pending.Stop()
	d.pending = nil
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending.Pending()
}

func (d *Debouncer) fire() {
	d.pending = nil
	d.fn()
}

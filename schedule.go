package celest

import (
	"sort"
	"time"
)

// Timer is a callback scheduled on a Scheduler. It fires at most once.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running; false means it already fired or was stopped earlier.
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.stopped
}

// Scheduler is a virtual clock driven by the game loop. Callbacks run on the
// goroutine that calls Advance; celest is single-threaded and never starts
// goroutines of its own.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
	due    []*Timer // reused buffer for timers firing in one Advance
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed on the virtual clock.
// A non-positive d fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Len returns the number of timers still pending.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and fires every timer that came due,
// in due-time order with ties broken by scheduling order. While a callback
// runs, Now reports that timer's due time, so timers it schedules are
// measured from there and fire in the same call if they fall within dt.
// The clock reads the end of the frame once Advance returns.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now
	if dt > 0 {
		target += dt
	}
	for {
		s.due = s.due[:0]
		live := s.timers[:0]
		for _, t := range s.timers {
			if !t.Pending() {
				continue
			}
			live = append(live, t)
			if t.due <= target {
				s.due = append(s.due, t)
			}
		}
		for i := len(live); i < len(s.timers); i++ {
			s.timers[i] = nil
		}
		s.timers = live
		if len(s.due) == 0 {
			break
		}
		sort.Slice(s.due, func(i, j int) bool {
			if s.due[i].due != s.due[j].due {
				return s.due[i].due < s.due[j].due
			}
			return s.due[i].seq < s.due[j].seq
		})
		// Fire only the earliest; its callback may schedule something due
		// before the next one.
		t := s.due[0]
		if t.due > s.now {
			s.now = t.due
		}
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
	}
	s.now = target
}

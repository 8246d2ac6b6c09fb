package celest

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a single float64 property from its value at creation to a
// target. Progress comes from a gween tween running 0→1 through the easing
// function; the property itself is interpolated in float64 and snapped to the
// exact target on the final frame, so chained tweens never accumulate float32
// error.
//
// A Tween is a future-like unit: OnComplete runs exactly once when it
// finishes, never when it is cancelled.
type Tween struct {
	prop     *float64
	from, to float64
	progress *gween.Tween
	duration time.Duration

	// OnComplete is called once, on the frame the tween reaches its target.
	OnComplete func()

	done      bool
	cancelled bool
}

// To creates a tween that moves *prop to target over d.
func To(prop *float64, target float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return FromTo(prop, *prop, target, d, fn)
}

// By creates a tween that moves *prop by delta relative to its current value.
func By(prop *float64, delta float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return FromTo(prop, *prop, *prop+delta, d, fn)
}

// FromTo writes from into *prop immediately and animates it to target over d.
func FromTo(prop *float64, from, target float64, d time.Duration, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	*prop = from
	return &Tween{
		prop:     prop,
		from:     from,
		to:       target,
		duration: d,
		progress: gween.New(0, 1, seconds(d), fn),
	}
}

// Target returns the value the tween ends on.
func (t *Tween) Target() float64 { return t.to }

// Duration returns the total tween duration.
func (t *Tween) Duration() time.Duration { return t.duration }

// Done reports whether the tween finished or was cancelled.
func (t *Tween) Done() bool { return t.done || t.cancelled }

// Cancel stops the tween where it is. OnComplete will not run.
func (t *Tween) Cancel() {
	if !t.done {
		t.cancelled = true
	}
}

// Update advances the tween by dt and writes the interpolated value.
func (t *Tween) Update(dt time.Duration) {
	if t.Done() {
		return
	}
	if t.duration <= 0 {
		t.finish()
		return
	}
	p, finished := t.progress.Update(seconds(dt))
	if finished {
		t.finish()
		return
	}
	*t.prop = t.from + (t.to-t.from)*float64(p)
}

func (t *Tween) finish() {
	*t.prop = t.to
	t.done = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// Timeline owns the tweens and timers of one scene and advances them from the
// game loop. Tweens update in start order, so when two tweens drive the same
// property the later one wins each frame.
type Timeline struct {
	sched  *Scheduler
	tweens []*Tween
	adding []*Tween
	inTick bool
}

// NewTimeline creates an empty timeline with its own scheduler.
func NewTimeline() *Timeline {
	return &Timeline{sched: NewScheduler()}
}

// Scheduler returns the timeline's clock.
func (tl *Timeline) Scheduler() *Scheduler {
	return tl.sched
}

// Play registers t and returns it. Tweens started from inside Update (timer
// or completion callbacks) begin advancing on the next Update.
func (tl *Timeline) Play(t *Tween) *Tween {
	if tl.inTick {
		tl.adding = append(tl.adding, t)
	} else {
		tl.tweens = append(tl.tweens, t)
	}
	return t
}

// After schedules fn on the timeline's clock.
func (tl *Timeline) After(d time.Duration, fn func()) *Timer {
	return tl.sched.After(d, fn)
}

// Active returns the number of tweens still running.
func (tl *Timeline) Active() int {
	n := 0
	for _, t := range tl.tweens {
		if !t.Done() {
			n++
		}
	}
	for _, t := range tl.adding {
		if !t.Done() {
			n++
		}
	}
	return n
}

// Update advances the clock and every running tween by dt.
func (tl *Timeline) Update(dt time.Duration) {
	tl.inTick = true
	tl.sched.Advance(dt)
	for _, t := range tl.tweens {
		t.Update(dt)
	}
	tl.inTick = false

	live := tl.tweens[:0]
	for _, t := range tl.tweens {
		if !t.Done() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(tl.tweens); i++ {
		tl.tweens[i] = nil
	}
	tl.tweens = append(live, tl.adding...)
	tl.adding = tl.adding[:0]
}

// Easing resolves an easing name used in configuration files to a gween
// easing function.
func Easing(name string) (ease.TweenFunc, error) {
	switch name {
	case "", "none", "linear":
		return ease.Linear, nil
	case "expo.in":
		return ease.InExpo, nil
	case "power1.in":
		return ease.InQuad, nil
	case "power1.out":
		return ease.OutQuad, nil
	case "power1.inOut":
		return ease.InOutQuad, nil
	case "power2.in":
		return ease.InCubic, nil
	case "power2.out":
		return ease.OutCubic, nil
	case "power2.inOut":
		return ease.InOutCubic, nil
	case "sine.inOut":
		return ease.InOutSine, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

package celest

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTweenReachesTargetExactly(t *testing.T) {
	v := 1.0
	target := 1 + RevolutionStep
	tw := To(&v, target, time.Second, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	tw.Update(500 * time.Millisecond)
	tw.Update(500 * time.Millisecond)

	if !tw.Done() {
		t.Fatal("expected Done after full duration")
	}
	if v != target {
		t.Errorf("v = %v, want exactly %v", v, target)
	}
}

func TestTweenInterpolates(t *testing.T) {
	v := 0.0
	tw := To(&v, 10, time.Second, ease.Linear)

	tw.Update(500 * time.Millisecond)
	if tw.Done() {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(v-5) > 0.05 {
		t.Errorf("v = %f, want ~5 at halfway", v)
	}
}

func TestTweenBy(t *testing.T) {
	v := -2.0
	tw := By(&v, -1, time.Second, ease.Linear)
	tw.Update(time.Second)
	if v != -3 {
		t.Errorf("v = %v, want -3", v)
	}
}

func TestTweenFromToWritesStart(t *testing.T) {
	v := 0.7
	FromTo(&v, 0, 1, time.Second, ease.InExpo)
	if v != 0 {
		t.Errorf("v = %v, want 0 immediately after FromTo", v)
	}
}

func TestTweenOnCompleteOnce(t *testing.T) {
	v := 0.0
	calls := 0
	tw := To(&v, 1, 100*time.Millisecond, nil)
	tw.OnComplete = func() { calls++ }

	for i := 0; i < 10; i++ {
		tw.Update(50 * time.Millisecond)
	}
	if calls != 1 {
		t.Errorf("OnComplete calls = %d, want 1", calls)
	}
}

func TestTweenCancel(t *testing.T) {
	v := 0.0
	completed := false
	tw := To(&v, 1, time.Second, ease.Linear)
	tw.OnComplete = func() { completed = true }

	tw.Update(250 * time.Millisecond)
	tw.Cancel()
	held := v
	tw.Update(time.Second)

	if !tw.Done() {
		t.Error("cancelled tween should report Done")
	}
	if completed {
		t.Error("OnComplete must not run after Cancel")
	}
	if v != held {
		t.Errorf("v moved after Cancel: %v -> %v", held, v)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	v := 0.0
	tw := To(&v, 3, 0, ease.Linear)
	tw.Update(0)
	if !tw.Done() || v != 3 {
		t.Errorf("zero duration: done=%v v=%v, want done at 3", tw.Done(), v)
	}
}

func TestTimelineLaterTweenWins(t *testing.T) {
	tl := NewTimeline()
	v := -2.0
	tl.Play(By(&v, -1, time.Second, ease.Linear))
	tl.Play(To(&v, 0, time.Second, ease.InOutCubic))

	tl.Update(time.Second)
	if v != 0 {
		t.Errorf("v = %v, want 0 (later tween wins)", v)
	}
	if tl.Active() != 0 {
		t.Errorf("Active = %d, want 0", tl.Active())
	}
}

func TestTimelineChainedTweenStartsNextFrame(t *testing.T) {
	tl := NewTimeline()
	v := 0.0
	first := To(&v, 1, 100*time.Millisecond, ease.Linear)
	first.OnComplete = func() {
		tl.Play(To(&v, 2, 100*time.Millisecond, ease.Linear))
	}
	tl.Play(first)

	tl.Update(100 * time.Millisecond)
	if v != 1 {
		t.Fatalf("v = %v, want 1 after first tween", v)
	}
	if tl.Active() != 1 {
		t.Fatalf("Active = %d, want 1 chained tween", tl.Active())
	}
	tl.Update(100 * time.Millisecond)
	if v != 2 {
		t.Errorf("v = %v, want 2 after chained tween", v)
	}
}

func TestTimelineTimerStartsTween(t *testing.T) {
	tl := NewTimeline()
	v := 0.0
	tl.After(50*time.Millisecond, func() {
		tl.Play(To(&v, 1, 100*time.Millisecond, ease.Linear))
	})

	tl.Update(50 * time.Millisecond)
	if v != 0 {
		t.Fatalf("tween started from a timer should not advance in the same frame, v = %v", v)
	}
	tl.Update(100 * time.Millisecond)
	if v != 1 {
		t.Errorf("v = %v, want 1", v)
	}
}

func TestEasingNames(t *testing.T) {
	for _, name := range []string{"", "none", "linear", "expo.in", "power1.in", "power1.out",
		"power1.inOut", "power2.in", "power2.out", "power2.inOut", "sine.inOut"} {
		if _, err := Easing(name); err != nil {
			t.Errorf("Easing(%q): %v", name, err)
		}
	}
	if _, err := Easing("bounce.sideways"); err == nil {
		t.Error("expected error for unknown easing")
	}
}

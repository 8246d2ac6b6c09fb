package scene

import (
	"testing"
	"time"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(RunConfig{Title: "test", Width: 1280, Height: 720}, GameOptions{Seed: 3})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func steps(t *testing.T, g *Game, d time.Duration) {
	t.Helper()
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		if err := g.step(frame, frameInput{}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewGameRejectsBadSize(t *testing.T) {
	if _, err := NewGame(RunConfig{}, GameOptions{}); err == nil {
		t.Error("expected error for zero window size")
	}
}

func TestGameRoundTrip(t *testing.T) {
	g := newTestGame(t)
	steps(t, g, frame)
	if g.Landing() == nil {
		t.Fatal("game should start on the landing page")
	}

	x, y, ok := g.PlanetAt(2)
	if !ok {
		t.Fatal("planet 2 should be on screen")
	}
	_ = g.step(frame, frameInput{x: x, y: y, pressed: true})
	_ = g.step(frame, frameInput{x: x, y: y})
	steps(t, g, 2*time.Second)

	if g.Landing() != nil {
		t.Fatal("selection should switch to a destination page")
	}
	dest, ok := g.page.(*DestinationPage)
	if !ok {
		t.Fatalf("page = %T, want *DestinationPage", g.page)
	}
	if dest.Dest.Name != "Contact" {
		t.Errorf("destination = %q, want Contact", dest.Dest.Name)
	}
	if g.Store().Last() != dest.Dest.Name || dest.Visits != 1 {
		t.Errorf("store last = %q visits = %d, page = %q", g.Store().Last(), dest.Visits, dest.Dest.Name)
	}

	// Escape returns to a fresh landing page that highlights the visit.
	_ = g.step(frame, frameInput{back: true})
	landing := g.Landing()
	if landing == nil {
		t.Fatal("back should return to the landing page")
	}
	if landing.navbar.LastVisited != dest.Dest.Name {
		t.Errorf("navbar highlights %q, want %q", landing.navbar.LastVisited, dest.Dest.Name)
	}
	if landing.Sequencer().Locked() {
		t.Error("fresh landing page should be unlocked")
	}
}

func TestGameDestinationClickReturns(t *testing.T) {
	g := newTestGame(t)
	steps(t, g, frame)
	x, y, _ := g.PlanetAt(0)
	_ = g.step(frame, frameInput{x: x, y: y, pressed: true})
	_ = g.step(frame, frameInput{x: x, y: y})
	steps(t, g, 2*time.Second)
	if g.Landing() != nil {
		t.Fatal("expected destination page")
	}

	_ = g.step(frame, frameInput{x: 10, y: 10, pressed: true})
	_ = g.step(frame, frameInput{x: 10, y: 10})
	if g.Landing() == nil {
		t.Error("click on the destination page should go back")
	}
}

func TestGameInjectedInputDrivesRunner(t *testing.T) {
	g := newTestGame(t)
	r, err := LoadTestScript([]byte(`{"steps": [{"action": "wheel", "count": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(r)

	for i := 0; i < 5; i++ {
		r.step(g)
		in, ok := g.injector.pop()
		if !ok {
			in = frameInput{}
		}
		if err := g.step(frame, in); err != nil {
			t.Fatal(err)
		}
	}
	if !r.Done() {
		t.Error("runner should be done once injections drain")
	}
	steps(t, g, 3*time.Second)
	if st := g.Landing().Sequencer().State(); st.Steps != 1 {
		t.Errorf("steps = %d, want 1 from a debounced burst", st.Steps)
	}
}

package scene

import (
	"image"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"orbit", "orbit"},
		{"  ", "unlabeled"},
		{"step 1/3", "step_1_3"},
		{"v1.2-final", "v1.2-final"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	copy(img.Pix, []byte{
		64, 32, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	})
	unpremultiply(img)
	if got := img.Pix[0:4]; got[0] != 127 || got[1] != 63 || got[3] != 128 {
		t.Errorf("half-transparent pixel = %v", got)
	}
	if got := img.Pix[4:8]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("opaque pixel changed: %v", got)
	}
	if got := img.Pix[8:12]; got[3] != 0 {
		t.Errorf("clear pixel = %v", got)
	}
}

func TestShotFileName(t *testing.T) {
	tests := []struct {
		s    shot
		want string
	}{
		{shot{label: "after step", page: "landing", slot: 1}, "run_007_landing_slot1_after_step.png"},
		{shot{label: "", page: "contact", slot: -1}, "run_007_contact_unlabeled.png"},
	}
	for _, tt := range tests {
		if got := tt.s.fileName("run", 7); got != tt.want {
			t.Errorf("fileName = %q, want %q", got, tt.want)
		}
	}
}

func TestScreenshotTagsPage(t *testing.T) {
	g := newTestGame(t)
	steps(t, g, frame)
	g.Screenshot("start")

	x, y, _ := g.PlanetAt(2)
	_ = g.step(frame, frameInput{x: x, y: y, pressed: true})
	_ = g.step(frame, frameInput{x: x, y: y})
	steps(t, g, 2*time.Second)
	g.Screenshot("arrived")

	if len(g.shots) != 2 {
		t.Fatalf("queued %d shots, want 2", len(g.shots))
	}
	if s := g.shots[0]; s.page != "landing" || s.slot != 0 {
		t.Errorf("first shot = %+v, want landing slot 0", s)
	}
	if s := g.shots[1]; s.page != "contact" || s.slot != -1 {
		t.Errorf("second shot = %+v, want contact with no slot", s)
	}
}

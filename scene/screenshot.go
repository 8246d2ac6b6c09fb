package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// shot is a screenshot request tagged with what was on screen when it was
// made. slot is -1 away from the landing page.
type shot struct {
	label string
	page  string
	slot  int
	steps int
}

// fileName builds "<run>_<n>_<page>[_slot<k>]_<label>.png".
func (s shot) fileName(run string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s_%03d_%s", run, n, sanitizeLabel(s.page))
	if s.slot >= 0 {
		fmt.Fprintf(&b, "_slot%d", s.slot)
	}
	b.WriteByte('_')
	b.WriteString(sanitizeLabel(s.label))
	b.WriteString(".png")
	return b.String()
}

// Screenshot queues a labeled capture of the next drawn frame. The file name
// records the page and caption slot at the time of the call, so a script
// can be read back from the directory listing alone.
func (g *Game) Screenshot(label string) {
	s := shot{label: label, page: "landing", slot: -1}
	switch p := g.page.(type) {
	case *Landing:
		st := p.Sequencer().State()
		s.slot, s.steps = st.SlotIndex, st.Steps
	case *DestinationPage:
		s.page = strings.ToLower(p.Dest.Name)
	}
	g.shots = append(g.shots, s)
}

// flushScreenshots writes every queued shot from one capture of screen.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	dir := g.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[scene] screenshot: %v", err)
		return
	}
	if g.shotRun == "" {
		g.shotRun = time.Now().Format("20060102_150405")
	}

	data, err := encodeFrame(screen)
	if err != nil {
		log.Printf("[scene] screenshot: %v", err)
		return
	}
	for _, s := range g.shots {
		g.shotCount++
		path := filepath.Join(dir, s.fileName(g.shotRun, g.shotCount))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Printf("[scene] screenshot: %v", err)
			continue
		}
		if g.cfg.Debug {
			log.Printf("[celest] screenshot %s (steps=%d)", path, s.steps)
		}
	}
}

// encodeFrame reads screen back and encodes it as PNG.
func encodeFrame(screen *ebiten.Image) ([]byte, error) {
	r := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

// unpremultiply converts ReadPixels output, stored in img, to straight alpha.
func unpremultiply(img *image.NRGBA) {
	px := img.Pix
	for i := 0; i+3 < len(px); i += 4 {
		a := int(px[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			px[c] = uint8(min(int(px[c])*255/a, 255))
		}
	}
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', turns everything
// else into '_' and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.':
			return r
		}
		return '_'
	}, label)
}

package scene

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/celest"
)

// page is one screen of the site.
type page interface {
	Update(dt time.Duration, in frameInput) error
	Draw(screen *ebiten.Image)
}

// pageFadeIn is how long a destination page takes to appear.
const pageFadeIn = 600 * time.Millisecond

// DestinationPage is shown after a planet is selected. A click anywhere or
// Escape returns to the landing page.
type DestinationPage struct {
	Dest   celest.Destination
	Visits int

	width, height float64
	fonts         *Fonts
	timeline      *celest.Timeline
	pointer       pointerState
	alpha         float64
	onBack        func()
}

// NewDestinationPage creates the page for dest. onBack is called once when
// the user asks to leave.
func NewDestinationPage(dest celest.Destination, visits int, width, height int, fonts *Fonts, onBack func()) *DestinationPage {
	p := &DestinationPage{
		Dest:     dest,
		Visits:   visits,
		width:    float64(width),
		height:   float64(height),
		fonts:    fonts,
		timeline: celest.NewTimeline(),
		onBack:   onBack,
	}
	p.timeline.Play(celest.FromTo(&p.alpha, 0, 1, pageFadeIn, ease.OutQuad))
	return p
}

// Update advances the fade and handles the back gesture.
func (p *DestinationPage) Update(dt time.Duration, in frameInput) error {
	p.timeline.Update(dt)

	_, clicked := p.pointer.update(in.x, in.y, in.pressed, func(x, y float64) hitTarget {
		return hitTarget{kind: targetPage}
	})
	if (clicked || in.back) && p.onBack != nil {
		back := p.onBack
		p.onBack = nil
		back()
	}
	return nil
}

// Draw renders the destination title, its path and the visit count.
func (p *DestinationPage) Draw(screen *ebiten.Image) {
	screen.Fill(backdropColor)
	c := textColor.WithAlpha(p.alpha)
	cy := p.height / 2
	drawText(screen, p.fonts.Page, p.Dest.Name, p.width/2, cy-p.fonts.Page.LineHeight(), TextAlignCenter, c)
	drawText(screen, p.fonts.Nav, p.Dest.Path, p.width/2, cy+8, TextAlignCenter, c.WithAlpha(0.7))
	if p.Visits > 0 {
		drawText(screen, p.fonts.Subtitle, fmt.Sprintf("visit #%d", p.Visits), p.width/2, cy+40, TextAlignCenter, c.WithAlpha(0.5))
	}
	drawText(screen, p.fonts.Subtitle, "click or press Esc to return to orbit",
		p.width/2, p.height-48, TextAlignCenter, c.WithAlpha(0.6))
}

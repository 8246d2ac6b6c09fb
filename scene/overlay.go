package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/celest"
)

// Caption is one heading/subtitle pair in the caption strip.
type Caption struct {
	Heading  string
	Subtitle string
}

// DefaultCaptions pairs each planet with its heading.
var DefaultCaptions = []Caption{
	{"Work-Expo", "A world where each continent showcases a different skill-set"},
	{"Projectus", "A nebula of creations, each a unique stellar formation"},
	{"Contactious", "Initiate signal transmission to the Celest core"},
}

// CaptionStrip is a vertical stack of captions seen through a window one
// caption tall. offset is measured in window heights; -1 shows the second
// caption. opacity applies to subtitles only.
type CaptionStrip struct {
	Captions []Caption
	offset   float64
	opacity  float64
}

// NewCaptionStrip returns a strip showing the first caption.
func NewCaptionStrip(captions []Caption) *CaptionStrip {
	return &CaptionStrip{Captions: captions, opacity: 1}
}

// Offset returns the strip's scroll position in slots. Zero shows the first
// caption and each step moves it by -1.
func (c *CaptionStrip) Offset() *float64 { return &c.offset }

// Opacity returns the subtitle opacity in [0, 1].
func (c *CaptionStrip) Opacity() *float64 { return &c.opacity }

var _ celest.CaptionStrip = (*CaptionStrip)(nil)

// Layout fractions of the screen, after the page's HTML layout: the navbar
// takes the top 10%, the caption block the next 22%.
const (
	navbarFrac  = 0.10
	captionFrac = 0.22
	windowH     = 112.0
	dividerW    = 384.0
)

var (
	textColor      = Color{1, 1, 1, 1}
	highlightColor = Color{0.55, 0.78, 1, 1}
	introColor     = Color{0.82, 0.86, 0.94, 1}
	backdropColor  = color.RGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff}
)

// captionWindow returns the screen rectangle the strip is clipped to.
func captionWindow(w, h float64) image.Rectangle {
	top := h*navbarFrac + (h*captionFrac-windowH)/2
	return image.Rect(0, int(top), int(w), int(top+windowH))
}

// Draw renders the strip clipped to its window.
func (c *CaptionStrip) Draw(dst *ebiten.Image, fonts *Fonts, w, h float64) {
	win := captionWindow(w, h)
	clip, ok := dst.SubImage(win).(*ebiten.Image)
	if !ok {
		return
	}
	for i, entry := range c.Captions {
		top := float64(win.Min.Y) + (float64(i)+c.offset)*windowH
		if top+windowH < float64(win.Min.Y) || top > float64(win.Max.Y) {
			continue
		}
		drawText(clip, fonts.Heading, entry.Heading, w/2, top, TextAlignCenter, textColor)
		subY := top + windowH - fonts.Subtitle.LineHeight() - 4
		drawText(clip, fonts.Subtitle, entry.Subtitle, w/2, subY, TextAlignCenter, textColor.WithAlpha(c.opacity))
	}
}

// drawDivider draws the faded rule under the caption window.
func drawDivider(dst *ebiten.Image, w, h float64) {
	y := float32(h*(navbarFrac+captionFrac)) + 16
	const segments = 32
	seg := float32(dividerW / segments)
	x0 := float32(w/2 - dividerW/2)
	for i := 0; i < segments; i++ {
		// Transparent at both ends, white in the middle.
		t := (float64(i) + 0.5) / segments
		a := 1 - 2*abs(t-0.5)
		vector.StrokeLine(dst, x0+float32(i)*seg, y, x0+float32(i+1)*seg, y, 1,
			textColor.WithAlpha(a).RGBA(), false)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Navbar is the title and destination links across the top of the page.
// The last visited destination is highlighted.
type Navbar struct {
	Title       string
	Links       []celest.Destination
	LastVisited string
}

// Draw renders the navbar.
func (n *Navbar) Draw(dst *ebiten.Image, fonts *Fonts, w, h float64) {
	const padX = 24.0
	midY := h * navbarFrac / 2
	drawText(dst, fonts.Title, n.Title, padX, midY-fonts.Title.LineHeight()/2, TextAlignLeft, textColor)

	x := w - padX
	for i := len(n.Links) - 1; i >= 0; i-- {
		name := n.Links[i].Name
		lw, _ := fonts.Nav.MeasureString(name)
		y := midY - fonts.Nav.LineHeight()/2
		c := textColor
		if name == n.LastVisited {
			c = highlightColor
			vector.StrokeLine(dst, float32(x-lw), float32(y+fonts.Nav.LineHeight()),
				float32(x), float32(y+fonts.Nav.LineHeight()), 1.5, c.RGBA(), true)
		}
		drawText(dst, fonts.Nav, name, x, y, TextAlignRight, c)
		x -= lw + 24
	}
}

// introLines is the greeting shown once the ship has been clicked away.
const introLines = "Hi, I am Vinay Pratap\nA Frontend Developer with passion for Building"

// drawIntro renders the greeting near the bottom centre at the given alpha.
func drawIntro(dst *ebiten.Image, fonts *Fonts, w, h, alpha float64) {
	if alpha <= 0 {
		return
	}
	_, th := fonts.Intro.MeasureString(introLines)
	drawText(dst, fonts.Intro, introLines, w/2, h-32-th, TextAlignCenter, introColor.WithAlpha(alpha))
}

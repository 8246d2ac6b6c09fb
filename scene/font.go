package scene

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scene: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the pixel width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 usage.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// TextAlign controls horizontal placement relative to the draw point.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// drawText renders s with its top edge at y. Multi-line strings are laid out
// with the font's line height.
func drawText(dst *ebiten.Image, f *TTFFont, s string, x, y float64, align TextAlign, c Color) {
	if f == nil || s == "" || c.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = f.lh
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, s, f.face, op)
}

// Fonts is the set of faces used by the landing and destination pages.
type Fonts struct {
	Heading  *TTFFont
	Subtitle *TTFFont
	Nav      *TTFFont
	Title    *TTFFont
	Intro    *TTFFont
	Page     *TTFFont
}

// LoadFonts builds every face from the Go Regular font.
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("scene: load go regular: %w", err)
	}
	return &Fonts{
		Heading:  newTTFFont(source, 56),
		Subtitle: newTTFFont(source, 16),
		Nav:      newTTFFont(source, 18),
		Title:    newTTFFont(source, 22),
		Intro:    newTTFFont(source, 20),
		Page:     newTTFFont(source, 64),
	}, nil
}

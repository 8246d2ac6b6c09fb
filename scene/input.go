package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Hit shapes (screen space) ---

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitTriangle is a triangular hit area in either winding order.
type HitTriangle struct {
	X0, Y0, X1, Y1, X2, Y2 float64
}

// Contains reports whether (x, y) lies inside the triangle using the
// cross-product sign test.
func (t HitTriangle) Contains(x, y float64) bool {
	if (t.X1-t.X0)*(t.Y2-t.Y0)-(t.Y1-t.Y0)*(t.X2-t.X0) == 0 {
		return false
	}
	pts := [3][2]float64{{t.X0, t.Y0}, {t.X1, t.Y1}, {t.X2, t.Y2}}
	var positive, negative bool
	for i := 0; i < 3; i++ {
		x1, y1 := pts[i][0], pts[i][1]
		j := (i + 1) % 3
		x2, y2 := pts[j][0], pts[j][1]

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Click targets ---

type targetKind uint8

const (
	targetNone targetKind = iota
	targetPlanet
	targetShip
	targetPage
)

// hitTarget identifies what lies under the pointer. index is the planet
// index for targetPlanet.
type hitTarget struct {
	kind  targetKind
	index int
}

// --- Per-frame input ---

// frameInput is one frame's pointer, wheel and key state, read either from
// Ebitengine or from the inject queue.
type frameInput struct {
	x, y    float64
	pressed bool
	wheelX  float64
	wheelY  float64
	back    bool
}

// readInput samples the real mouse, touch, wheel and keyboard.
func readInput(touchIDs []ebiten.TouchID) (frameInput, []ebiten.TouchID) {
	var in frameInput
	mx, my := ebiten.CursorPosition()
	in.x, in.y = float64(mx), float64(my)
	in.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// The first touch acts as the pointer when the mouse is idle.
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if !in.pressed && len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		in.x, in.y = float64(tx), float64(ty)
		in.pressed = true
	}

	in.wheelX, in.wheelY = ebiten.Wheel()
	in.back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	return in, touchIDs
}

// pointerState is the press/release state machine for the single pointer.
// A click is a press and a release over the same target.
type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	hit    hitTarget
}

// update feeds one frame of pointer state. It returns the clicked target
// and true when this frame completes a click.
func (ps *pointerState) update(x, y float64, pressed bool, hitTest func(x, y float64) hitTarget) (hitTarget, bool) {
	defer func() {
		ps.lastX = x
		ps.lastY = y
	}()

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX = x
		ps.startY = y
		ps.hit = hitTest(x, y)
	case !pressed && ps.down:
		ps.down = false
		pressHit := ps.hit
		ps.hit = hitTarget{}
		if pressHit.kind == targetNone {
			return hitTarget{}, false
		}
		if target := hitTest(x, y); target == pressHit {
			return target, true
		}
	}
	return hitTarget{}, false
}

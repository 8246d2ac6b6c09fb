package scene

import "testing"

func TestHitShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape interface{ Contains(x, y float64) bool }
		x, y  float64
		want  bool
	}{
		{"rect inside", HitRect{0, 0, 10, 10}, 5, 5, true},
		{"rect outside", HitRect{0, 0, 10, 10}, 11, 5, false},
		{"circle inside", HitCircle{0, 0, 5}, 3, 3, true},
		{"circle outside", HitCircle{0, 0, 5}, 4, 4, false},
		{"triangle inside", HitTriangle{0, 0, 10, 0, 0, 10}, 2, 2, true},
		{"triangle outside", HitTriangle{0, 0, 10, 0, 0, 10}, 8, 8, false},
		{"triangle reversed winding", HitTriangle{0, 0, 0, 10, 10, 0}, 2, 2, true},
		{"degenerate triangle", HitTriangle{5, 5, 5, 5, 5, 5}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// leftHalf reports a planet on the left half of a 100px wide screen.
func leftHalf(x, _ float64) hitTarget {
	if x < 50 {
		return hitTarget{kind: targetPlanet, index: 1}
	}
	return hitTarget{}
}

func TestPointerClickSameTarget(t *testing.T) {
	var ps pointerState
	if _, ok := ps.update(10, 10, true, leftHalf); ok {
		t.Fatal("press alone should not click")
	}
	target, ok := ps.update(12, 10, false, leftHalf)
	if !ok {
		t.Fatal("release over the same target should click")
	}
	if target.kind != targetPlanet || target.index != 1 {
		t.Errorf("target = %+v", target)
	}
}

func TestPointerNoClickWhenReleasedElsewhere(t *testing.T) {
	var ps pointerState
	ps.update(10, 10, true, leftHalf)
	if _, ok := ps.update(80, 10, false, leftHalf); ok {
		t.Error("release off the pressed target should not click")
	}
}

func TestPointerNoClickOnEmptySpace(t *testing.T) {
	var ps pointerState
	ps.update(80, 10, true, leftHalf)
	if _, ok := ps.update(80, 10, false, leftHalf); ok {
		t.Error("press and release on nothing should not click")
	}
}

func TestPointerHeldDoesNotRepeat(t *testing.T) {
	var ps pointerState
	clicks := 0
	for i := 0; i < 5; i++ {
		if _, ok := ps.update(10, 10, true, leftHalf); ok {
			clicks++
		}
	}
	if _, ok := ps.update(10, 10, false, leftHalf); ok {
		clicks++
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

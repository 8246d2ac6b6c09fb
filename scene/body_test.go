package scene

import (
	"math"
	"math/rand/v2"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestBodyWorldTransform(t *testing.T) {
	parent := NewBody("parent", BodyGroup)
	parent.Position = Vec3{1, 2, 3}
	parent.Scale = 2
	child := NewBody("child", BodyGroup)
	child.Position = Vec3{1, 0, 0}
	parent.AddChild(child)

	got := child.World(Vec3{})
	if !near(got.X, 3) || !near(got.Y, 2) || !near(got.Z, 3) {
		t.Errorf("World = %+v, want {3 2 3}", got)
	}
	if child.WorldScale() != 2 {
		t.Errorf("WorldScale = %v, want 2", child.WorldScale())
	}
}

func TestBodyYawRotatesAboutY(t *testing.T) {
	b := NewBody("b", BodyGroup)
	b.Rotation.Y = math.Pi / 2
	got := b.World(Vec3{1, 0, 0})
	// +X turns to -Z under a quarter turn about Y.
	if !near(got.X, 0) || !near(got.Y, 0) || !near(got.Z, -1) {
		t.Errorf("World = %+v, want {0 0 -1}", got)
	}
}

func TestFirstPlanetFacesCamera(t *testing.T) {
	_, planets := buildGroup(rand.New(rand.NewPCG(1, 2)))
	front := planets[0].World(Vec3{})
	for i := 1; i < 3; i++ {
		if other := planets[i].World(Vec3{}); other.Z >= front.Z {
			t.Errorf("planet %d (z=%v) is not behind planet 0 (z=%v)", i, other.Z, front.Z)
		}
	}
	if math.Abs(front.X) > 0.05 {
		t.Errorf("planet 0 x = %v, want centred", front.X)
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewBody("parent", BodyGroup)
	a := NewBody("a", BodyGroup)
	b := NewBody("b", BodyGroup)
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)
	if len(parent.Children()) != 1 || parent.Children()[0] != b {
		t.Errorf("children = %v, want [b]", parent.Children())
	}
	if a.Parent != nil {
		t.Error("removed child should have no parent")
	}

	// Reparenting detaches from the old parent.
	other := NewBody("other", BodyGroup)
	other.AddChild(b)
	if len(parent.Children()) != 0 || b.Parent != other {
		t.Error("AddChild should move b to its new parent")
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.RGBA()
	if c.A != 128 || c.R != 128 || c.G != 64 || c.B != 0 {
		t.Errorf("RGBA = %+v", c)
	}
}

func TestHandlesWriteThroughToBody(t *testing.T) {
	ship := buildShip()
	v := vessel{ship}
	*v.Height() = 0.4
	*v.Pitch() = 1
	*v.Scale() = 0
	if ship.Position.Y != 0.4 || ship.Rotation.X != 1 || ship.Scale != 0 {
		t.Errorf("ship not updated through handle: %+v", ship)
	}

	g := NewBody("g", BodyGroup)
	*spinner{g}.Yaw() = 2
	if g.Rotation.Y != 2 {
		t.Errorf("yaw = %v, want 2", g.Rotation.Y)
	}
}

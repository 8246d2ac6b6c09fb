package scene

import (
	"image/color"
	"math"
)

// Vec3 is a point or direction in world units. Y is up, the camera looks
// down -Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Scale returns v * f.
func (v Vec3) Scale(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// RotateX rotates v about the X axis.
func (v Vec3) RotateX(a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
}

// RotateY rotates v about the Y axis.
func (v Vec3) RotateY(a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
}

// RotateZ rotates v about the Z axis.
func (v Vec3) RotateZ(a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
}

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA converts to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// BodyType selects how a Body is drawn.
type BodyType uint8

const (
	BodyGroup     BodyType = iota // transform only, no visual
	BodyPlanet                    // shaded sphere with surface spots
	BodyStarfield                 // point cloud on a large sphere
	BodyShip                      // flat-shaded triangle model
)

// bodyIDCounter is a plain counter; the scene is single-threaded.
var bodyIDCounter uint32

// Body is a node of the 3D scene tree. One flat struct serves every body
// type. Rotation is Euler XYZ: a local point is rotated about Z, then Y,
// then X, then translated.
type Body struct {
	ID   uint32
	Name string
	Type BodyType

	Parent   *Body
	children []*Body

	Position Vec3
	Rotation Vec3
	Scale    float64

	Visible bool
	Alpha   float64
	Color   Color

	// Radius is the sphere radius for planets and the starfield.
	Radius float64
	// Points are surface spots (planets) or stars (starfield), unit length.
	Points []Vec3
	// Mesh is the ship model in model units; three vertices per triangle.
	Mesh []Vec3
}

// NewBody creates a visible body with unit scale and full alpha.
func NewBody(name string, typ BodyType) *Body {
	bodyIDCounter++
	return &Body{
		ID:      bodyIDCounter,
		Name:    name,
		Type:    typ,
		Scale:   1,
		Visible: true,
		Alpha:   1,
		Color:   Color{1, 1, 1, 1},
	}
}

// AddChild attaches child, detaching it from any previous parent.
func (b *Body) AddChild(child *Body) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = b
	b.children = append(b.children, child)
}

// RemoveChild detaches child. It is a no-op if child is not attached to b.
func (b *Body) RemoveChild(child *Body) {
	for i, c := range b.children {
		if c == child {
			copy(b.children[i:], b.children[i+1:])
			b.children[len(b.children)-1] = nil
			b.children = b.children[:len(b.children)-1]
			child.Parent = nil
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (b *Body) Children() []*Body {
	return b.children
}

// local maps a point from b's space into its parent's space.
func (b *Body) local(p Vec3) Vec3 {
	p = p.Scale(b.Scale).RotateZ(b.Rotation.Z).RotateY(b.Rotation.Y).RotateX(b.Rotation.X)
	return p.Add(b.Position)
}

// World maps a point from b's space into world space.
func (b *Body) World(p Vec3) Vec3 {
	for n := b; n != nil; n = n.Parent {
		p = n.local(p)
	}
	return p
}

// rotateWorld applies only the rotations of b and its ancestors, for
// directions such as surface normals.
func (b *Body) rotateWorld(d Vec3) Vec3 {
	for n := b; n != nil; n = n.Parent {
		d = d.RotateZ(n.Rotation.Z).RotateY(n.Rotation.Y).RotateX(n.Rotation.X)
	}
	return d
}

// WorldScale is the product of b's and its ancestors' scales.
func (b *Body) WorldScale() float64 {
	s := 1.0
	for n := b; n != nil; n = n.Parent {
		s *= n.Scale
	}
	return s
}

// WorldAlpha is the product of b's and its ancestors' alpha.
func (b *Body) WorldAlpha() float64 {
	a := 1.0
	for n := b; n != nil; n = n.Parent {
		a *= n.Alpha
	}
	return a
}

// visible reports whether b and all its ancestors are visible.
func (b *Body) visible() bool {
	for n := b; n != nil; n = n.Parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

// spinner exposes a body's yaw to the sequencer.
type spinner struct{ b *Body }

func (s spinner) Yaw() *float64 { return &s.b.Rotation.Y }

// vessel exposes the ship body to the sequencer.
type vessel struct{ b *Body }

func (v vessel) Height() *float64 { return &v.b.Position.Y }
func (v vessel) Pitch() *float64  { return &v.b.Rotation.X }
func (v vessel) Scale() *float64  { return &v.b.Scale }

package scene

import (
	"math"
	"math/rand/v2"
)

// Landing scene geometry.
const (
	OrbitRadius   = 4.5
	PlanetRadius  = 1.3
	StarRadius    = 50
	StarOpacity   = 0.4
	StarCount     = 600
	SpotsPerWorld = 48

	// PlanetSpin is each planet's own rotation per 1/60 s frame.
	PlanetSpin = 0.0003

	// GroupYaw is the group's starting yaw; planet 0 faces the camera.
	GroupYaw   = 4.715
	GroupPitch = 0.11
	GroupY     = -0.6
)

// Ship placement at rest.
var (
	ShipPosition = Vec3{0, 0.1, 7}
	ShipRotation = Vec3{math.Pi / 4, -math.Pi / 2, 0}
)

const ShipScale = 0.01

// planetLooks are the surface and spot colors of the three worlds.
var planetLooks = [3]struct{ surface, spot Color }{
	{Color{0.36, 0.62, 0.72, 1}, Color{0.86, 0.93, 0.95, 1}}, // ice world
	{Color{0.45, 0.17, 0.11, 1}, Color{1.00, 0.55, 0.18, 1}}, // volcanic
	{Color{0.84, 0.66, 0.38, 1}, Color{0.95, 0.86, 0.66, 1}}, // cloud-wrapped
}

// unitSphere returns n seeded points uniformly distributed on the unit sphere.
func unitSphere(rng *rand.Rand, n int) []Vec3 {
	pts := make([]Vec3, n)
	for i := range pts {
		z := rng.Float64()*2 - 1
		a := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		pts[i] = Vec3{r * math.Cos(a), z, r * math.Sin(a)}
	}
	return pts
}

// buildGroup creates the planet group and its three planets.
func buildGroup(rng *rand.Rand) (*Body, [3]*Body) {
	group := NewBody("planets", BodyGroup)
	group.Rotation = Vec3{GroupPitch, GroupYaw, 0}
	group.Position = Vec3{0, GroupY, 0}

	var planets [3]*Body
	for i := range planets {
		angle := float64(i) / 3 * 2 * math.Pi
		p := NewBody(planetName(i), BodyPlanet)
		p.Position = Vec3{OrbitRadius * math.Cos(angle), 0, OrbitRadius * math.Sin(angle)}
		p.Radius = PlanetRadius
		p.Color = planetLooks[i].surface
		p.Points = unitSphere(rng, SpotsPerWorld)
		group.AddChild(p)
		planets[i] = p
	}
	return group, planets
}

func planetName(i int) string {
	return [...]string{"planet0", "planet1", "planet2"}[i]
}

// buildStarfield creates the background star sphere.
func buildStarfield(rng *rand.Rand) *Body {
	stars := NewBody("stars", BodyStarfield)
	stars.Radius = StarRadius
	stars.Alpha = StarOpacity
	stars.Points = unitSphere(rng, StarCount)
	stars.Rotation.Y = GroupYaw
	return stars
}

// buildShip creates the ship at rest. It starts hidden until installed.
func buildShip() *Body {
	ship := NewBody("ship", BodyShip)
	ship.Position = ShipPosition
	ship.Rotation = ShipRotation
	ship.Scale = ShipScale
	ship.Color = Color{0.78, 0.8, 0.86, 1}
	ship.Mesh = shipMesh()
	ship.Visible = false
	return ship
}

// shipMesh is a small dart: a four-faced hull, two wings and a tail fin.
// The nose points along -Z in model units.
func shipMesh() []Vec3 {
	nose := Vec3{0, 0, -30}
	left := Vec3{-6, 0, 10}
	right := Vec3{6, 0, 10}
	top := Vec3{0, 6, 8}
	return []Vec3{
		nose, left, top,
		nose, top, right,
		left, right, top,
		nose, right, left,

		{-6, 0, 0}, {-28, 0, 16}, {-6, 0, 12},
		{6, 0, 0}, {6, 0, 12}, {28, 0, 16},

		{0, 5, 6}, {0, 14, 18}, {0, 5, 12},
	}
}

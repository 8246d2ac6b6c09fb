package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandPlanet   CommandType = iota // shaded disc plus surface spots
	CommandTriangle                    // one flat-shaded ship face
)

// lightDir is the world-space direction towards the key light.
var lightDir = normalize(Vec3{-0.45, 0.55, 0.7})

// RenderCommand is a single draw instruction emitted during traversal.
type RenderCommand struct {
	Type      CommandType
	Depth     float64
	Color     Color
	treeOrder int // assigned during traversal for stable sort

	// Planet fields: projected centre and radius in pixels.
	x, y, r float64
	body    *Body

	// Triangle fields: projected corners.
	tri HitTriangle
}

// renderer owns the per-frame command list. It is reused across frames.
type renderer struct {
	cam      Camera
	commands []RenderCommand
	verts    []ebiten.Vertex
	inds     []uint16

	// shipTris are the ship's projected faces from the last traversal, used
	// for hit testing.
	shipTris []HitTriangle
	// planetHits are the projected planet discs from the last traversal.
	planetHits [3]struct {
		circle  HitCircle
		depth   float64
		visible bool
	}
}

// --- White pixel singleton (the renderer is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by untextured triangle fills.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// traverse walks the body tree depth-first and emits render commands for
// visible planets and ship faces. Starfields are drawn separately.
func (rd *renderer) traverse(b *Body, treeOrder *int) {
	if !b.Visible {
		return
	}
	switch b.Type {
	case BodyPlanet:
		rd.emitPlanet(b, treeOrder)
	case BodyShip:
		rd.emitShip(b, treeOrder)
	}
	for _, c := range b.children {
		rd.traverse(c, treeOrder)
	}
}

// planetIndex maps a planet body to its hit slot by name.
func planetIndex(b *Body) int {
	for i := 0; i < 3; i++ {
		if b.Name == planetName(i) {
			return i
		}
	}
	return -1
}

func (rd *renderer) emitPlanet(b *Body, treeOrder *int) {
	centre := b.World(Vec3{})
	x, y, depth, ok := rd.cam.Project(centre)
	if !ok {
		return
	}
	r := b.Radius * b.WorldScale() * rd.cam.PixelsPerUnit(depth)
	if i := planetIndex(b); i >= 0 {
		rd.planetHits[i].circle = HitCircle{CenterX: x, CenterY: y, Radius: r}
		rd.planetHits[i].depth = depth
		rd.planetHits[i].visible = true
	}
	rd.commands = append(rd.commands, RenderCommand{
		Type:      CommandPlanet,
		Depth:     depth,
		Color:     b.Color.WithAlpha(b.WorldAlpha()),
		treeOrder: *treeOrder,
		x:         x,
		y:         y,
		r:         r,
		body:      b,
	})
	*treeOrder++
}

func (rd *renderer) emitShip(b *Body, treeOrder *int) {
	if b.WorldScale() < 1e-6 {
		return
	}
	alpha := b.WorldAlpha()
	for i := 0; i+2 < len(b.Mesh); i += 3 {
		a := b.World(b.Mesh[i])
		c1 := b.World(b.Mesh[i+1])
		c2 := b.World(b.Mesh[i+2])
		x0, y0, d0, ok0 := rd.cam.Project(a)
		x1, y1, d1, ok1 := rd.cam.Project(c1)
		x2, y2, d2, ok2 := rd.cam.Project(c2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		n := normalize(cross(c1.sub(a), c2.sub(a)))
		shade := 0.35 + 0.65*math.Abs(n.Dot(lightDir))
		col := b.Color
		col.R *= shade
		col.G *= shade
		col.B *= shade
		col.A *= alpha

		tri := HitTriangle{x0, y0, x1, y1, x2, y2}
		rd.shipTris = append(rd.shipTris, tri)
		rd.commands = append(rd.commands, RenderCommand{
			Type:      CommandTriangle,
			Depth:     (d0 + d1 + d2) / 3,
			Color:     col,
			treeOrder: *treeOrder,
			tri:       tri,
		})
		*treeOrder++
	}
}

// build clears the command list and traverses every root.
func (rd *renderer) build(roots ...*Body) {
	rd.commands = rd.commands[:0]
	rd.shipTris = rd.shipTris[:0]
	for i := range rd.planetHits {
		rd.planetHits[i].visible = false
	}
	order := 0
	for _, r := range roots {
		if r != nil {
			rd.traverse(r, &order)
		}
	}
	rd.sortCommands()
}

// commandBefore reports whether a draws before b: farther first, then
// traversal order for stability.
func commandBefore(a, b RenderCommand) bool {
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.treeOrder < b.treeOrder
}

// sortCommands orders commands back to front. Insertion sort: stable and
// optimal for the short, nearly sorted lists a frame produces.
func (rd *renderer) sortCommands() {
	cmds := rd.commands
	for i := 1; i < len(cmds); i++ {
		key := cmds[i]
		j := i - 1
		for j >= 0 && commandBefore(key, cmds[j]) {
			cmds[j+1] = cmds[j]
			j--
		}
		cmds[j+1] = key
	}
}

// submit draws every command in order.
func (rd *renderer) submit(dst *ebiten.Image) {
	for i := range rd.commands {
		cmd := &rd.commands[i]
		switch cmd.Type {
		case CommandPlanet:
			rd.drawPlanet(dst, cmd)
		case CommandTriangle:
			rd.drawTriangle(dst, cmd)
		}
	}
}

// drawPlanet fakes a lit sphere with concentric discs that shift towards
// the light, then dots the visible hemisphere with surface spots.
func (rd *renderer) drawPlanet(dst *ebiten.Image, cmd *RenderCommand) {
	const rings = 10
	base := cmd.Color
	for i := 0; i < rings; i++ {
		t := float64(i) / rings
		r := cmd.r * (1 - 0.85*t)
		shift := cmd.r * 0.35 * t
		c := base
		lift := 0.25 + 0.95*t
		c.R *= lift
		c.G *= lift
		c.B *= lift
		vector.DrawFilledCircle(dst,
			float32(cmd.x+lightDir.X*shift), float32(cmd.y-lightDir.Y*shift),
			float32(r), c.RGBA(), true)
	}

	b := cmd.body
	look := max(planetIndex(b), 0)
	spot := planetLooks[look].spot.WithAlpha(b.WorldAlpha())
	for _, p := range b.Points {
		n := b.rotateWorld(p)
		// Only the hemisphere facing the camera is drawn.
		if n.Z <= 0.05 {
			continue
		}
		sx := cmd.x + n.X*cmd.r
		sy := cmd.y - n.Y*cmd.r
		size := cmd.r * 0.06 * n.Z
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(size),
			spot.WithAlpha(0.35+0.5*n.Z).RGBA(), true)
	}
}

func (rd *renderer) drawTriangle(dst *ebiten.Image, cmd *RenderCommand) {
	c := cmd.Color
	a := float32(clamp01(c.A))
	r, g, b := float32(c.R)*a, float32(c.G)*a, float32(c.B)*a
	t := cmd.tri
	rd.verts = append(rd.verts[:0],
		ebiten.Vertex{DstX: float32(t.X0), DstY: float32(t.Y0), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: float32(t.X1), DstY: float32(t.Y1), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: float32(t.X2), DstY: float32(t.Y2), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	)
	rd.inds = append(rd.inds[:0], 0, 1, 2)
	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	dst.DrawTriangles(rd.verts, rd.inds, ensureWhitePixel(), &triOp)
}

// drawStars draws the star sphere as small dots.
func (rd *renderer) drawStars(dst *ebiten.Image, stars *Body) {
	if stars == nil || !stars.visible() {
		return
	}
	alpha := stars.WorldAlpha()
	for i, p := range stars.Points {
		x, y, _, ok := rd.cam.Project(stars.World(p.Scale(stars.Radius)))
		if !ok || x < 0 || y < 0 || x > rd.cam.Width || y > rd.cam.Height {
			continue
		}
		// Vary brightness and size per star so the field has some depth.
		tw := 0.5 + 0.5*float64(i%7)/6
		size := float32(1 + float64(i%3)*0.5)
		c := Color{0.9, 0.92, 1, alpha * tw}
		vector.DrawFilledRect(dst, float32(x), float32(y), size, size, c.RGBA(), false)
	}
}

// hitTest returns the nearest click target at (x, y) from the last
// traversal. The ship is always in front of the orbit.
func (rd *renderer) hitTest(x, y float64) hitTarget {
	for _, t := range rd.shipTris {
		if t.Contains(x, y) {
			return hitTarget{kind: targetShip}
		}
	}
	best := -1
	for i, h := range rd.planetHits {
		if !h.visible || !h.circle.Contains(x, y) {
			continue
		}
		if best < 0 || h.depth < rd.planetHits[best].depth {
			best = i
		}
	}
	if best >= 0 {
		return hitTarget{kind: targetPlanet, index: best}
	}
	return hitTarget{}
}

// --- vector helpers ---

func (v Vec3) sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func cross(a, b Vec3) Vec3 {
	return Vec3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

func normalize(v Vec3) Vec3 {
	l := math.Sqrt(v.Dot(v))
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

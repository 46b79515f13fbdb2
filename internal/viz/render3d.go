package viz

import (
	"math"
	"sort"

	"github.com/san-kum/blochview/internal/qmath"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// FromCartesian maps a Bloch vector into render space. The Bloch +Z axis
// (the |0⟩ pole) points up on screen, so render Y takes Bloch Z.
func FromCartesian(c qmath.Cartesian) Vec3 {
	return Vec3{X: c.X, Y: c.Z, Z: c.Y}
}

// Camera projects render space onto the canvas with simple perspective.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 5, RotX: 0.35, RotY: -0.5, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(6, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.2, c.Zoom/1.2) }

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts render coordinates to dot coordinates plus depth.
func (c *Camera) Project(p Vec3, dw, dh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := float64(dh)
	if float64(dw) < minDim {
		minDim = float64(dw)
	}
	scale := minDim / 2.6
	sx := int(rot.X*persp*scale) + dw/2
	sy := int(-rot.Y*persp*scale) + dh/2
	return sx, sy, rot.Z, sx >= 0 && sx < dw && sy >= 0 && sy < dh
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3)   { w.Edges = append(w.Edges, Edge{p, p}) }

// Render3D draws the wireframe onto the canvas back-to-front.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	dw, dh := c.DotWidth(), c.DotHeight()
	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	proj := make([]projected, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, dw, dh)
		x2, y2, d2, v2 := cam.Project(e.End, dw, dh)
		if v1 || v2 {
			proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

const sphereSegments = 24

// BlochWireframe builds the unit sphere scaffold: equator, two tropic
// rings, two meridians, and the three coordinate axes.
func BlochWireframe() *Wireframe {
	wf := NewWireframe()

	ring := func(theta float64) {
		r, y := math.Sin(theta), math.Cos(theta)
		for i := 0; i < sphereSegments; i++ {
			a1 := float64(i) / sphereSegments * 2 * math.Pi
			a2 := float64(i+1) / sphereSegments * 2 * math.Pi
			wf.AddEdge(
				Vec3{r * math.Cos(a1), y, r * math.Sin(a1)},
				Vec3{r * math.Cos(a2), y, r * math.Sin(a2)},
			)
		}
	}
	ring(math.Pi / 4)
	ring(math.Pi / 2)
	ring(3 * math.Pi / 4)

	meridian := func(phi float64) {
		for i := 0; i < sphereSegments; i++ {
			a1 := float64(i) / sphereSegments * 2 * math.Pi
			a2 := float64(i+1) / sphereSegments * 2 * math.Pi
			p1 := FromCartesian(qmath.SphericalToCartesian(qmath.Spherical{Theta: a1, Phi: phi}))
			p2 := FromCartesian(qmath.SphericalToCartesian(qmath.Spherical{Theta: a2, Phi: phi}))
			wf.AddEdge(p1, p2)
		}
	}
	meridian(0)
	meridian(math.Pi / 2)

	// axes poke slightly past the surface
	for _, axis := range []Vec3{{1.15, 0, 0}, {0, 1.15, 0}, {0, 0, 1.15}} {
		wf.AddEdge(axis.Scale(-1), axis)
	}

	return wf
}

// StateArrow adds the state vector and its tip to the wireframe.
func StateArrow(wf *Wireframe, c qmath.Cartesian) {
	tip := FromCartesian(c)
	wf.AddEdge(Vec3{}, tip)
	// thicken the tip so it reads as a marker
	for _, d := range []Vec3{{0.02, 0, 0}, {0, 0.02, 0}, {0, 0, 0.02}} {
		wf.AddEdge(Vec3{tip.X - d.X, tip.Y - d.Y, tip.Z - d.Z}, Vec3{tip.X + d.X, tip.Y + d.Y, tip.Z + d.Z})
	}
}

// Trail adds past trajectory points to the wireframe.
func Trail(wf *Wireframe, points []qmath.Spherical) {
	for _, p := range points {
		wf.AddPoint(FromCartesian(qmath.SphericalToCartesian(p)))
	}
}

package tty

import (
	"image/color"
	"math"

	"cube-viewer/internal/theme"
	"cube-viewer/internal/view"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	faceRune = '█'
	edgeRune = '*'

	// CellAspect is how many cells wide one cell-height is; terminal cells are about twice as tall as wide.
	CellAspect = 2.0
	// minShade keeps faces pointing sideways from going black.
	minShade = 0.35
	// nearPlane is the closest depth in front of the camera that is drawn, in world units.
	nearPlane = 0.1
)

// Renderer rasterizes the cube of a view.Style into a Canvas with a perspective camera
// on +Z looking at the origin.
type Renderer struct {
	sheet     *theme.Sheet
	edge      float32
	pxPerUnit float64
	// Distance is the camera distance from the origin in world units.
	Distance float64
	// FovY is the vertical field of view in degrees.
	FovY float64
}

// NewRenderer returns a renderer for a cube of baseSize view pixels at pxPerUnit pixels per world unit.
func NewRenderer(sheet *theme.Sheet, baseSize, pxPerUnit float64) *Renderer {
	return &Renderer{
		sheet:     sheet,
		edge:      float32(baseSize / pxPerUnit),
		pxPerUnit: pxPerUnit,
		Distance:  8,
		FovY:      45,
	}
}

// Project maps a world point to cell coordinates on a w×h canvas. ok is false for points
// at or behind the camera.
func (r *Renderer) Project(v mgl32.Vec3, w, h int) (p Point, ok bool) {
	depth := r.Distance - float64(v.Z())
	if depth <= 0 {
		return Point{}, false
	}
	focal := float64(h) / (2 * math.Tan(float64(mgl32.DegToRad(float32(r.FovY)/2))))
	f := focal / depth
	return Point{
		X: float64(w)/2 + float64(v.X())*f*CellAspect,
		Y: float64(h)/2 - float64(v.Y())*f,
	}, true
}

// Draw rasterizes the cube. Hidden styles draw nothing. Wireframe styles draw the 12 edges only;
// otherwise front faces are filled with the background colour shaded by their angle to the camera
// and outlined with the .cube border colour. Geometry closer than nearPlane to the camera is clipped.
func (r *Renderer) Draw(c *Canvas, st *view.Style) {
	if st.Hidden {
		return
	}
	m := st.Transform.Matrix(r.pxPerUnit)
	corners := view.TransformCorners(view.CubeCorners(r.edge), m)

	if !st.HasClass(view.WireframeClass) {
		if fill, ok := theme.ParseColor(st.Background); ok && fill.A > 0 {
			r.drawFaces(c, corners, fill)
		}
	}

	edgeStyle := r.sheet.Resolve("", append([]string{"cube"}, st.Classes()...)...)
	if !edgeStyle.HasBorder {
		return
	}
	for _, e := range view.CubeEdges {
		a, b, ok := r.clipNear(corners[e[0]], corners[e[1]])
		if !ok {
			continue
		}
		pa, _ := r.Project(a, c.W, c.H)
		pb, _ := r.Project(b, c.W, c.H)
		c.Line(pa, pb, edgeRune, edgeStyle.Border)
	}
}

func (r *Renderer) depth(v mgl32.Vec3) float64 {
	return r.Distance - float64(v.Z())
}

// nearPoint returns where segment ab crosses the near plane. a and b must be on opposite sides.
func (r *Renderer) nearPoint(a, b mgl32.Vec3) mgl32.Vec3 {
	da, db := r.depth(a), r.depth(b)
	t := float32((nearPlane - da) / (db - da))
	return a.Add(b.Sub(a).Mul(t))
}

// clipNear trims segment ab to the part at least nearPlane in front of the camera.
func (r *Renderer) clipNear(a, b mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	aIn, bIn := r.depth(a) >= nearPlane, r.depth(b) >= nearPlane
	switch {
	case aIn && bIn:
		return a, b, true
	case aIn:
		return a, r.nearPoint(a, b), true
	case bIn:
		return r.nearPoint(a, b), b, true
	}
	return a, b, false
}

// clipPolygonNear clips a convex polygon against the near plane (Sutherland-Hodgman).
func (r *Renderer) clipPolygonNear(in []mgl32.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, len(in)+1)
	for i, cur := range in {
		next := in[(i+1)%len(in)]
		curIn, nextIn := r.depth(cur) >= nearPlane, r.depth(next) >= nearPlane
		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			out = append(out, r.nearPoint(cur, next))
		}
	}
	return out
}

func (r *Renderer) drawFaces(c *Canvas, corners [8]mgl32.Vec3, fill color.RGBA) {
	base, _ := colorful.MakeColor(fill)
	eye := mgl32.Vec3{0, 0, float32(r.Distance)}
	for _, f := range view.CubeFaces {
		// faces wind counter-clockwise from outside, so this normal points out of the cube
		normal := corners[f[1]].Sub(corners[f[0]]).Cross(corners[f[2]].Sub(corners[f[1]])).Normalize()
		facing := float64(normal.Dot(eye.Sub(corners[f[0]])))
		if facing <= 0 {
			continue
		}
		poly := r.clipPolygonNear([]mgl32.Vec3{corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]})
		if len(poly) < 3 {
			continue
		}
		pts := make([]Point, len(poly))
		for i, v := range poly {
			pts[i], _ = r.Project(v, c.W, c.H)
		}

		toEye := eye.Sub(corners[f[0]]).Normalize()
		shade := minShade + (1-minShade)*math.Max(0, float64(normal.Dot(toEye)))
		col := shaded(base, shade)
		for i := 1; i+1 < len(pts); i++ {
			c.Triangle(pts[0], pts[i], pts[i+1], faceRune, col)
		}
	}
}

// shaded darkens base towards black by 1-shade, blending in Lab.
func shaded(base colorful.Color, shade float64) color.RGBA {
	out := base.BlendLab(colorful.Color{}, 1-shade).Clamped()
	r, g, b := out.RGB255()
	return color.RGBA{r, g, b, 255}
}

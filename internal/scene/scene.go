package scene

import (
	"image/color"

	"cube-viewer/internal/theme"
	"cube-viewer/internal/view"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridExtent     = 10
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	cameraDistance = 8
)

// Scene holds a 3D camera looking at the origin and draws the cube described by a view.Style.
// The cube mesh and material are created on the first Draw, after the GL context exists.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Light       Light

	sheet     *theme.Sheet
	edge      float32
	pxPerUnit float64

	mesh   rl.Mesh
	mtl    rl.Material
	lit    rl.Shader
	loaded bool

	gridMinor rl.Color
	gridMajor rl.Color
}

// New returns a scene for a cube of baseSize view pixels, drawn at pxPerUnit pixels per world unit.
// Camera: on +Z at cameraDistance, looking at the origin, fovy 45°.
func New(sheet *theme.Sheet, baseSize, pxPerUnit float64) *Scene {
	s := &Scene{
		GridVisible: true,
		Light:       DefaultLight(),
		sheet:       sheet,
		edge:        float32(baseSize / pxPerUnit),
		pxPerUnit:   pxPerUnit,
	}
	s.Camera.Position = rl.NewVector3(0, 0, cameraDistance)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective

	grid := sheet.Resolve("grid")
	s.gridMinor = toRL(grid.Color)
	s.gridMinor.A = gridMinorAlpha
	s.gridMajor = toRL(grid.Border)
	s.gridMajor.A = gridMajorAlpha
	return s
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout (same element order, named fields).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.NewMatrix(
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	)
}

func (s *Scene) ensureLoaded() {
	if s.loaded {
		return
	}
	s.mesh = rl.GenMeshCube(s.edge, s.edge, s.edge)
	s.mtl = rl.LoadMaterialDefault()
	s.lit = loadLitShader()
	if rl.IsShaderValid(s.lit) {
		s.mtl.Shader = s.lit
	}
	s.loaded = true
}

// Draw renders the floor grid and, unless the style hides it, the cube. Wireframe styles
// draw only the edges; otherwise the faces are filled with the background colour, lit by
// Light, and outlined with the .cube border colour.
func (s *Scene) Draw(st *view.Style) {
	s.ensureLoaded()
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		s.drawGrid()
	}
	if !st.Hidden {
		s.drawCube(st)
	}
	rl.EndMode3D()
}

func (s *Scene) drawCube(st *view.Style) {
	m := st.Transform.Matrix(s.pxPerUnit)
	classes := append([]string{"cube"}, st.Classes()...)
	edgeStyle := s.sheet.Resolve("", classes...)

	if !st.HasClass(view.WireframeClass) {
		if fill, ok := theme.ParseColor(st.Background); ok && fill.A > 0 {
			if albedo := s.mtl.GetMap(rl.MapAlbedo); albedo != nil {
				albedo.Color = toRL(fill)
			}
			s.Light.apply(s.mtl.Shader, s.Camera.Position)
			rl.DrawMesh(s.mesh, s.mtl, toMatrix(m))
		}
	}
	if !edgeStyle.HasBorder {
		return
	}
	edge := toRL(edgeStyle.Border)
	corners := view.TransformCorners(view.CubeCorners(s.edge), m)
	for _, e := range view.CubeEdges {
		a, b := corners[e[0]], corners[e[1]]
		rl.DrawLine3D(rl.NewVector3(a[0], a[1], a[2]), rl.NewVector3(b[0], b[1], b[2]), edge)
	}
}

// drawGrid draws a grid on the XZ plane one edge-length below the origin.
func (s *Scene) drawGrid() {
	y := -s.edge
	ext := float32(gridExtent)
	for i := -gridExtent; i <= gridExtent; i++ {
		c := s.gridMinor
		if i%gridMajorStep == 0 {
			c = s.gridMajor
		}
		f := float32(i)
		rl.DrawLine3D(rl.NewVector3(f, y, -ext), rl.NewVector3(f, y, ext), c)
		rl.DrawLine3D(rl.NewVector3(-ext, y, f), rl.NewVector3(ext, y, f), c)
	}
}

// Unload releases the GPU mesh and shader. Call before the window closes.
func (s *Scene) Unload() {
	if !s.loaded {
		return
	}
	rl.UnloadMesh(&s.mesh)
	if rl.IsShaderValid(s.lit) {
		rl.UnloadShader(s.lit)
	}
	s.loaded = false
}

package view

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is applied as scale · rotateX · rotateY · translateY, in that fixed order.
// Rotations are in degrees, the translation in pixels.
type Transform struct {
	Scale      float64
	RotateX    float64
	RotateY    float64
	TranslateY float64
}

// String renders the CSS transform, e.g. "scale(1) rotateX(-30deg) rotateY(30deg) translateY(0px)".
func (t Transform) String() string {
	var b strings.Builder
	b.WriteString("scale(")
	b.WriteString(num(t.Scale))
	b.WriteString(") rotateX(")
	b.WriteString(num(t.RotateX))
	b.WriteString("deg) rotateY(")
	b.WriteString(num(t.RotateY))
	b.WriteString("deg) translateY(")
	b.WriteString(num(t.TranslateY))
	b.WriteString("px)")
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Matrix returns the model matrix in a Y-up world where pxPerUnit pixels make one world unit.
// The CSS frame is Y-down, so conjugating by diag(1,-1,1) negates the X rotation and the
// vertical translation; the Y rotation and the uniform scale are unchanged.
func (t Transform) Matrix(pxPerUnit float64) mgl32.Mat4 {
	if pxPerUnit <= 0 {
		pxPerUnit = 1
	}
	s := float32(t.Scale)
	return mgl32.Scale3D(s, s, s).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(-t.RotateX)))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(t.RotateY)))).
		Mul4(mgl32.Translate3D(0, float32(-t.TranslateY/pxPerUnit), 0))
}

package ui

import (
	"image/color"

	"cube-viewer/internal/panel"
	"cube-viewer/internal/theme"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	hueSegments = 36
	inset       = 5
	checkSize   = 14
)

// PanelView draws a panel.Panel with raylib, styled by the theme's #panel and row rules.
// Styles are resolved once at construction; the panel state is read every frame.
type PanelView struct {
	p *panel.Panel

	box, row, header          theme.Computed
	track, slider, sliderFill theme.Computed
	toggle, toggleOn, picker  theme.Computed
	button, buttonActive      theme.Computed
	swatchOutline             rl.Color

	face *Face
}

// NewPanelView resolves the panel styles from sheet.
func NewPanelView(p *panel.Panel, sheet *theme.Sheet) *PanelView {
	return &PanelView{
		p:             p,
		box:           sheet.Resolve("panel"),
		row:           sheet.Resolve("", "row"),
		header:        sheet.Resolve("", "row", "header"),
		track:         sheet.Resolve("", "track"),
		slider:        sheet.Resolve("", "slider"),
		sliderFill:    sheet.Resolve("", "slider", "fill"),
		toggle:        sheet.Resolve("", "toggle"),
		toggleOn:      sheet.Resolve("", "toggle", "on"),
		picker:        sheet.Resolve("", "picker"),
		button:        sheet.Resolve("", "button"),
		buttonActive:  sheet.Resolve("", "button", "active"),
		swatchOutline: rl.White,
	}
}

// SetFace sets the font used for labels and values. nil uses raylib's default font.
func (v *PanelView) SetFace(f *Face) {
	v.face = f
}

// Layout positions the panel for the current screen size. Percentage offsets place it
// within the free space, so left: 100% docks it to the right edge.
func (v *PanelView) Layout(screenW, screenH int32) {
	w := v.box.Width
	if w <= 0 {
		w = panel.DefaultWidth
	}
	h := v.row.Height
	if h <= 0 {
		h = panel.DefaultRowHeight
	}
	x, y := v.box.Left, v.box.Top
	if v.box.LeftPct >= 0 {
		x = (screenW - w) * v.box.LeftPct / 100
	}
	if v.box.TopPct >= 0 {
		y = (screenH - h*int32(len(v.p.Rows()))) * v.box.TopPct / 100
	}
	v.p.Layout(float64(x), float64(y), float64(w), float64(h))
}

func c(rgba color.RGBA) rl.Color {
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

func rect(r panel.Rect) (x, y, w, h int32) {
	return int32(r.X), int32(r.Y), int32(r.W), int32(r.H)
}

// Draw draws the panel background and every visible row.
func (v *PanelView) Draw() {
	x, y, w, h := rect(v.p.Bounds())
	if v.box.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, c(v.box.Background))
	}
	for _, r := range v.p.Rows() {
		v.drawRow(r)
	}
	if v.box.HasBorder {
		rl.DrawRectangleLines(x, y, w, h, c(v.box.Border))
	}
}

func (v *PanelView) drawRow(r panel.Row) {
	x, y, w, h := rect(r.Bounds)
	pad := v.row.Padding
	size := v.box.FontSize

	switch r.Kind {
	case panel.Header:
		rl.DrawRectangle(x, y, w, h, c(v.header.Background))
		tw := v.face.Measure(r.Label, size)
		v.face.Draw(r.Label, x+(w-tw)/2, y+pad, size, c(v.header.Color))
		return
	case panel.Button:
		st := v.button
		if v.p.On(r.Name) {
			st = v.buttonActive
		}
		rl.DrawRectangle(x, y+h-3, w, 3, c(st.Border))
		v.face.Draw(r.Label, x+pad, y+pad, size, c(v.row.Color))
		if val := v.p.Value(r.Name); val != "" {
			v.face.Draw(val, x+w-v.face.Measure(val, size)-pad, y+pad, size, c(st.Background))
		}
		v.rowSeparator(x, y, w, h)
		return
	}

	v.face.Draw(r.Label, x+pad, y+pad, size, c(v.row.Color))
	cx, cy, cw, ch := rect(r.Control)
	cx, cy, cw, ch = cx+inset, cy+inset, cw-2*inset, ch-2*inset

	switch r.Kind {
	case panel.Slider:
		rl.DrawRectangle(cx, cy, cw, ch, c(v.track.Background))
		fill := int32(math32.Round(float32(v.p.Fraction(r.Name)) * float32(cw)))
		rl.DrawRectangle(cx, cy, fill, ch, c(v.sliderFill.Background))
		val := v.p.Value(r.Name)
		v.face.Draw(val, cx+cw-v.face.Measure(val, size)-inset, cy+(ch-size)/2, size, c(v.row.Color))
	case panel.Toggle:
		bx, by := cx, cy+(ch-checkSize)/2
		if v.p.On(r.Name) {
			rl.DrawRectangle(bx, by, checkSize, checkSize, c(v.toggleOn.Background))
		}
		rl.DrawRectangleLines(bx, by, checkSize, checkSize, c(v.toggle.Border))
	case panel.Picker:
		v.drawHueStrip(cx, cy, cw, ch)
	}
	v.rowSeparator(x, y, w, h)
}

// drawHueStrip draws the hue gradient with a marker at the current hue.
func (v *PanelView) drawHueStrip(x, y, w, h int32) {
	seg := float32(w) / hueSegments
	for i := 0; i < hueSegments; i++ {
		hue := (float64(i) + 0.5) * 360 / hueSegments
		r, g, b := colorful.Hsv(hue, 1, 1).Clamped().RGB255()
		sx := x + int32(math32.Floor(float32(i)*seg))
		ex := x + int32(math32.Floor(float32(i+1)*seg))
		rl.DrawRectangle(sx, y, ex-sx, h, rl.NewColor(r, g, b, 255))
	}
	mx := x + int32(math32.Round(float32(v.p.Fraction(panel.RowColor))*float32(w)))
	rl.DrawRectangle(mx-1, y-2, 3, h+4, v.swatchOutline)
	if v.picker.HasBorder {
		rl.DrawRectangleLines(x, y, w, h, c(v.picker.Border))
	}
}

func (v *PanelView) rowSeparator(x, y, w, h int32) {
	if v.row.HasBorder {
		rl.DrawRectangle(x, y+h-1, w, 1, c(v.row.Border))
	}
}

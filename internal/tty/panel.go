package tty

import (
	"image/color"
	"strings"

	"cube-viewer/internal/panel"
	"cube-viewer/internal/theme"

	"github.com/lucasb-eyer/go-colorful"
)

// PanelWidth is the width of the control panel in cells.
const PanelWidth = 32

// PanelView draws a panel.Panel as text rows into a Canvas.
type PanelView struct {
	p    *panel.Panel
	text color.RGBA
	head color.RGBA
	fill color.RGBA
	tog  color.RGBA
	btn  color.RGBA
}

// NewPanelView resolves the panel colours from sheet.
func NewPanelView(p *panel.Panel, sheet *theme.Sheet) *PanelView {
	return &PanelView{
		p:    p,
		text: sheet.Resolve("", "row").Color,
		head: sheet.Resolve("", "row", "header").Color,
		fill: sheet.Resolve("", "slider", "fill").Background,
		tog:  sheet.Resolve("", "toggle").Border,
		btn:  sheet.Resolve("", "button").Background,
	}
}

// Layout docks the panel to the top-right corner of a canvas w cells wide, one row per line.
func (v *PanelView) Layout(w int) {
	x := w - PanelWidth
	if x < 0 {
		x = 0
	}
	v.p.Layout(float64(x), 0, PanelWidth, 1)
}

// Draw writes every visible row.
func (v *PanelView) Draw(c *Canvas) {
	for _, r := range v.p.Rows() {
		x, y := int(r.Bounds.X), int(r.Bounds.Y)
		w := int(r.Bounds.W)
		// clear the row so the cube does not show through
		c.Text(x, y, strings.Repeat(" ", w), v.text)

		switch r.Kind {
		case panel.Header:
			c.Text(x+(w-len(r.Label))/2, y, r.Label, v.head)
			continue
		case panel.Button:
			c.Text(x+1, y, "["+r.Label+"]", v.btn)
			if val := v.p.Value(r.Name); val != "" {
				c.Text(x+w-len(val)-1, y, val, v.text)
			}
			continue
		}

		c.Text(x+1, y, r.Label, v.text)
		cx, cw := int(r.Control.X), int(r.Control.W)-1
		switch r.Kind {
		case panel.Slider:
			val := v.p.Value(r.Name)
			bar := cw - len(val) - 1
			filled := int(v.p.Fraction(r.Name)*float64(bar) + 0.5)
			for i := 0; i < bar; i++ {
				ch, col := '─', v.text
				if i < filled {
					ch, col = '━', v.fill
				}
				c.Set(cx+i, y, ch, col)
			}
			c.Text(cx+bar+1, y, val, v.text)
		case panel.Toggle:
			box := "[ ]"
			if v.p.On(r.Name) {
				box = "[x]"
			}
			c.Text(cx, y, box, v.tog)
		case panel.Picker:
			marker := int(v.p.Fraction(r.Name) * float64(cw))
			for i := 0; i < cw; i++ {
				hue := (float64(i) + 0.5) * 360 / float64(cw)
				rr, g, b := colorful.Hsv(hue, 1, 1).Clamped().RGB255()
				ch := '▄'
				if i == marker {
					ch = '▲'
				}
				c.Set(cx+i, y, ch, color.RGBA{rr, g, b, 255})
			}
		}
	}
}

package panel

import (
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Row names, usable with Adjust, Activate and Value.
const (
	RowHeader     = "header"
	RowElevation  = "elevation"
	RowVisibility = "visibility"
	RowWireframe  = "wireframe"
	RowColor      = "color"
	RowSaturation = "saturation"
	RowBrightness = "brightness"
	RowSpin       = "spin"
)

// Target is the state the panel edits. view.Controller implements it.
type Target interface {
	Elevation() float64
	SetElevation(v float64)
	Visible() bool
	SetVisible(v bool)
	Wireframe() bool
	SetWireframe(v bool)
	Color() string
	SetColor(hex string) error
	Spin() bool
	Spinning() bool
}

// Kind is the widget type of a row.
type Kind int

const (
	Header Kind = iota
	Slider
	Toggle
	Picker
	Button
)

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) is inside r, right and bottom edges excluded.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Row is one laid-out line of the panel. Control is the interactive part to the right of the label.
type Row struct {
	Kind    Kind
	Name    string
	Label   string
	Bounds  Rect
	Control Rect
}

// Panel is a small live-parameter panel: elevation slider, visibility and wireframe toggles,
// a hue picker with saturation and brightness sliders for the colour and a spin button, under
// a header that collapses it. Slider and picker rows capture the pointer from press until release.
type Panel struct {
	target    Target
	min, max  float64
	rows      []Row
	collapsed bool
	active    int

	// last colour set through the panel, so hue survives while saturation or brightness is 0
	last hsv
}

type hsv struct {
	h, s, v float64
	hex     string
}

// Layout geometry used until Layout is called.
const (
	DefaultWidth      = 280
	DefaultRowHeight  = 30
	labelFraction     = 0.4
	elevationSteps    = 40
	hueStep           = 15.0
	shadeStep         = 0.1
	elevationDecimals = 10
)

// New returns a panel editing t, with the elevation slider spanning [min, max].
func New(t Target, min, max float64) *Panel {
	p := &Panel{target: t, min: min, max: max, active: -1}
	p.rows = []Row{
		{Kind: Header, Name: RowHeader, Label: "Controls"},
		{Kind: Slider, Name: RowElevation, Label: "Elevation"},
		{Kind: Toggle, Name: RowVisibility, Label: "Visibility"},
		{Kind: Toggle, Name: RowWireframe, Label: "Wireframe"},
		{Kind: Picker, Name: RowColor, Label: "Color"},
		{Kind: Slider, Name: RowSaturation, Label: "Saturation"},
		{Kind: Slider, Name: RowBrightness, Label: "Brightness"},
		{Kind: Button, Name: RowSpin, Label: "Spin"},
	}
	p.Layout(0, 0, DefaultWidth, DefaultRowHeight)
	p.SetCollapsed(false)
	return p
}

// Layout places the panel with its top-left corner at (x, y).
func (p *Panel) Layout(x, y, width, rowHeight float64) {
	labelW := math.Round(width * labelFraction)
	for i := range p.rows {
		r := &p.rows[i]
		r.Bounds = Rect{X: x, Y: y + float64(i)*rowHeight, W: width, H: rowHeight}
		if r.Kind == Header || r.Kind == Button {
			r.Control = r.Bounds
			continue
		}
		r.Control = Rect{X: x + labelW, Y: r.Bounds.Y, W: width - labelW, H: rowHeight}
	}
}

// Rows returns the rows currently shown: only the header while collapsed.
func (p *Panel) Rows() []Row {
	if p.collapsed {
		return p.rows[:1]
	}
	return p.rows
}

// Bounds returns the area covered by the visible rows.
func (p *Panel) Bounds() Rect {
	rows := p.Rows()
	first, last := rows[0].Bounds, rows[len(rows)-1].Bounds
	return Rect{X: first.X, Y: first.Y, W: first.W, H: last.Y + last.H - first.Y}
}

// Contains reports whether (x, y) is over the panel.
func (p *Panel) Contains(x, y float64) bool {
	return p.Bounds().Contains(x, y)
}

// Collapsed reports whether only the header is shown.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// SetCollapsed shows or hides the rows below the header.
func (p *Panel) SetCollapsed(c bool) {
	p.collapsed = c
	if c {
		p.active = -1
	}
	p.rows[0].Label = "Controls"
	if !c {
		p.rows[0].Label = "Close Controls"
	}
}

// Capturing reports whether a slider or picker currently owns the pointer.
func (p *Panel) Capturing() bool {
	return p.active >= 0
}

// Press handles a pointer press. It returns true when the press landed on the panel, in which
// case the caller must not treat it as a drag on the cube.
func (p *Panel) Press(x, y float64) bool {
	if !p.Contains(x, y) {
		return false
	}
	for i, r := range p.Rows() {
		if !r.Bounds.Contains(x, y) {
			continue
		}
		switch r.Kind {
		case Header:
			p.SetCollapsed(!p.collapsed)
		case Toggle, Button:
			p.Activate(r.Name)
		case Slider, Picker:
			if r.Control.Contains(x, y) {
				p.active = i
				p.drag(r, x)
			}
		}
		break
	}
	return true
}

// Drag updates the captured slider or picker. Returns false if nothing is captured.
func (p *Panel) Drag(x, y float64) bool {
	if p.active < 0 {
		return false
	}
	p.drag(p.rows[p.active], x)
	return true
}

// Release ends pointer capture. Returns true if the panel had it.
func (p *Panel) Release() bool {
	had := p.active >= 0
	p.active = -1
	return had
}

func (p *Panel) drag(r Row, x float64) {
	frac := 0.0
	if r.Control.W > 0 {
		frac = (x - r.Control.X) / r.Control.W
	}
	frac = clamp(frac, 0, 1)
	h, s, v := p.HSV()
	switch r.Name {
	case RowElevation:
		p.target.SetElevation(p.min + frac*(p.max-p.min))
	case RowColor:
		p.setHSV(frac*360, s, v)
	case RowSaturation:
		p.setHSV(h, frac, v)
	case RowBrightness:
		p.setHSV(h, s, frac)
	}
}

// Activate flips a toggle, fires the spin button or collapses via the header.
// Slider and picker rows ignore it.
func (p *Panel) Activate(name string) {
	switch name {
	case RowHeader:
		p.SetCollapsed(!p.collapsed)
	case RowVisibility:
		p.target.SetVisible(!p.target.Visible())
	case RowWireframe:
		p.target.SetWireframe(!p.target.Wireframe())
	case RowSpin:
		p.target.Spin()
	}
}

// Adjust nudges a row by dir steps: elevation by 1/40 of its range (clamped), the colour
// hue by 15°, saturation and brightness by 0.1 (clamped). Toggles and the button treat any
// non-zero dir as Activate.
func (p *Panel) Adjust(name string, dir int) {
	if dir == 0 {
		return
	}
	switch name {
	case RowElevation:
		step := (p.max - p.min) / elevationSteps
		p.target.SetElevation(clamp(p.target.Elevation()+float64(dir)*step, p.min, p.max))
	case RowColor, RowSaturation, RowBrightness:
		h, s, v := p.HSV()
		d := float64(dir)
		switch name {
		case RowColor:
			h += d * hueStep
		case RowSaturation:
			s += d * shadeStep
		default:
			v += d * shadeStep
		}
		p.setHSV(h, s, v)
	default:
		p.Activate(name)
	}
}

// Hue returns the hue of the current colour in degrees, [0, 360).
func (p *Panel) Hue() float64 {
	h, _, _ := p.HSV()
	return h
}

// HSV returns the current colour as hue in degrees [0, 360), saturation and value in [0, 1].
// While the colour is still the one the panel last set, the panel's own components are returned,
// so a grey or black colour keeps the hue it was picked with.
func (p *Panel) HSV() (h, s, v float64) {
	hex := p.target.Color()
	if hex != "" && hex == p.last.hex {
		return p.last.h, p.last.s, p.last.v
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 1, 1
	}
	return c.Hsv()
}

func (p *Panel) setHSV(h, s, v float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v = clamp(s, 0, 1), clamp(v, 0, 1)
	hex := colorful.Hsv(h, s, v).Clamped().Hex()
	if p.target.SetColor(hex) == nil {
		p.last = hsv{h: h, s: s, v: v, hex: hex}
	}
}

// Fraction returns how far along its control a slider or picker row is, in [0, 1].
func (p *Panel) Fraction(name string) float64 {
	switch name {
	case RowElevation:
		if p.max == p.min {
			return 0
		}
		return clamp((p.target.Elevation()-p.min)/(p.max-p.min), 0, 1)
	case RowColor:
		return p.Hue() / 360
	case RowSaturation:
		_, s, _ := p.HSV()
		return s
	case RowBrightness:
		_, _, v := p.HSV()
		return v
	}
	return 0
}

// On reports the state of a toggle row, or whether the spin is running for the button.
func (p *Panel) On(name string) bool {
	switch name {
	case RowVisibility:
		return p.target.Visible()
	case RowWireframe:
		return p.target.Wireframe()
	case RowSpin:
		return p.target.Spinning()
	}
	return false
}

// Value returns the text shown in a row's control.
func (p *Panel) Value(name string) string {
	switch name {
	case RowElevation:
		v := math.Round(p.target.Elevation()*elevationDecimals) / elevationDecimals
		return strconv.FormatFloat(v, 'f', -1, 64)
	case RowVisibility, RowWireframe:
		if p.On(name) {
			return "on"
		}
		return "off"
	case RowColor:
		return p.target.Color()
	case RowSaturation:
		_, s, _ := p.HSV()
		return strconv.Itoa(int(math.Round(s*100))) + "%"
	case RowBrightness:
		_, _, v := p.HSV()
		return strconv.Itoa(int(math.Round(v*100))) + "%"
	case RowSpin:
		if p.target.Spinning() {
			return "spinning"
		}
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

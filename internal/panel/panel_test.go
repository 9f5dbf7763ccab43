package panel

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

type fakeTarget struct {
	elevation float64
	visible   bool
	wireframe bool
	color     string
	spinning  bool
	spins     int
}

func newFake() *fakeTarget {
	return &fakeTarget{visible: true, color: "#ff0000"}
}

func (f *fakeTarget) Elevation() float64 { return f.elevation }
func (f *fakeTarget) SetElevation(v float64) { f.elevation = v }
func (f *fakeTarget) Visible() bool { return f.visible }
func (f *fakeTarget) SetVisible(v bool) { f.visible = v }
func (f *fakeTarget) Wireframe() bool { return f.wireframe }
func (f *fakeTarget) SetWireframe(v bool) { f.wireframe = v }
func (f *fakeTarget) Color() string { return f.color }
func (f *fakeTarget) Spinning() bool { return f.spinning }

func (f *fakeTarget) SetColor(hex string) error {
	if _, err := colorful.Hex(hex); err != nil {
		return errors.New("bad colour")
	}
	f.color = hex
	return nil
}

func (f *fakeTarget) Spin() bool {
	if f.spinning {
		return false
	}
	f.spinning = true
	f.spins++
	return true
}

func rowCenter(t *testing.T, p *Panel, name string) (float64, float64) {
	t.Helper()
	for _, r := range p.Rows() {
		if r.Name == name {
			return r.Control.X + r.Control.W/2, r.Control.Y + r.Control.H/2
		}
	}
	t.Fatalf("row %q not shown", name)
	return 0, 0
}

func controlOf(t *testing.T, p *Panel, name string) Rect {
	t.Helper()
	for _, r := range p.Rows() {
		if r.Name == name {
			return r.Control
		}
	}
	t.Fatalf("row %q not shown", name)
	return Rect{}
}

func TestPanel_SliderStaysInRange(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)
	c := controlOf(t, p, RowElevation)
	y := c.Y + 1

	if !p.Press(c.X+c.W/2, y) {
		t.Fatal("Press on slider not consumed")
	}
	if math.Abs(f.elevation) > 1e-9 {
		t.Errorf("elevation at centre = %v, want 0", f.elevation)
	}
	if !p.Capturing() {
		t.Fatal("slider did not capture pointer")
	}

	tests := []struct {
		x    float64
		want float64
	}{
		{c.X - 500, -200},
		{c.X + c.W + 500, 200},
		{c.X + c.W/4, -100},
	}
	for _, tt := range tests {
		// Dragging works even when the pointer leaves the row.
		p.Drag(tt.x, y+400)
		if math.Abs(f.elevation-tt.want) > 1e-9 {
			t.Errorf("Drag(%v) elevation = %v, want %v", tt.x, f.elevation, tt.want)
		}
	}

	if !p.Release() {
		t.Error("Release() = false while capturing")
	}
	if p.Drag(c.X, y) {
		t.Error("Drag after Release = true")
	}
}

func TestPanel_Toggles(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)

	x, y := rowCenter(t, p, RowVisibility)
	p.Press(x, y)
	if f.visible {
		t.Error("visibility not toggled off")
	}
	x, y = rowCenter(t, p, RowWireframe)
	p.Press(x, y)
	if !f.wireframe {
		t.Error("wireframe not toggled on")
	}
	if p.Value(RowWireframe) != "on" || p.Value(RowVisibility) != "off" {
		t.Errorf("values = %q, %q", p.Value(RowWireframe), p.Value(RowVisibility))
	}
	if p.Capturing() {
		t.Error("toggle captured pointer")
	}
}

func TestPanel_SpinButton(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)
	x, y := rowCenter(t, p, RowSpin)
	p.Press(x, y)
	p.Press(x, y)
	if f.spins != 1 {
		t.Errorf("spins = %d, want 1", f.spins)
	}
	if !p.On(RowSpin) || p.Value(RowSpin) != "spinning" {
		t.Errorf("spin row state = %v, %q", p.On(RowSpin), p.Value(RowSpin))
	}
}

func TestPanel_ColorPicker(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)
	c := controlOf(t, p, RowColor)

	p.Press(c.X+c.W/3, c.Y+1)
	if f.color != "#00ff00" {
		t.Errorf("colour at 1/3 = %q, want #00ff00", f.color)
	}
	if got := p.Fraction(RowColor); math.Abs(got-1.0/3) > 1e-6 {
		t.Errorf("Fraction(color) = %v, want 1/3", got)
	}
	p.Release()

	p.Adjust(RowColor, -8)
	if f.color != "#ff0000" {
		t.Errorf("colour after -120° = %q, want #ff0000", f.color)
	}
}

func TestPanel_AdjustElevationClamps(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)
	p.Adjust(RowElevation, 1)
	if f.elevation != 10 {
		t.Errorf("elevation = %v, want 10", f.elevation)
	}
	p.Adjust(RowElevation, 100)
	if f.elevation != 200 {
		t.Errorf("elevation = %v, want 200", f.elevation)
	}
	p.Adjust(RowElevation, -1000)
	if f.elevation != -200 {
		t.Errorf("elevation = %v, want -200", f.elevation)
	}
	if p.Fraction(RowElevation) != 0 {
		t.Errorf("Fraction = %v, want 0", p.Fraction(RowElevation))
	}
}

func TestPanel_CollapseAndOutsidePress(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)
	p.Layout(500, 0, 280, 30)

	if p.Press(10, 10) {
		t.Error("press outside the panel was consumed")
	}

	x, y := rowCenter(t, p, RowHeader)
	p.Press(x, y)
	if !p.Collapsed() || len(p.Rows()) != 1 {
		t.Fatalf("header press did not collapse: %d rows", len(p.Rows()))
	}
	if b := p.Bounds(); b.H != 30 {
		t.Errorf("collapsed height = %v, want 30", b.H)
	}
	// Where the visibility row was is now outside the panel.
	if p.Press(600, 75) {
		t.Error("press below collapsed panel was consumed")
	}
	if !f.visible {
		t.Error("hidden row still reacted")
	}

	p.Activate(RowHeader)
	if p.Collapsed() {
		t.Error("Activate(header) did not expand")
	}
}

func TestPanel_LabelPressDoesNotCapture(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)
	for _, r := range p.Rows() {
		if r.Name != RowElevation {
			continue
		}
		if !p.Press(r.Bounds.X+1, r.Bounds.Y+1) {
			t.Fatal("press on label not consumed")
		}
	}
	if p.Capturing() || f.elevation != 0 {
		t.Errorf("label press changed slider: capturing=%v elevation=%v", p.Capturing(), f.elevation)
	}
}

func TestPanel_SaturationAndBrightness(t *testing.T) {
	f := newFake()
	p := New(f, -200, 200)

	tests := []struct {
		name string
		act  func()
		want string
	}{
		{"half saturation", func() {
			c := controlOf(t, p, RowSaturation)
			p.Press(c.X+c.W/2, c.Y+1)
			p.Release()
		}, "#ff8080"},
		{"half brightness", func() {
			c := controlOf(t, p, RowBrightness)
			p.Press(c.X+c.W/2, c.Y+1)
			p.Release()
		}, "#804040"},
		{"black keeps hue", func() { p.Adjust(RowBrightness, -10) }, "#000000"},
		{"hue change while black", func() { p.Adjust(RowColor, 8) }, "#000000"},
		{"brightness back up", func() { p.Adjust(RowBrightness, 10) }, "#80ff80"},
	}
	for _, tt := range tests {
		tt.act()
		if f.color != tt.want {
			t.Errorf("%s: colour = %q, want %q", tt.name, f.color, tt.want)
		}
	}
	if got := p.Hue(); math.Abs(got-120) > 1e-6 {
		t.Errorf("Hue() = %v, want 120", got)
	}
	if got := p.Value(RowSaturation); got != "50%" {
		t.Errorf("Value(saturation) = %q, want 50%%", got)
	}
	if got := p.Fraction(RowBrightness); got != 1 {
		t.Errorf("Fraction(brightness) = %v, want 1", got)
	}

	f.color = "#0000ff"
	if h, s, v := p.HSV(); math.Abs(h-240) > 1e-6 || s != 1 || v != 1 {
		t.Errorf("HSV() after external change = (%v, %v, %v), want (240, 1, 1)", h, s, v)
	}
}

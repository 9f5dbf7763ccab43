package debug

import (
	"fmt"
	"runtime"

	"cube-viewer/internal/theme"
	"cube-viewer/internal/ui"
	"cube-viewer/internal/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInterval: only refresh the FPS/memory text every N frames to reduce allocations.
const updateInterval = 30

// Debug draws the HUD in the top-left corner: FPS, heap size and the current view state.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowState    bool

	state func() view.State
	style *view.Style
	face  *ui.Face

	color      rl.Color
	fontSize   int32
	padding    int32
	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns a HUD styled by the #hud rule of sheet. state and style feed the state lines.
func New(sheet *theme.Sheet, state func() view.State, style *view.Style) *Debug {
	st := sheet.Resolve("hud")
	return &Debug{
		state:    state,
		style:    style,
		color:    rl.NewColor(st.Color.R, st.Color.G, st.Color.B, st.Color.A),
		fontSize: st.FontSize,
		padding:  st.Padding,
	}
}

// SetFace sets the font used for the HUD. nil uses raylib's default font.
func (d *Debug) SetFace(f *ui.Face) {
	d.face = f
}

// Lines returns the HUD text for the enabled overlays. The FPS and memory lines are
// recomputed every updateInterval frames.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	var out []string
	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", fps)
		}
		out = append(out, d.fpsText)
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		out = append(out, d.memText)
	}
	if d.ShowState && d.state != nil {
		s := d.state()
		out = append(out, d.style.Transform.String())
		out = append(out, fmt.Sprintf("size %.1fpx  drag %v", s.Size, s.Dragging))
		classes := "-"
		if cl := d.style.Classes(); len(cl) > 0 {
			classes = fmt.Sprint(cl)
		}
		out = append(out, fmt.Sprintf("display %s  background %s  class %s", d.style.Display(), d.style.Background, classes))
	}
	return out
}

// Draw renders the enabled overlays. Call after the scene so it sits on top.
func (d *Debug) Draw() {
	y := d.padding
	for _, line := range d.Lines(rl.GetFPS()) {
		d.face.Draw(line, d.padding, y, d.fontSize, d.color)
		y += d.fontSize + 4
	}
}

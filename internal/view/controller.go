package view

import (
	"fmt"

	"cube-viewer/internal/spin"

	"github.com/lucasb-eyer/go-colorful"
)

// Logger receives the controller's event log. *logger.Logger implements it.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Controller owns one cube's State and applies every input to it, re-rendering into the
// Element after each change. All methods must be called from the goroutine that steps the
// scheduler passed to NewController.
type Controller struct {
	opts  Options
	state State
	el    Element
	spin  *spin.Machine
	log   Logger
}

// NewController creates a controller for el and applies the initial transform and appearance.
// log may be nil.
func NewController(opts Options, el Element, sched spin.Scheduler, log Logger) *Controller {
	c := &Controller{
		opts:  opts,
		state: NewState(opts),
		el:    el,
		log:   log,
	}
	if c.log == nil {
		c.log = nopLogger{}
	}
	c.spin = spin.New(sched, opts.SpinDuration, c.spinTick)
	c.spin.OnChange = func(s spin.State) {
		c.log.Logf("spin %s (rotateY %.1f)", s, c.state.RotateY)
	}
	c.Render()
	c.updateAppearance()
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	return c.state
}

// Options returns the tuning the controller was built with.
func (c *Controller) Options() Options {
	return c.opts
}

// Render applies the transform composed from the current state.
func (c *Controller) Render() {
	c.el.SetTransform(c.state.Transform())
}

// PointerDown starts a drag at (x, y).
func (c *Controller) PointerDown(x, y float64) {
	c.state.Dragging = true
	c.state.LastX = x
	c.state.LastY = y
}

// PointerMove rotates by the distance moved since the last event while dragging.
// Horizontal motion turns around Y, vertical motion around X.
func (c *Controller) PointerMove(x, y float64) {
	if !c.state.Dragging {
		return
	}
	dx := x - c.state.LastX
	dy := y - c.state.LastY
	c.state.RotateY += dx * c.state.RotateSpeed
	c.state.RotateX -= dy * c.state.RotateSpeed
	c.state.LastX = x
	c.state.LastY = y
	c.Render()
}

// PointerUp ends a drag. Hosts call it for releases anywhere, including outside the view.
func (c *Controller) PointerUp() {
	c.state.Dragging = false
}

// PointerLeave snaps the rotation back to the rest angles. The drag flag survives unless
// Options.ResetDragOnLeave is set.
func (c *Controller) PointerLeave() {
	c.state.RotateX = c.opts.RestRotateX
	c.state.RotateY = c.opts.RestRotateY
	if c.opts.ResetDragOnLeave {
		c.state.Dragging = false
	}
	c.Render()
}

// Wheel zooms out for a positive delta and in for a negative one. A zero delta is ignored.
func (c *Controller) Wheel(deltaY float64) {
	switch {
	case deltaY > 0:
		c.state.Size *= c.opts.ZoomOutFactor
	case deltaY < 0:
		c.state.Size *= c.opts.ZoomInFactor
	default:
		return
	}
	c.Render()
}

// Touch reports whether the platform's default gesture handling should be suppressed
// for a touch event with the given number of contact points.
func (c *Controller) Touch(points int) bool {
	return points > 1
}

// RotateBy adds degrees to both angles and re-renders.
func (c *Controller) RotateBy(dx, dy float64) {
	c.state.RotateX += dx
	c.state.RotateY += dy
	c.Render()
}

func (c *Controller) Elevation() float64 { return c.state.Elevation }
func (c *Controller) Visible() bool { return c.state.Visible }
func (c *Controller) Wireframe() bool { return c.state.Wireframe }
func (c *Controller) Color() string { return c.state.Color }

// ElevationRange returns the bounds the panel offers for elevation.
func (c *Controller) ElevationRange() (lo, hi float64) {
	return c.opts.ElevationMin, c.opts.ElevationMax
}

// SetElevation moves the cube vertically. The value is not clamped here.
func (c *Controller) SetElevation(v float64) {
	c.state.Elevation = v
	c.Render()
}

func (c *Controller) SetVisible(v bool) {
	c.state.Visible = v
	c.updateAppearance()
}

func (c *Controller) SetWireframe(v bool) {
	c.state.Wireframe = v
	c.updateAppearance()
}

// SetColor sets the fill colour from a #rgb or #rrggbb string. The state is unchanged on error.
func (c *Controller) SetColor(hex string) error {
	col, err := colorful.Hex(hex)
	if err != nil {
		c.log.Logf("color %q rejected", hex)
		return fmt.Errorf("view: color %q: %w", hex, err)
	}
	c.state.Color = col.Hex()
	c.updateAppearance()
	return nil
}

// updateAppearance applies visibility, wireframe and colour. Wireframe and colour are
// not looked at while hidden.
func (c *Controller) updateAppearance() {
	if !c.state.Visible {
		c.el.SetDisplay(false)
		return
	}
	c.el.SetDisplay(true)
	if c.state.Wireframe {
		c.el.SetClass(WireframeClass, true)
		c.el.SetBackground(Transparent)
		return
	}
	c.el.SetClass(WireframeClass, false)
	c.el.SetBackground(c.state.Color)
}

// Spin starts a timed spin. Returns false, changing nothing, if one is already running.
func (c *Controller) Spin() bool {
	return c.spin.Start()
}

// StopSpin ends a running spin early.
func (c *Controller) StopSpin() bool {
	return c.spin.Stop()
}

// Spinning reports whether a spin is in progress.
func (c *Controller) Spinning() bool {
	return c.spin.State() == spin.Spinning
}

// Close cancels any in-flight spin frame and timer.
func (c *Controller) Close() {
	c.spin.Stop()
}

func (c *Controller) spinTick() {
	c.state.RotateY += c.opts.SpinStep
	c.Render()
}

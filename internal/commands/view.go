package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"cube-viewer/internal/view"
)

// Controls is the part of view.Controller the console drives.
type Controls interface {
	Snapshot() view.State
	Spinning() bool
	Spin() bool
	StopSpin() bool
	PointerLeave()
	RotateBy(dx, dy float64)
	Wheel(deltaY float64)
	ElevationRange() (lo, hi float64)
	SetElevation(v float64)
	SetVisible(v bool)
	SetWireframe(v bool)
	SetColor(hex string) error
}

var errArgs = errors.New("wrong number of arguments")

// RegisterView adds the cube commands: spin, stop, reset, rotate, zoom, elevation,
// visible, wireframe, color and status.
func RegisterView(r *Registry, c Controls) {
	r.Register("spin", "spin: start a timed spin", func(*flag.FlagSet) RunFunc {
		return func([]string) (string, error) {
			if !c.Spin() {
				return "already spinning", nil
			}
			return "spinning", nil
		}
	})

	r.Register("stop", "stop: end a running spin", func(*flag.FlagSet) RunFunc {
		return func([]string) (string, error) {
			if !c.StopSpin() {
				return "not spinning", nil
			}
			return "stopped", nil
		}
	})

	r.Register("reset", "reset: return to the rest rotation", func(*flag.FlagSet) RunFunc {
		return func([]string) (string, error) {
			c.PointerLeave()
			return status(c), nil
		}
	})

	r.Register("rotate", "rotate -x DEG -y DEG: add to the rotation angles", func(fs *flag.FlagSet) RunFunc {
		x := fs.Float64("x", 0, "degrees around X")
		y := fs.Float64("y", 0, "degrees around Y")
		return func(args []string) (string, error) {
			if len(args) != 0 {
				return "", errArgs
			}
			c.RotateBy(*x, *y)
			return status(c), nil
		}
	})

	r.Register("zoom", "zoom [-in] [-n N]: zoom out (default) or in, N wheel steps", func(fs *flag.FlagSet) RunFunc {
		in := fs.Bool("in", false, "zoom in instead of out")
		n := fs.Int("n", 1, "number of wheel steps")
		return func(args []string) (string, error) {
			if len(args) != 0 {
				return "", errArgs
			}
			if *n < 1 {
				return "", fmt.Errorf("-n must be at least 1, got %d", *n)
			}
			delta := 1.0
			if *in {
				delta = -1
			}
			for i := 0; i < *n; i++ {
				c.Wheel(delta)
			}
			return status(c), nil
		}
	})

	r.Register("elevation", "elevation VALUE: set elevation within the panel range", func(*flag.FlagSet) RunFunc {
		return func(args []string) (string, error) {
			if len(args) != 1 {
				return "", errArgs
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return "", err
			}
			lo, hi := c.ElevationRange()
			if v < lo || v > hi {
				return "", fmt.Errorf("%v is outside [%v, %v]", v, lo, hi)
			}
			c.SetElevation(v)
			return status(c), nil
		}
	})

	r.Register("visible", "visible on|off: show or hide the cube", func(*flag.FlagSet) RunFunc {
		return func(args []string) (string, error) {
			on, err := onOff(args)
			if err != nil {
				return "", err
			}
			c.SetVisible(on)
			return status(c), nil
		}
	})

	r.Register("wireframe", "wireframe on|off: draw edges only", func(*flag.FlagSet) RunFunc {
		return func(args []string) (string, error) {
			on, err := onOff(args)
			if err != nil {
				return "", err
			}
			c.SetWireframe(on)
			return status(c), nil
		}
	})

	r.Register("color", "color #RRGGBB: set the fill colour", func(*flag.FlagSet) RunFunc {
		return func(args []string) (string, error) {
			if len(args) != 1 {
				return "", errArgs
			}
			if err := c.SetColor(args[0]); err != nil {
				return "", err
			}
			return status(c), nil
		}
	})

	r.Register("status", "status: print the current view state", func(*flag.FlagSet) RunFunc {
		return func([]string) (string, error) {
			return status(c), nil
		}
	})
}

func onOff(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errArgs
	}
	switch strings.ToLower(args[0]) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(args[0])
}

func status(c Controls) string {
	s := c.Snapshot()
	spin := "idle"
	if c.Spinning() {
		spin = "spinning"
	}
	return fmt.Sprintf("%s | size %.1f visible %t wireframe %t color %s | %s",
		s.Transform(), s.Size, s.Visible, s.Wireframe, s.Color, spin)
}

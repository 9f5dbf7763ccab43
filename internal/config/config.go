package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"cube-viewer/internal/logger"
	"cube-viewer/internal/view"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no -config flag is given, relative to the working directory.
const DefaultPath = "config/viewer.yaml"

// Window configures the raylib window.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
	// Font names a TTF/OTF file or a family found under assets/fonts. Empty uses the built-in font.
	Font string `yaml:"font,omitempty"`
}

// View holds the tuning constants of the cube. See view.Options.
type View struct {
	BaseSize         float64       `yaml:"base_size"`
	InitialSize      float64       `yaml:"initial_size"`
	RotateSpeed      float64       `yaml:"rotate_speed"`
	ZoomOutFactor    float64       `yaml:"zoom_out_factor"`
	ZoomInFactor     float64       `yaml:"zoom_in_factor"`
	RestRotateX      float64       `yaml:"rest_rotate_x"`
	RestRotateY      float64       `yaml:"rest_rotate_y"`
	SpinStep         float64       `yaml:"spin_step"`
	SpinDuration     time.Duration `yaml:"spin_duration"`
	ElevationMin     float64       `yaml:"elevation_min"`
	ElevationMax     float64       `yaml:"elevation_max"`
	Color            string        `yaml:"color"`
	ResetDragOnLeave bool          `yaml:"reset_drag_on_leave"`
	// PixelsPerUnit converts view pixels to world units when drawing in 3D.
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// Debug toggles the HUD overlays and the floor grid.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_mem_alloc"`
	ShowState    bool `yaml:"show_state"`
	Grid         bool `yaml:"grid"`
}

// Config is the whole viewer configuration. It is read once at start-up and never written.
type Config struct {
	Window  Window `yaml:"window"`
	View    View   `yaml:"view"`
	Debug   Debug  `yaml:"debug"`
	LogPath string `yaml:"log_path"`
}

// Default returns the stock configuration.
func Default() Config {
	o := view.DefaultOptions()
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Cube", FPS: 60},
		View: View{
			BaseSize:         o.BaseSize,
			InitialSize:      o.InitialSize,
			RotateSpeed:      o.RotateSpeed,
			ZoomOutFactor:    o.ZoomOutFactor,
			ZoomInFactor:     o.ZoomInFactor,
			RestRotateX:      o.RestRotateX,
			RestRotateY:      o.RestRotateY,
			SpinStep:         o.SpinStep,
			SpinDuration:     o.SpinDuration,
			ElevationMin:     o.ElevationMin,
			ElevationMax:     o.ElevationMax,
			Color:            o.Color,
			ResetDragOnLeave: o.ResetDragOnLeave,
			PixelsPerUnit:    100,
		},
		Debug:   Debug{ShowState: true, Grid: true},
		LogPath: logger.DefaultPath,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not an error.
// On any other failure the defaults are returned together with the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot work with.
func (c Config) Validate() error {
	v := c.View
	switch {
	case v.BaseSize <= 0:
		return fmt.Errorf("view.base_size must be positive, got %v", v.BaseSize)
	case v.InitialSize <= 0:
		return fmt.Errorf("view.initial_size must be positive, got %v", v.InitialSize)
	case v.ZoomOutFactor <= 0 || v.ZoomInFactor <= 0:
		return fmt.Errorf("view zoom factors must be positive, got %v and %v", v.ZoomOutFactor, v.ZoomInFactor)
	case v.SpinDuration <= 0:
		return fmt.Errorf("view.spin_duration must be positive, got %v", v.SpinDuration)
	case v.ElevationMin > v.ElevationMax:
		return fmt.Errorf("view.elevation_min %v is above elevation_max %v", v.ElevationMin, v.ElevationMax)
	case v.PixelsPerUnit <= 0:
		return fmt.Errorf("view.pixels_per_unit must be positive, got %v", v.PixelsPerUnit)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := colorful.Hex(v.Color); err != nil {
		return fmt.Errorf("view.color %q is not a hex colour", v.Color)
	}
	return nil
}

// Options converts the view section for view.NewController. The colour is normalised to
// lower-case #rrggbb when it parses.
func (v View) Options() view.Options {
	color := v.Color
	if c, err := colorful.Hex(color); err == nil {
		color = c.Hex()
	}
	return view.Options{
		BaseSize:         v.BaseSize,
		InitialSize:      v.InitialSize,
		RotateSpeed:      v.RotateSpeed,
		ZoomOutFactor:    v.ZoomOutFactor,
		ZoomInFactor:     v.ZoomInFactor,
		RestRotateX:      v.RestRotateX,
		RestRotateY:      v.RestRotateY,
		SpinStep:         v.SpinStep,
		SpinDuration:     v.SpinDuration,
		ElevationMin:     v.ElevationMin,
		ElevationMax:     v.ElevationMax,
		Color:            color,
		ResetDragOnLeave: v.ResetDragOnLeave,
	}
}

package view

import "time"

// Options holds the tuning constants of the view. Zoom factors are deliberately not reciprocal by
// default (1.1 out, 0.9 in), so symmetric scrolling slowly shrinks the cube; set them to 1.1 and
// 1/1.1 to remove the drift.
type Options struct {
	BaseSize      float64
	InitialSize   float64
	RotateSpeed   float64
	ZoomOutFactor float64
	ZoomInFactor  float64
	RestRotateX   float64
	RestRotateY   float64
	SpinStep      float64 // degrees per frame
	SpinDuration  time.Duration
	ElevationMin  float64
	ElevationMax  float64
	Color         string
	// ResetDragOnLeave also ends an in-progress drag when the pointer leaves the view.
	// Off by default: re-entering with the button held resumes from the stale coordinates.
	ResetDragOnLeave bool
}

// DefaultOptions returns the stock tuning: 200-unit cube at (-30°, 30°), red, 2 s spin.
func DefaultOptions() Options {
	return Options{
		BaseSize:      200,
		InitialSize:   200,
		RotateSpeed:   0.2,
		ZoomOutFactor: 1.1,
		ZoomInFactor:  0.9,
		RestRotateX:   -30,
		RestRotateY:   30,
		SpinStep:      1,
		SpinDuration:  2000 * time.Millisecond,
		ElevationMin:  -200,
		ElevationMax:  200,
		Color:         "#ff0000",
	}
}

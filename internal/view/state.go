package view

// State is the mutable record of the cube's rotation, size, elevation and appearance,
// plus the pointer-drag bookkeeping. Spin progress lives in the controller's spin machine.
type State struct {
	RotateX   float64
	RotateY   float64
	Size      float64
	BaseSize  float64
	Elevation float64
	Visible   bool
	Wireframe bool
	Color     string

	RotateSpeed float64

	Dragging bool
	LastX    float64
	LastY    float64
}

// NewState returns the load-time state for opts.
func NewState(opts Options) State {
	return State{
		RotateX:     opts.RestRotateX,
		RotateY:     opts.RestRotateY,
		Size:        opts.InitialSize,
		BaseSize:    opts.BaseSize,
		Visible:     true,
		Color:       opts.Color,
		RotateSpeed: opts.RotateSpeed,
	}
}

// Scale is always derived from Size; it is never stored.
func (s State) Scale() float64 {
	return s.Size / s.BaseSize
}

// Transform composes the current transform.
func (s State) Transform() Transform {
	return Transform{
		Scale:      s.Scale(),
		RotateX:    s.RotateX,
		RotateY:    s.RotateY,
		TranslateY: s.Elevation,
	}
}

package main

import (
	"cube-viewer/internal/panel"
	"cube-viewer/internal/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBinding maps a key to a panel row. dir 0 activates the row, otherwise it adjusts it.
type keyBinding struct {
	key int32
	row string
	dir int
}

var keyBindings = []keyBinding{
	{rl.KeySpace, panel.RowSpin, 0},
	{rl.KeyW, panel.RowWireframe, 0},
	{rl.KeyV, panel.RowVisibility, 0},
	{rl.KeyTab, panel.RowHeader, 0},
	{rl.KeyUp, panel.RowElevation, 1},
	{rl.KeyDown, panel.RowElevation, -1},
	{rl.KeyRight, panel.RowColor, 1},
	{rl.KeyLeft, panel.RowColor, -1},
}

// frameInput is the pointer, touch and key state polled from raylib for one frame.
type frameInput struct {
	touches  int
	onScreen bool
	x, y     float64
	moved    bool
	pressed  bool
	down     bool
	released bool
	wheel    float32
	keys     []int32
}

func pollInput() frameInput {
	pos := rl.GetMousePosition()
	d := rl.GetMouseDelta()
	f := frameInput{
		touches:  int(rl.GetTouchPointCount()),
		onScreen: rl.IsCursorOnScreen(),
		x:        float64(pos.X),
		y:        float64(pos.Y),
		moved:    d.X != 0 || d.Y != 0,
		pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		wheel:    rl.GetMouseWheelMove(),
	}
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			f.keys = append(f.keys, b.key)
		}
	}
	return f
}

// input turns raylib mouse, touch and keyboard state into controller and panel calls.
type input struct {
	ctrl     *view.Controller
	panel    *panel.Panel
	onScreen bool
}

func newInput(ctrl *view.Controller, p *panel.Panel) *input {
	return &input{ctrl: ctrl, panel: p, onScreen: true}
}

// Update polls input once per frame. While the console is open only the cursor leaving the
// window and the button release are applied, so no drag or slider capture outlives the console.
func (in *input) Update(consoleOpen bool) {
	in.apply(pollInput(), consoleOpen)
}

// apply handles one frame of input. Frames with more than one touch point are ignored entirely.
func (in *input) apply(f frameInput, consoleOpen bool) {
	if in.ctrl.Touch(f.touches) {
		return
	}

	if in.onScreen && !f.onScreen {
		in.ctrl.PointerLeave()
	}
	in.onScreen = f.onScreen

	if !consoleOpen {
		if f.pressed && !in.panel.Press(f.x, f.y) {
			in.ctrl.PointerDown(f.x, f.y)
		}
		captured := f.down && in.panel.Drag(f.x, f.y)
		if !captured && f.moved {
			in.ctrl.PointerMove(f.x, f.y)
		}
	}
	if f.released {
		in.panel.Release()
		in.ctrl.PointerUp()
	}
	if consoleOpen {
		return
	}

	// raylib reports wheel-up as positive; the controller takes DOM deltaY (down positive).
	if f.wheel != 0 {
		in.ctrl.Wheel(float64(-f.wheel))
	}

	for _, k := range f.keys {
		for _, b := range keyBindings {
			if b.key != k {
				continue
			}
			if b.dir == 0 {
				in.panel.Activate(b.row)
			} else {
				in.panel.Adjust(b.row, b.dir)
			}
		}
	}
}

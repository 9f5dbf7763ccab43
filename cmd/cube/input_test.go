package main

import (
	"testing"

	"cube-viewer/internal/loop"
	"cube-viewer/internal/panel"
	"cube-viewer/internal/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestInput() (*input, *view.Controller, *panel.Panel) {
	ctrl := view.NewController(view.DefaultOptions(), &view.Style{}, loop.New(), nil)
	p := panel.New(ctrl, -200, 200)
	p.Layout(1000, 0, panel.DefaultWidth, panel.DefaultRowHeight)
	return newInput(ctrl, p), ctrl, p
}

func TestInput_ReleaseWhileConsoleOpen(t *testing.T) {
	t.Run("cube drag", func(t *testing.T) {
		in, ctrl, _ := newTestInput()
		in.apply(frameInput{onScreen: true, x: 100, y: 100, pressed: true, down: true}, false)
		if !ctrl.Snapshot().Dragging {
			t.Fatal("press did not start a drag")
		}
		in.apply(frameInput{onScreen: true, x: 100, y: 100, released: true}, true)
		if ctrl.Snapshot().Dragging {
			t.Error("release with the console open did not end the drag")
		}
	})

	t.Run("slider capture", func(t *testing.T) {
		in, ctrl, p := newTestInput()
		var c panel.Rect
		for _, r := range p.Rows() {
			if r.Name == panel.RowElevation {
				c = r.Control
			}
		}
		in.apply(frameInput{onScreen: true, x: c.X + 1, y: c.Y + 1, pressed: true, down: true}, false)
		if !p.Capturing() {
			t.Fatal("slider press did not capture")
		}
		in.apply(frameInput{onScreen: true, x: c.X + 1, y: c.Y + 1, released: true}, true)
		if p.Capturing() {
			t.Error("release with the console open left the slider captured")
		}
		before := ctrl.Elevation()
		in.apply(frameInput{onScreen: true, x: c.X + c.W - 1, y: c.Y + 1, moved: true}, false)
		if ctrl.Elevation() != before {
			t.Errorf("elevation moved after release: %v -> %v", before, ctrl.Elevation())
		}
	})
}

func TestInput_ConsoleOpenIgnoresPointerAndKeys(t *testing.T) {
	in, ctrl, _ := newTestInput()
	in.apply(frameInput{onScreen: true, x: 10, y: 10, pressed: true, down: true, wheel: 1, keys: []int32{rl.KeyW}}, true)
	s := ctrl.Snapshot()
	if s.Dragging || s.Size != 200 || ctrl.Wireframe() {
		t.Errorf("console-open frame reached the cube: %+v wireframe=%v", s, ctrl.Wireframe())
	}
}

func TestInput_Frame(t *testing.T) {
	in, ctrl, _ := newTestInput()

	in.apply(frameInput{onScreen: true, x: 10, y: 10, pressed: true, down: true}, false)
	in.apply(frameInput{onScreen: true, x: 20, y: 10, down: true, moved: true}, false)
	if got := ctrl.Snapshot().RotateY; got != 32 {
		t.Errorf("RotateY after drag = %v, want 32", got)
	}
	in.apply(frameInput{onScreen: true, released: true}, false)
	if ctrl.Snapshot().Dragging {
		t.Error("release did not end the drag")
	}

	in.apply(frameInput{onScreen: true, wheel: 1}, false)
	if got := ctrl.Snapshot().Size; got != 180 {
		t.Errorf("Size after wheel up = %v, want 180", got)
	}

	in.apply(frameInput{onScreen: true, keys: []int32{rl.KeyW}}, false)
	if !ctrl.Wireframe() {
		t.Error("W did not toggle wireframe")
	}

	in.apply(frameInput{onScreen: false}, false)
	if s := ctrl.Snapshot(); s.RotateX != -30 || s.RotateY != 30 {
		t.Errorf("rotation after leaving = (%v, %v), want (-30, 30)", s.RotateX, s.RotateY)
	}

	in.apply(frameInput{touches: 2, onScreen: true, x: 50, y: 50, pressed: true, down: true}, false)
	if ctrl.Snapshot().Dragging {
		t.Error("multi-touch frame started a drag")
	}
}

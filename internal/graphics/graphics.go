package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window opened by Run.
type Window struct {
	Width  int32
	Height int32
	Title  string
	FPS    int32
}

// Background is the clear colour behind the scene.
var Background = rl.NewColor(24, 24, 28, 255)

// Run opens the window and runs the main loop. Each frame it calls update with the time since
// the window opened (input, timers, animation), then clears the screen and calls draw.
// shutdown, if set, runs while the GL context still exists so GPU resources can be released.
// Escape closes the window.
func Run(w Window, update func(now time.Duration), draw func(), shutdown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.FPS)

	for !rl.WindowShouldClose() {
		update(time.Duration(rl.GetTime() * float64(time.Second)))

		rl.BeginDrawing()
		rl.ClearBackground(Background)
		draw()
		rl.EndDrawing()
	}

	if shutdown != nil {
		shutdown()
	}
}

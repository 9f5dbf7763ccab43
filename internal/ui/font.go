package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadSize is the glyph size fonts are rasterized at; smaller sizes are scaled down.
const loadSize = 48

// Face draws text with a loaded font, or raylib's default font when none is loaded.
// The zero value and a nil *Face both use the default font.
type Face struct {
	font rl.Font
}

// LoadFace loads the font file at path. An empty path gives the default font.
// Call after the window is open.
func LoadFace(path string) *Face {
	if path == "" {
		return &Face{}
	}
	return &Face{font: rl.LoadFontEx(path, loadSize, nil)}
}

func (f *Face) loaded() bool {
	return f != nil && f.font.Texture.ID != 0
}

// Draw draws text with its top-left corner at (x, y).
func (f *Face) Draw(text string, x, y, size int32, col rl.Color) {
	if f.loaded() {
		rl.DrawTextEx(f.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
		return
	}
	rl.DrawText(text, x, y, size, col)
}

// Measure returns the width of text in pixels.
func (f *Face) Measure(text string, size int32) int32 {
	if f.loaded() {
		return int32(rl.MeasureTextEx(f.font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}

// Unload releases the font texture.
func (f *Face) Unload() {
	if f.loaded() {
		rl.UnloadFont(f.font)
		f.font = rl.Font{}
	}
}

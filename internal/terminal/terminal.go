package terminal

import (
	"image/color"
	"unicode/utf8"

	"cube-viewer/internal/commands"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/theme"
	"cube-viewer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	prompt = "> "
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	maxLineLen       = 200
)

// Terminal is the command console at the bottom of the screen, toggled with the grave key (`).
// When open it captures the keyboard; every submitted line is run through the command registry
// and both the line and its output (or error) go to the log.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	face     *ui.Face

	bar        rl.Color
	line       rl.Color
	text       rl.Color
	history    rl.Color
	barHeight  int32
	padding    int32
	fontSize   int32
	lineHeight int32
}

// New returns a closed Terminal styled by the #console rule of sheet.
func New(log *logger.Logger, reg *commands.Registry, sheet *theme.Sheet) *Terminal {
	st := sheet.Resolve("console")
	bg := toRL(st.Background)
	hist := bg
	hist.A = 240
	h := st.Height
	if h <= 0 {
		h = st.FontSize + 2*st.Padding
	}
	return &Terminal{
		log:        log,
		reg:        reg,
		bar:        bg,
		line:       toRL(st.Border),
		text:       toRL(st.Color),
		history:    hist,
		barHeight:  h,
		padding:    st.Padding,
		fontSize:   st.FontSize,
		lineHeight: st.FontSize + 4,
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFace sets the font used to draw the console. nil uses raylib's default font.
func (t *Terminal) SetFace(f *ui.Face) {
	t.face = f
}

// Update handles the toggle key and, when open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		// drain the toggle character so it does not end up in the buffer
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.log.Log(prompt + line)
		out, err := t.reg.ExecuteLine(line)
		if out != "" {
			t.log.Log(out)
		}
		if err != nil {
			t.log.Log("error: " + err.Error())
		}
	}
}

// Draw draws the input bar at the bottom and the most recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - t.barHeight

	histHeight := maxLinesOnScreen * t.lineHeight
	histY := barY - histHeight
	if histY < 0 {
		histHeight = barY
		histY = 0
	}
	if histHeight > 0 {
		rl.DrawRectangle(0, histY, screenW, histHeight, t.history)
	}
	for i, line := range t.log.Tail(maxLinesOnScreen) {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.face.Draw(line, t.padding, histY+int32(i)*t.lineHeight+t.padding, t.fontSize, t.text)
	}

	rl.DrawRectangle(0, barY, screenW, t.barHeight, t.bar)
	rl.DrawRectangle(0, barY, screenW, 1, t.line)
	t.face.Draw(prompt+t.inputBuf+"|", t.padding, barY+t.padding, t.fontSize, rl.White)
}

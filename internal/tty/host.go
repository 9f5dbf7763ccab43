package tty

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"cube-viewer/internal/commands"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/loop"
	"cube-viewer/internal/panel"
	"cube-viewer/internal/theme"
	"cube-viewer/internal/view"

	"github.com/gdamore/tcell/v2"
)

// Pointer positions are reported to the controller in pixel-like units so drag speeds match the window frontend.
const (
	CellPixelsX = 8
	CellPixelsY = 16

	// DefaultFrameInterval paces frames and animation at about 30 per second.
	DefaultFrameInterval = 33 * time.Millisecond
)

// Viewer groups the cube state a Host drives.
type Viewer struct {
	Ctrl  *view.Controller
	Style *view.Style
	Sched *loop.Loop
	Reg   *commands.Registry
	Log   *logger.Logger
}

// Host runs the cube in a terminal: tcell events feed the controller and panel, a ticker
// steps the scheduler and redraws. All viewer state is touched from the Run goroutine only.
type Host struct {
	FrameInterval time.Duration

	screen   tcell.Screen
	v        Viewer
	panel    *panel.Panel
	renderer *Renderer
	pv       *PanelView
	canvas   *Canvas

	pressed bool
	typing  bool
	input   string
	status  string
}

// New returns a host drawing to screen. The screen is initialised by Run.
func New(screen tcell.Screen, v Viewer, sheet *theme.Sheet, pxPerUnit float64) *Host {
	lo, hi := v.Ctrl.ElevationRange()
	p := panel.New(v.Ctrl, lo, hi)
	return &Host{
		FrameInterval: DefaultFrameInterval,
		screen:        screen,
		v:             v,
		panel:         p,
		renderer:      NewRenderer(sheet, v.Ctrl.Options().BaseSize, pxPerUnit),
		pv:            NewPanelView(p, sheet),
		canvas:        NewCanvas(0, 0),
	}
}

// Panel returns the control panel.
func (h *Host) Panel() *panel.Panel {
	return h.panel
}

// Run initialises the screen and processes events and frames until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("tty: screen start failed: %w", err)
	}
	defer h.screen.Fini()
	h.screen.EnableMouse()
	h.screen.EnableFocus()
	h.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(h.FrameInterval)
	defer ticker.Stop()
	start := time.Now()
	h.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			h.v.Sched.Advance(time.Since(start))
			if h.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.v.Sched.Step(time.Since(start))
			h.Draw()
		}
	}
}

// Handle applies one event. It returns true when the user asked to quit.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.layout()
	case *tcell.EventFocus:
		if !ev.Focused {
			h.v.Ctrl.PointerLeave()
		}
	case *tcell.EventMouse:
		h.mouse(ev)
	case *tcell.EventKey:
		if h.typing {
			h.promptKey(ev)
			return false
		}
		return h.key(ev)
	}
	return false
}

func (h *Host) layout() {
	w, _ := h.screen.Size()
	h.pv.Layout(w)
}

func (h *Host) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()
	fx, fy := float64(x), float64(y)
	px, py := fx*CellPixelsX, fy*CellPixelsY

	switch {
	case btns&tcell.WheelUp != 0:
		h.v.Ctrl.Wheel(-1)
	case btns&tcell.WheelDown != 0:
		h.v.Ctrl.Wheel(1)
	}

	down := btns&tcell.Button1 != 0
	switch {
	case down && !h.pressed:
		if !h.panel.Press(fx, fy) {
			h.v.Ctrl.PointerDown(px, py)
		}
	case down:
		if !h.panel.Drag(fx, fy) {
			h.v.Ctrl.PointerMove(px, py)
		}
	case h.pressed:
		h.panel.Release()
		h.v.Ctrl.PointerUp()
	default:
		h.v.Ctrl.PointerMove(px, py)
	}
	h.pressed = down
}

func (h *Host) key(ev *tcell.EventKey) bool {
	h.status = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		h.panel.Activate(panel.RowHeader)
	case tcell.KeyUp:
		h.panel.Adjust(panel.RowElevation, 1)
	case tcell.KeyDown:
		h.panel.Adjust(panel.RowElevation, -1)
	case tcell.KeyRight:
		h.panel.Adjust(panel.RowColor, 1)
	case tcell.KeyLeft:
		h.panel.Adjust(panel.RowColor, -1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			h.panel.Activate(panel.RowSpin)
		case 'w':
			h.panel.Activate(panel.RowWireframe)
		case 'v':
			h.panel.Activate(panel.RowVisibility)
		case '+', '=':
			h.v.Ctrl.Wheel(-1)
		case '-', '_':
			h.v.Ctrl.Wheel(1)
		case ':':
			h.typing = true
			h.input = ""
		}
	}
	return false
}

// promptKey edits the command line opened with ':'.
func (h *Host) promptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.typing = false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(h.input) > 0 {
			_, size := utf8.DecodeLastRuneInString(h.input)
			h.input = h.input[:len(h.input)-size]
		}
	case tcell.KeyEnter:
		h.typing = false
		h.exec(h.input)
	case tcell.KeyRune:
		h.input += string(ev.Rune())
	}
}

func (h *Host) exec(line string) {
	if line == "" {
		return
	}
	h.v.Log.Log(":" + line)
	out, err := h.v.Reg.ExecuteLine(line)
	if err != nil {
		h.status = "error: " + err.Error()
		h.v.Log.Log(h.status)
		return
	}
	h.status = out
	if out != "" {
		h.v.Log.Log(out)
	}
}

// StatusLine returns the text of the bottom line: the command being typed, the last
// command output, or the current transform.
func (h *Host) StatusLine() string {
	if h.typing {
		return ":" + h.input
	}
	if h.status != "" {
		return h.status
	}
	state := "idle"
	if h.v.Ctrl.Spinning() {
		state = "spinning"
	}
	return h.v.Style.Transform.String() + "  " + state + "  (:help, q quits)"
}

// Draw rasterizes the cube and panel and shows them with the status line.
func (h *Host) Draw() {
	w, ht := h.screen.Size()
	if w != h.canvas.W || ht-1 != h.canvas.H {
		h.canvas.Resize(w, ht-1)
	} else {
		h.canvas.Clear()
	}
	h.pv.Layout(w)
	h.renderer.Draw(h.canvas, h.v.Style)
	h.pv.Draw(h.canvas)

	h.screen.Clear()
	for y := 0; y < h.canvas.H; y++ {
		for x := 0; x < h.canvas.W; x++ {
			cell := h.canvas.At(x, y)
			if cell.Rune == 0 {
				continue
			}
			fg := tcell.NewRGBColor(int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B))
			h.screen.SetContent(x, y, cell.Rune, nil, tcell.StyleDefault.Foreground(fg))
		}
	}
	status := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range h.StatusLine() {
		if x >= w {
			break
		}
		h.screen.SetContent(x, ht-1, r, nil, status)
		x++
	}
	h.screen.Show()
}

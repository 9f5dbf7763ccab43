package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cube-viewer/internal/commands"
	"cube-viewer/internal/config"
	"cube-viewer/internal/debug"
	"cube-viewer/internal/env"
	"cube-viewer/internal/fonts"
	"cube-viewer/internal/graphics"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/loop"
	"cube-viewer/internal/panel"
	"cube-viewer/internal/scene"
	"cube-viewer/internal/terminal"
	"cube-viewer/internal/theme"
	"cube-viewer/internal/ui"
	"cube-viewer/internal/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	_ = env.Load(".env")
	configPath := flag.String("config", env.Get(env.ConfigVar, config.DefaultPath), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	log := logger.New(cfg.LogPath, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Logf("using defaults: %v", err)
	}

	sheet := theme.Default()
	sched := loop.New()
	style := &view.Style{}
	ctrl := view.NewController(cfg.View.Options(), style, sched, log)
	defer ctrl.Close()

	lo, hi := ctrl.ElevationRange()
	pnl := panel.New(ctrl, lo, hi)
	reg := commands.NewRegistry()
	commands.RegisterView(reg, ctrl)

	term := terminal.New(log, reg, sheet)
	scn := scene.New(sheet, cfg.View.BaseSize, cfg.View.PixelsPerUnit)
	scn.GridVisible = cfg.Debug.Grid
	pv := ui.NewPanelView(pnl, sheet)
	hud := debug.New(sheet, ctrl.Snapshot, style)
	hud.ShowFPS = cfg.Debug.ShowFPS
	hud.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	hud.ShowState = cfg.Debug.ShowState
	in := newInput(ctrl, pnl)

	log.Logf("cube viewer started, config %s", *configPath)

	var face *ui.Face
	fontPath := ""
	if cfg.Window.Font != "" {
		if fontPath, err = fonts.Find(cfg.Window.Font); err != nil {
			log.Logf("font %q not found, using the default font", cfg.Window.Font)
		}
	}

	update := func(now time.Duration) {
		if face == nil {
			// fonts need the GL context, so load on the first frame
			face = ui.LoadFace(fontPath)
			pv.SetFace(face)
			term.SetFace(face)
			hud.SetFace(face)
		}
		sched.Advance(now)
		term.Update()
		pv.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		in.Update(term.IsOpen())
		sched.Step(now)
	}
	draw := func() {
		scn.Draw(style)
		hud.Draw()
		pv.Draw()
		term.Draw()
	}
	graphics.Run(graphics.Window{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.Window.FPS,
	}, update, draw, func() {
		face.Unload()
		scn.Unload()
	})
}

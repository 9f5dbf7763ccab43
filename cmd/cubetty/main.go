package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"cube-viewer/internal/commands"
	"cube-viewer/internal/config"
	"cube-viewer/internal/env"
	"cube-viewer/internal/logger"
	"cube-viewer/internal/loop"
	"cube-viewer/internal/theme"
	"cube-viewer/internal/tty"
	"cube-viewer/internal/view"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen init failed: %v\n", err)
		os.Exit(1)
	}

	sched := loop.New()
	style := &view.Style{}
	ctrl := view.NewController(cfg.View.Options(), style, sched, log)
	defer ctrl.Close()
	reg := commands.NewRegistry()
	commands.RegisterView(reg, ctrl)

	host := tty.New(screen, tty.Viewer{Ctrl: ctrl, Style: style, Sched: sched, Reg: reg, Log: log}, theme.Default(), cfg.View.PixelsPerUnit)
	if cfg.Window.FPS > 0 {
		host.FrameInterval = time.Second / time.Duration(cfg.Window.FPS)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Logf("terminal cube viewer started, config %s", *configPath)
	if err := host.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

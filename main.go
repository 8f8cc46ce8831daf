package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"caticorn/internal/config"
	"caticorn/internal/log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(os.Stderr, log.LevelFromVerbosity(cfg.Verbosity))
	logger.Infof("args: %+v", cfg)

	// 1. Window Setup
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	// 2. Initialize Game
	game, err := NewGame(logger, buildVersion())
	if err != nil {
		logger.Fatalf("init: %v", err)
	}

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalf("run: %v", err)
	}
}

// buildVersion is the module version and short commit, when known.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev ?"
	}
	version := info.Main.Version
	if version == "" {
		version = "dev"
	}
	commit := "?"
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			commit = s.Value[:7]
		}
	}
	return version + " " + commit
}

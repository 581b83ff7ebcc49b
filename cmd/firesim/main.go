//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"wildfire/internal/app"
	_ "wildfire/internal/sims/firespread"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "log every simulation step")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	game, err := app.New(cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}

	w, h := game.WindowSize()
	ebiten.SetWindowTitle("wildfire: " + cfg.Sim)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}

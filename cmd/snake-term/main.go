package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"neon-snake/audio"
	"neon-snake/config"
	"neon-snake/game"
	"neon-snake/ui"
	"neon-snake/ui/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse("snake-term", os.Args[1:])
	if err != nil {
		return err
	}

	logFile, err := config.SetupLogging(cfg.Debug, config.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	game.SetLogger(log.Default())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal even if the game panics. Fini is deferred after
	// this, so it has already run when the recover fires.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	cols, rows := screen.Size()
	w, h := term.GridSize(cols, rows)
	g, err := game.NewGame(cfg.GameConfig(w, h))
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(cfg.CellSize, ui.NewEffects(g.Rand()))
	listeners := term.Listeners{renderer}

	sounds, err := audio.Open(cfg.Volume, cfg.Mute)
	if err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()
	listeners = append(listeners, sounds)

	clock := game.NewFrameClock(game.NewMonotonicTimeProvider())
	term.NewHost(screen, g, renderer, clock, cfg.FPS, listeners).Run()
	return nil
}

package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	rl "github.com/gen2brain/raylib-go/raylib"

	"neon-snake/audio"
	"neon-snake/config"
	"neon-snake/game"
	"neon-snake/ui"
	"neon-snake/ui/window"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse("snake", os.Args[1:])
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

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Neon Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	surface := window.NewSurface()
	cw, ch := surface.Size()
	w, h := ui.GridSize(cw, ch, cfg.CellSize)
	g, err := game.NewGame(cfg.GameConfig(w, h))
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(cfg.CellSize, ui.NewEffects(g.Rand()))

	sounds, err := audio.Open(cfg.Volume, cfg.Mute)
	if err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			surface.UpdateDimensions()
			cw, ch := surface.Size()
			if err := g.Resize(ui.GridSize(cw, ch, cfg.CellSize)); err != nil {
				log.Printf("resize: %v", err)
			}
		}

		if window.PollInput(g) {
			renderer.OnRestart()
			sounds.OnRestart()
		}

		res := g.OnFrame(window.Now())
		renderer.OnFrame(res)
		sounds.OnFrame(res)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		renderer.Draw(surface, g.Session())
		rl.EndDrawing()
	}
	return nil
}

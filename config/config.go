// Package config binds the command-line flags shared by the snake binaries.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"neon-snake/game"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Speed    int    // milliseconds per tick, lower is faster
	CellSize int    // pixels per grid cell
	Width    int    // window width in pixels
	Height   int    // window height in pixels
	FPS      int    // target render rate
	Seed     uint64 // 0 picks a time-based seed
	Volume   float64
	Mute     bool
	Debug    bool
}

func Default() Config {
	return Config{
		Speed:    int(game.DefaultTimeStep / time.Millisecond),
		CellSize: 20,
		Width:    820,
		Height:   700,
		FPS:      60,
		Volume:   0.3,
	}
}

// Parse reads flags from args (without the program name).
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Game speed in milliseconds per move (lower = faster)")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Grid cell size in pixels")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement (0 = random)")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound volume between 0 and 1")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log to logs/")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalid, c.Speed)
	case c.CellSize <= 2:
		return fmt.Errorf("%w: cell size must be above 2, got %d", ErrInvalid, c.CellSize)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, c.Volume)
	}
	return nil
}

func (c Config) TimeStep() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

// GameConfig builds the simulation settings for a grid of w x h cells.
// A single frame may add at most ten ticks of catch-up.
func (c Config) GameConfig(w, h int) game.Config {
	return game.Config{
		Width:         w,
		Height:        h,
		TimeStep:      c.TimeStep(),
		MaxFrameDelta: 10 * c.TimeStep(),
		Seed:          c.Seed,
	}
}

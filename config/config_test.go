package config

import (
	"errors"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("snake", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", cfg)
	}
	if cfg.TimeStep() != 100*time.Millisecond {
		t.Errorf("default step = %v", cfg.TimeStep())
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("snake", []string{"-speed", "50", "-cell", "16", "-seed", "42", "-mute", "-debug"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != 50 || cfg.CellSize != 16 || cfg.Seed != 42 || !cfg.Mute || !cfg.Debug {
		t.Errorf("parsed %+v", cfg)
	}

	gc := cfg.GameConfig(30, 20)
	if gc.Width != 30 || gc.Height != 20 || gc.TimeStep != 50*time.Millisecond || gc.Seed != 42 {
		t.Errorf("GameConfig = %+v", gc)
	}
	if gc.MaxFrameDelta != 500*time.Millisecond {
		t.Errorf("MaxFrameDelta = %v, want 500ms", gc.MaxFrameDelta)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"-speed", "0"},
		{"-cell", "2"},
		{"-fps", "-1"},
		{"-width", "0"},
		{"-volume", "1.5"},
	} {
		if _, err := Parse("snake", args); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%v) error = %v, want ErrInvalid", args, err)
		}
	}

	if _, err := Parse("snake", []string{"-nope"}); err == nil {
		t.Error("unknown flag accepted")
	}
}

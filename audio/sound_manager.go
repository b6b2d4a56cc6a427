// Package audio plays the game's sound cues through beep. Sound is
// optional: every method is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"neon-snake/game"
	"neon-snake/game/manager"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatDuration      = 60 * time.Millisecond
	gameOverDuration = 400 * time.Millisecond
)

// SoundManager owns the speaker and a mixer that cues are added to.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Open returns a sound manager for the binaries. A muted manager never
// touches the audio device. The manager is usable even when err is set; it
// just stays silent.
func Open(volume float64, mute bool) (*SoundManager, error) {
	sm := NewSoundManager(volume)
	if mute {
		sm.SetMuted(true)
		return sm, nil
	}
	return sm, sm.Initialize()
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEat plays a short rising chime.
func (sm *SoundManager) PlayEat() {
	sm.play(EatSound(sm.volume))
}

// PlayGameOver plays a low falling tone.
func (sm *SoundManager) PlayGameOver() {
	sm.play(GameOverSound(sm.volume))
}

// OnFrame plays the cues for the ticks run in one frame: one chime per
// frame with food eaten, and the game-over tone when a tick ends the game.
func (sm *SoundManager) OnFrame(res game.FrameResult) {
	if res.Ate() {
		sm.PlayEat()
	}
	for _, step := range res.Steps {
		if step.State == manager.GameOver {
			sm.PlayGameOver()
			return
		}
	}
}

func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return withVolume(beep.Take(sampleRate.N(d), sine), volume)
}

func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// EatSound is two quick notes, A5 then E6.
func EatSound(volume float64) beep.Streamer {
	a, e := tone(880, eatDuration, volume), tone(1318.5, eatDuration, volume)
	if a == nil || e == nil {
		return nil
	}
	return beep.Seq(a, e)
}

// GameOverSound is a descending pair, A3 then E3.
func GameOverSound(volume float64) beep.Streamer {
	hi, lo := tone(220, gameOverDuration/2, volume), tone(164.8, gameOverDuration/2, volume)
	if hi == nil || lo == nil {
		return nil
	}
	return beep.Seq(hi, lo)
}

// OnRestart is a no-op; a new session has no pending cue.
func (sm *SoundManager) OnRestart() {}

package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"neon-snake/game"
	"neon-snake/game/types"
	"neon-snake/ui"
)

// Command is what a key press asks the host to do.
type Command int

const (
	None Command = iota
	Move
	Restart
	Quit
)

// MapKey translates a key into a command. For Move the direction is
// returned as well.
func MapKey(key tcell.Key, ch rune) (Command, types.Point) {
	switch key {
	case tcell.KeyUp:
		return Move, types.Up
	case tcell.KeyDown:
		return Move, types.Down
	case tcell.KeyLeft:
		return Move, types.Left
	case tcell.KeyRight:
		return Move, types.Right
	case tcell.KeyEnter:
		return Restart, types.Point{}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, types.Point{}
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return Move, types.Up
		case 's', 'S':
			return Move, types.Down
		case 'a', 'A':
			return Move, types.Left
		case 'd', 'D':
			return Move, types.Right
		case ' ':
			return Restart, types.Point{}
		case 'q', 'Q':
			return Quit, types.Point{}
		}
	}
	return None, types.Point{}
}

// GridSize is the playable grid for a terminal of cols x rows, leaving one
// status row.
func GridSize(cols, rows int) (int, int) {
	return max(cols/colsPerCell, 1), max(rows-1, 1)
}

// Listener is told about ticks and restarts, for sound and effects.
type Listener interface {
	OnFrame(res game.FrameResult)
	OnRestart()
}

// Host runs the game on a tcell screen. Screen events are read on their own
// goroutine and handed to the frame loop, which is the only goroutine
// touching the game.
type Host struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *ui.Renderer
	surface  *Surface
	clock    *game.FrameClock
	fps      int
	listener Listener
}

func NewHost(screen tcell.Screen, g *game.Game, renderer *ui.Renderer, clock *game.FrameClock, fps int, listener Listener) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen:   screen,
		game:     g,
		renderer: renderer,
		surface:  NewSurface(cols, rows-1, renderer.CellSize()),
		clock:    clock,
		fps:      max(fps, 1),
		listener: listener,
	}
}

// HandleEvent applies one screen event. It returns false when the host
// should stop.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.surface.Resize(cols, rows-1)
		w, hh := GridSize(cols, rows)
		if err := h.game.Resize(w, hh); err != nil {
			return false
		}
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, ch rune) bool {
	cmd, dir := MapKey(key, ch)
	switch cmd {
	case Quit:
		return false
	case Move:
		h.game.OnDirectionInput(dir)
	case Restart:
		if h.game.OnRestart() && h.listener != nil {
			h.listener.OnRestart()
		}
	}
	return true
}

// Frame runs the simulation up to the clock and redraws.
func (h *Host) Frame() {
	res := h.game.OnFrame(h.clock.Elapsed())
	if h.listener != nil {
		h.listener.OnFrame(res)
	}
	h.renderer.Draw(h.surface, h.game.Session())
	h.surface.Flush(h.screen)
	h.drawStatus()
	h.screen.Show()
}

const helpLine = "arrows/wasd move  space restart  q quit"

func (h *Host) drawStatus() {
	cols, rows := h.screen.Size()
	if rows < 1 {
		return
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	text := []rune(fmt.Sprintf("len %d  %s", h.game.Session().Snake.Len(), helpLine))
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(text) {
			r = text[col]
		}
		h.screen.SetContent(col, rows-1, r, nil, st)
	}
}

// Run loops until a quit key or a closed event stream.
func (h *Host) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	h.Frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// Listeners fans events out to several listeners in order.
type Listeners []Listener

func (ls Listeners) OnFrame(res game.FrameResult) {
	for _, l := range ls {
		l.OnFrame(res)
	}
}

func (ls Listeners) OnRestart() {
	for _, l := range ls {
		l.OnRestart()
	}
}

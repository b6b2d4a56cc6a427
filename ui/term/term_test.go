package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"neon-snake/game"
	"neon-snake/game/types"
	"neon-snake/ui"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		cmd  Command
		want types.Point
	}{
		{tcell.KeyUp, 0, Move, types.Up},
		{tcell.KeyDown, 0, Move, types.Down},
		{tcell.KeyLeft, 0, Move, types.Left},
		{tcell.KeyRight, 0, Move, types.Right},
		{tcell.KeyRune, 'w', Move, types.Up},
		{tcell.KeyRune, 'D', Move, types.Right},
		{tcell.KeyRune, ' ', Restart, types.Point{}},
		{tcell.KeyEnter, 0, Restart, types.Point{}},
		{tcell.KeyRune, 'q', Quit, types.Point{}},
		{tcell.KeyEscape, 0, Quit, types.Point{}},
		{tcell.KeyRune, 'x', None, types.Point{}},
		{tcell.KeyTab, 0, None, types.Point{}},
	}
	for _, tc := range tests {
		cmd, dir := MapKey(tc.key, tc.ch)
		if cmd != tc.cmd || dir != tc.want {
			t.Errorf("MapKey(%v, %q) = %v, %v; want %v, %v", tc.key, tc.ch, cmd, dir, tc.cmd, tc.want)
		}
	}
}

func TestGridSize(t *testing.T) {
	if w, h := GridSize(80, 24); w != 40 || h != 23 {
		t.Errorf("GridSize(80, 24) = %dx%d, want 40x23", w, h)
	}
	if w, h := GridSize(1, 1); w != 1 || h != 1 {
		t.Errorf("GridSize(1, 1) = %dx%d, want 1x1", w, h)
	}
}

func TestSurfaceMapsGridCells(t *testing.T) {
	s := NewSurface(20, 10, 20)
	if w, h := s.Size(); w != 200 || h != 200 {
		t.Fatalf("Size() = %dx%d, want 200x200", w, h)
	}

	red := ui.Color{R: 255, A: 255}
	s.RoundedRect(3*20, 4*20, 18, 18, 8, red)

	for _, col := range []int{6, 7} {
		c, _ := s.Cell(col, 4)
		if c.Rune != '█' || c.FG != red {
			t.Errorf("cell (%d,4) = %+v, want red block", col, c)
		}
	}
	for _, pos := range [][2]int{{5, 4}, {8, 4}, {6, 3}, {6, 5}} {
		if c, _ := s.Cell(pos[0], pos[1]); c.Rune != ' ' {
			t.Errorf("neighbour %v painted: %+v", pos, c)
		}
	}
}

func TestSurfaceBlendsTranslucentFill(t *testing.T) {
	s := NewSurface(4, 2, 20)
	s.FillGradient(ui.Black, ui.Black)
	s.FillRect(0, 0, 40, 40, ui.White.Fade(0.5))

	c, _ := s.Cell(1, 1)
	if c.Rune != ' ' || c.BG.R < 120 || c.BG.R > 130 {
		t.Errorf("blended cell = %+v, want grey background", c)
	}
}

func TestSurfaceText(t *testing.T) {
	s := NewSurface(20, 5, 20)
	s.Text("HELLO", 100, 40, 24, ui.White)

	var got []rune
	for col := 0; col < 20; col++ {
		if c, _ := s.Cell(col, 2); c.Rune != ' ' {
			got = append(got, c.Rune)
		}
	}
	if string(got) != "HELLO" {
		t.Errorf("row text = %q", string(got))
	}
	if c, _ := s.Cell(8, 2); c.Rune != 'H' {
		t.Errorf("text not centred: col 8 = %q", c.Rune)
	}
}

type recordingListener struct {
	frames, restarts, ticks int
}

func (l *recordingListener) OnFrame(res game.FrameResult) {
	l.frames++
	l.ticks += res.Ticks
}

func (l *recordingListener) OnRestart() { l.restarts++ }

func newHost(t *testing.T) (*Host, *game.MockTimeProvider, *recordingListener) {
	t.Helper()
	game.SetLogger(nil)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 21)

	w, h := GridSize(40, 21)
	g, err := game.NewGame(game.Config{Width: w, Height: h, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	mock := game.NewMockTimeProvider(time.Unix(0, 0))
	renderer := ui.NewRenderer(20, ui.NewEffects(rand.New(rand.NewSource(1))))
	l := &recordingListener{}
	return NewHost(screen, g, renderer, game.NewFrameClock(mock), 60, l), mock, l
}

func TestHostFrameAndInput(t *testing.T) {
	h, mock, l := newHost(t)

	h.Frame()
	mock.Advance(350 * time.Millisecond)
	h.Frame()
	if l.frames != 2 || l.ticks != 3 {
		t.Errorf("frames=%d ticks=%d, want 2 and 3", l.frames, l.ticks)
	}

	head := h.game.Session().Snake.Head()
	if c, ok := h.surface.Cell(head.X*2, head.Y); !ok || c.Rune != '█' {
		t.Errorf("head cell (%v) not drawn: %+v", head, c)
	}

	if !h.handleKey(tcell.KeyDown, 0) {
		t.Fatal("direction key stopped the host")
	}
	if d := h.game.Session().Snake.Direction; d != types.Down {
		t.Errorf("direction = %v, want down", d)
	}
	if !h.handleKey(tcell.KeyRune, ' ') {
		t.Fatal("space stopped the host")
	}
	if h.handleKey(tcell.KeyEscape, 0) {
		t.Error("escape did not stop the host")
	}
	if l.restarts != 0 {
		t.Errorf("restart reported for a running game")
	}
}

func TestHostResize(t *testing.T) {
	h, _, _ := newHost(t)

	h.screen.(tcell.SimulationScreen).SetSize(30, 11)
	if !h.HandleEvent(tcell.NewEventResize(30, 11)) {
		t.Fatal("resize stopped the host")
	}
	if g := h.game.Grid(); g != (types.Grid{Width: 15, Height: 10}) {
		t.Errorf("grid after resize = %v, want 15x10", g)
	}
	if w, hh := h.surface.Size(); w != 300 || hh != 200 {
		t.Errorf("surface after resize = %dx%d", w, hh)
	}
	if !h.game.Grid().Contains(h.game.Session().Snake.Head()) {
		t.Error("snake left the resized grid")
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(60, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func background(c tcell.SimCell) tcell.Color {
	_, bg, _ := c.Style.Decompose()
	return bg
}

func TestRenderer_DrawsBoard(t *testing.T) {
	screen := newSimScreen(t)

	snap := game.Snapshot{
		Grid: types.NewSquareGrid(20),
		Body: []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
		Food: types.Point{X: 15, Y: 10},
	}
	NewRenderer(screen).Draw(snap)

	tests := []struct {
		name string
		cell types.Point
		want tcell.Color
	}{
		{"head", types.Point{X: 5, Y: 5}, tcell.ColorDarkGreen},
		{"body", types.Point{X: 4, Y: 5}, tcell.ColorGreen},
		{"food", types.Point{X: 15, Y: 10}, tcell.ColorRed},
		{"empty", types.Point{X: 0, Y: 0}, tcell.ColorWhite},
	}
	for _, tt := range tests {
		x, y := cellOrigin(tt.cell)
		for dx := 0; dx < cellWidth; dx++ {
			if got := background(cellAt(screen, x+dx, y)); got != tt.want {
				t.Errorf("%s: background at (%d,%d) = %v, want %v", tt.name, x+dx, y, got, tt.want)
			}
		}
	}

	if r := cellAt(screen, 0, 0).Runes; len(r) == 0 || r[0] != tcell.RuneULCorner {
		t.Errorf("frame corner = %q", r)
	}
}

func TestRenderer_GameOverOverlay(t *testing.T) {
	screen := newSimScreen(t)

	snap := game.Snapshot{
		Grid:   types.NewSquareGrid(20),
		Body:   []types.Point{{X: 0, Y: 5}},
		Food:   types.Point{X: 15, Y: 10},
		Score:  7,
		Status: manager.Over,
	}
	NewRenderer(screen).Draw(snap)

	cells, w, h := screen.GetContents()
	text := make([]rune, 0, w*h)
	for _, c := range cells {
		if len(c.Runes) > 0 {
			text = append(text, c.Runes[0])
		} else {
			text = append(text, ' ')
		}
	}
	screenText := string(text)
	for _, want := range []string{"GAME OVER", "Final Score: 7"} {
		if !strings.Contains(screenText, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want types.Direction
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.Up, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.Down, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.Left, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.Right, true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), types.Up, true},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), types.Down, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), types.Left, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), types.Right, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.Direction{}, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.Direction{}, false},
	}

	for _, tt := range tests {
		got, ok := directionFor(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("directionFor(%s) = %v, %v; want %v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestRun_QuitsOnKey(t *testing.T) {
	screen := newSimScreen(t)

	g, err := game.NewGame(game.DefaultConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	loop := game.NewLoop(g, nil)

	done := make(chan error, 1)
	go func() { done <- Run(screen, loop) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
	if loop.Running() {
		t.Error("loop still scheduled after Run returned")
	}
}

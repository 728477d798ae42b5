package tui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two terminal columns wide so tiles come out square-ish
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault
	styleBoard   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleHead    = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorBlack)
	styleBody    = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleFood    = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	styleFrame   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOverlay = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// cellOrigin is the screen position of the left column of grid cell p.
// Row and column 0 hold the frame.
func cellOrigin(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	r.drawFrame(s.Grid)
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			r.drawTile(types.Point{X: x, Y: y}, styleBoard, ' ', ' ')
		}
	}

	r.drawTile(s.Food, styleFood, '[', ']')
	for j := len(s.Body) - 1; j >= 0; j-- {
		if j == 0 {
			r.drawTile(s.Body[j], styleHead, '[', ']')
		} else {
			r.drawTile(s.Body[j], styleBody, '[', ']')
		}
	}

	r.drawText(0, s.Grid.Height+2, styleDefault, fmt.Sprintf("Score: %d", s.Score))

	if s.Status == manager.Over {
		r.drawGameOver(s.Grid, s.Score)
	}

	r.screen.Show()
}

// drawTile fills one grid cell; the bracket runes act as its border
func (r *Renderer) drawTile(p types.Point, style tcell.Style, left, right rune) {
	x, y := cellOrigin(p)
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawFrame(grid types.Grid) {
	right := 1 + grid.Width*cellWidth
	bottom := 1 + grid.Height

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, styleFrame)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleFrame)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, styleFrame)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, styleFrame)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleFrame)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, styleFrame)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, styleFrame)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleFrame)
}

func (r *Renderer) drawGameOver(grid types.Grid, score int) {
	centerX := 1 + grid.Width*cellWidth/2
	centerY := 1 + grid.Height/2

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", score),
	}
	for i, line := range lines {
		text := " " + line + " "
		r.drawText(centerX-len(text)/2, centerY-1+i, styleOverlay, text)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

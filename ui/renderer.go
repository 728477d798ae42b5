package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Score line under the grid
)

type Renderer struct {
	cellSize        int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

// NewRenderer sizes the board for a grid with cells of tile pixels
func NewRenderer(grid types.Grid, tile int32) *Renderer {
	return &Renderer{
		cellSize:        tile,
		totalGridWidth:  tile * int32(grid.Width),
		totalGridHeight: tile * int32(grid.Height),
		offsetX:         borderPadding,
		offsetY:         borderPadding,
	}
}

// WindowSize is the window needed to show the board and the score line
func (r *Renderer) WindowSize() (int32, int32) {
	return r.totalGridWidth + borderPadding*2, r.totalGridHeight + borderPadding*2 + statusHeight
}

func (r *Renderer) Draw(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.RayWhite)

	r.drawTile(s.Food, rl.Red)

	// Tail first so the head is painted last
	for j := len(s.Body) - 1; j >= 0; j-- {
		color := rl.Green
		if j == 0 {
			color = rl.DarkGreen
		}
		r.drawTile(s.Body[j], color)
	}
	if len(s.Body) > 0 {
		r.drawHeadIndicator(s.Body[0], s.Direction)
	}

	fontSize := int32(statusHeight - 10)
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score),
		r.offsetX, r.offsetY+r.totalGridHeight+borderPadding, fontSize, rl.White)

	if s.Status == manager.Over {
		r.drawGameOver(s.Score)
	}

	rl.EndDrawing()
}

// drawTile paints a filled square with a black border
func (r *Renderer) drawTile(p types.Point, color rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Black)
}

func (r *Renderer) drawHeadIndicator(head types.Point, direction types.Direction) {
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	switch direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawGameOver(score int) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, 0.6))

	centerX := r.offsetX + r.totalGridWidth/2
	centerY := r.offsetY + r.totalGridHeight/2

	title := "GAME OVER"
	titleSize := int32(30)
	rl.DrawText(title, centerX-rl.MeasureText(title, titleSize)/2, centerY-20-titleSize/2, titleSize, rl.White)

	final := fmt.Sprintf("Final Score: %d", score)
	finalSize := int32(20)
	rl.DrawText(final, centerX-rl.MeasureText(final, finalSize)/2, centerY+20-finalSize/2, finalSize, rl.White)
}

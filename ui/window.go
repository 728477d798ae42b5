package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// directionFor maps a key code to a direction
func directionFor(key int32) (types.Direction, bool) {
	for _, kd := range keyDirections {
		if kd.key == key {
			return kd.dir, true
		}
	}
	return types.Direction{}, false
}

// readInput forwards every direction key pressed this frame. The session
// keeps only the last one.
func readInput(g *game.Game) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := directionFor(key); ok {
			g.SetDirection(dir)
		}
	}
}

// Run opens a window and plays loop until the window is closed or Q/Esc is
// pressed. Ticks, input and drawing all happen on the calling goroutine,
// which must be the main one.
func Run(loop *game.Loop, tile int32, fps int32) error {
	g := loop.Game()
	renderer := NewRenderer(g.Grid, tile)

	width, height := renderer.WindowSize()
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(fps)

	loop.Start()
	defer loop.Stop()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		readInput(g)

		select {
		case <-loop.C():
			if _, err := loop.Step(); err != nil {
				return err
			}
		default:
		}

		renderer.Draw(g.Snapshot())
	}
	return nil
}

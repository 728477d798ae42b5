package tui

import (
	"snake-arcade/game"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// NewScreen opens the terminal
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	return screen, nil
}

// Run plays loop on screen until a quit key is pressed. Input events and
// ticks are handled by one select, so the session is only touched from the
// calling goroutine.
func Run(screen tcell.Screen, loop *game.Loop) error {
	g := loop.Game()
	renderer := NewRenderer(screen)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	loop.Start()
	defer loop.Stop()

	renderer.Draw(g.Snapshot())

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if dir, ok := directionFor(ev); ok {
					g.SetDirection(dir)
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Draw(g.Snapshot())
			}
		case <-loop.C():
			if _, err := loop.Step(); err != nil {
				return err
			}
			renderer.Draw(g.Snapshot())
		}
	}
}

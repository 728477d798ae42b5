package game

import (
	"io"
	"log"
	"time"

	"snake-arcade/game/manager"
)

// Listener is told about notable ticks
type Listener interface {
	OnEat(score int)
	OnGameOver(score int, reason manager.CollisionType)
}

// Loop binds a session to its tick scheduler. Frontends select on C() and
// call Step when it fires; Step keeps the scheduler in line with the
// session's speed and stops it once the session is over.
type Loop struct {
	game      *Game
	scheduler *manager.TickScheduler
	logger    *log.Logger
	listeners []Listener
}

func NewLoop(g *Game, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loop{
		game:      g,
		scheduler: manager.NewTickScheduler(),
		logger:    logger,
	}
}

// AddListener registers li for eat and game over notifications
func (l *Loop) AddListener(li Listener) {
	if li != nil {
		l.listeners = append(l.listeners, li)
	}
}

// Start schedules ticks at the session's current speed
func (l *Loop) Start() {
	l.scheduler.Start(l.game.Speed())
	l.logger.Printf("session %s started: grid %dx%d, speed %v",
		l.game.UUID, l.game.Grid.Width, l.game.Grid.Height, l.game.Speed())
}

// Stop cancels the scheduled ticks
func (l *Loop) Stop() {
	l.scheduler.Stop()
}

// C fires when the next tick is due. It never fires after Stop.
func (l *Loop) C() <-chan time.Time {
	return l.scheduler.C()
}

func (l *Loop) Running() bool {
	return l.scheduler.Running()
}

func (l *Loop) Interval() time.Duration {
	return l.scheduler.Interval()
}

func (l *Loop) Game() *Game {
	return l.game
}

// Step runs one tick and reschedules or stops the timer as needed
func (l *Loop) Step() (TickResult, error) {
	res, err := l.game.Tick()
	if err != nil {
		l.scheduler.Stop()
		return res, err
	}

	if res.Ate {
		l.logger.Printf("session %s: target eaten, score %d", l.game.UUID, l.game.Score())
		for _, li := range l.listeners {
			li.OnEat(l.game.Score())
		}
	}
	if res.SpeedChanged {
		l.scheduler.Reset(l.game.Speed())
		l.logger.Printf("session %s: speed now %v", l.game.UUID, l.game.Speed())
	}
	if res.Over {
		l.scheduler.Stop()
		l.logger.Printf("session %s over after %d ticks: %s collision, final score %d",
			l.game.UUID, l.game.Steps, res.Collision, l.game.Score())
		for _, li := range l.listeners {
			li.OnGameOver(l.game.Score(), res.Collision)
		}
	}
	return res, nil
}

package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionOver is returned when Tick is called after the session ended.
// The caller is expected to stop scheduling ticks once Over is reached.
var ErrSessionOver = errors.New("tick on finished session")

// TickResult describes what a single tick did
type TickResult struct {
	Ate          bool
	SpeedChanged bool
	Over         bool
	Collision    manager.CollisionType
}

// Game is one play session. It is owned by a single loop: Tick, Snapshot
// and the accessors must not be called concurrently. SetDirection may be
// called from any goroutine.
type Game struct {
	UUID      string
	Grid      types.Grid
	Steps     int
	StartTime time.Time

	snake   *entity.Snake
	food    types.Point
	pending *directionBuffer

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame validates cfg and builds a running session from it
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := types.NewSquareGrid(cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)

	return &Game{
		UUID:         uuid.NewString(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(cfg.InitialBody, cfg.InitialDirection),
		food:         cfg.InitialFood,
		pending:      newDirectionBuffer(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Seed),
		stateMgr: manager.NewStateManager(manager.Pace{
			Initial: cfg.Speed,
			Floor:   cfg.MinSpeed,
			Step:    cfg.SpeedStep,
		}),
	}, nil
}

// SetDirection queues a turn for the next tick. Only the last request made
// between two ticks is kept.
func (g *Game) SetDirection(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	g.pending.Put(dir)
}

// Tick advances the session by one step
func (g *Game) Tick() (TickResult, error) {
	if g.stateMgr.IsOver() {
		return TickResult{Over: true, Collision: g.stateMgr.Collision()}, ErrSessionOver
	}

	g.Steps++

	// A reversal of the current heading is dropped
	if dir, ok := g.pending.Take(); ok {
		g.snake.SetDirection(dir)
	}

	newHead := g.snake.NextHead()

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.stateMgr.End(collision)
		return TickResult{Over: true, Collision: collision}, nil
	}

	g.snake.Move(newHead)

	var res TickResult
	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		res.Ate = true
		res.SpeedChanged = g.stateMgr.AddPoint()
		g.food = g.foodMgr.GenerateFood(g.snake)
	} else {
		g.snake.RemoveTail()
	}
	return res, nil
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) Speed() time.Duration {
	return g.stateMgr.Speed()
}

func (g *Game) Status() manager.Status {
	return g.stateMgr.Status()
}

func (g *Game) IsOver() bool {
	return g.stateMgr.IsOver()
}

// ElapsedTime returns how long the session has been running
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}

// Snapshot is a read-only copy of the session for renderers
type Snapshot struct {
	Grid      types.Grid
	Body      []types.Point
	Direction types.Direction
	Food      types.Point
	Score     int
	Speed     time.Duration
	Status    manager.Status
	Collision manager.CollisionType
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:      g.Grid,
		Body:      g.snake.Segments(),
		Direction: g.snake.Direction,
		Food:      g.food,
		Score:     g.stateMgr.Score(),
		Speed:     g.stateMgr.Speed(),
		Status:    g.stateMgr.Status(),
		Collision: g.stateMgr.Collision(),
	}
}

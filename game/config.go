package game

import (
	"time"

	"snake-arcade/game/types"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the startup constants of a session. None of it can change
// once the session exists.
type Config struct {
	GridSize         int
	InitialBody      []types.Point
	InitialDirection types.Direction
	InitialFood      types.Point
	Speed            time.Duration // initial tick interval
	MinSpeed         time.Duration // interval floor
	SpeedStep        time.Duration // interval decrease per target eaten
	Seed             uint64
}

// DefaultConfig mirrors the classic 400px canvas with 20px tiles
func DefaultConfig() Config {
	return Config{
		GridSize:         20,
		InitialBody:      []types.Point{{X: 10, Y: 10}},
		InitialDirection: types.Right,
		InitialFood:      types.Point{X: 15, Y: 10},
		Speed:            150 * time.Millisecond,
		MinSpeed:         50 * time.Millisecond,
		SpeedStep:        5 * time.Millisecond,
		Seed:             1,
	}
}

func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid size %d", c.GridSize)
	}
	if c.Speed <= 0 || c.MinSpeed <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "speed %v, min speed %v must be positive", c.Speed, c.MinSpeed)
	}
	if c.MinSpeed > c.Speed {
		return errors.Wrapf(ErrInvalidConfig, "min speed %v above initial speed %v", c.MinSpeed, c.Speed)
	}
	if c.SpeedStep < 0 {
		return errors.Wrapf(ErrInvalidConfig, "speed step %v", c.SpeedStep)
	}
	if !c.InitialDirection.Valid() {
		return errors.Wrapf(ErrInvalidConfig, "direction %+v", c.InitialDirection)
	}
	if len(c.InitialBody) == 0 {
		return errors.Wrap(ErrInvalidConfig, "empty body")
	}

	grid := types.NewSquareGrid(c.GridSize)
	seen := make(map[types.Point]bool, len(c.InitialBody))
	for _, p := range c.InitialBody {
		if !grid.Contains(p) {
			return errors.Wrapf(ErrInvalidConfig, "body cell %+v outside %dx%d grid", p, c.GridSize, c.GridSize)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvalidConfig, "body cell %+v repeated", p)
		}
		seen[p] = true
	}
	if !grid.Contains(c.InitialFood) {
		return errors.Wrapf(ErrInvalidConfig, "food %+v outside grid", c.InitialFood)
	}
	if seen[c.InitialFood] {
		return errors.Wrapf(ErrInvalidConfig, "food %+v on body", c.InitialFood)
	}
	return nil
}

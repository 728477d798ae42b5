package manager

import (
	"time"
)

// Status of a session
type Status int

const (
	Running Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Pace is the tick interval and how it shrinks as targets are eaten
type Pace struct {
	Initial time.Duration
	Floor   time.Duration
	Step    time.Duration
}

// StateManager tracks score, status and speed of a single session
type StateManager struct {
	score     int
	status    Status
	collision CollisionType
	speed     time.Duration
	pace      Pace
}

func NewStateManager(pace Pace) *StateManager {
	return &StateManager{
		status: Running,
		speed:  pace.Initial,
		pace:   pace,
	}
}

// AddPoint scores one target and speeds up. It reports whether the tick
// interval changed.
func (sm *StateManager) AddPoint() bool {
	sm.score++
	return sm.speedUp()
}

// speedUp lowers the interval by one step, never below the floor
func (sm *StateManager) speedUp() bool {
	if sm.speed <= sm.pace.Floor {
		return false
	}
	next := sm.speed - sm.pace.Step
	if next < sm.pace.Floor {
		next = sm.pace.Floor
	}
	if next == sm.speed {
		return false
	}
	sm.speed = next
	return true
}

// End moves the session to Over. Over is absorbing.
func (sm *StateManager) End(reason CollisionType) {
	if sm.status == Over {
		return
	}
	sm.status = Over
	sm.collision = reason
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Status() Status {
	return sm.status
}

func (sm *StateManager) IsOver() bool {
	return sm.status == Over
}

func (sm *StateManager) Collision() CollisionType {
	return sm.collision
}

func (sm *StateManager) Speed() time.Duration {
	return sm.speed
}

package game

import (
	"snake-arcade/game/types"
)

// directionBuffer is a single-slot mailbox between input and the tick.
// A new request replaces one that has not been read yet.
type directionBuffer struct {
	slot chan types.Direction
}

func newDirectionBuffer() *directionBuffer {
	return &directionBuffer{slot: make(chan types.Direction, 1)}
}

// Put stores d, dropping any unread request
func (b *directionBuffer) Put(d types.Direction) {
	for {
		select {
		case b.slot <- d:
			return
		default:
		}
		select {
		case <-b.slot:
		default:
		}
	}
}

// Take returns the pending request, if any, and empties the slot
func (b *directionBuffer) Take() (types.Direction, bool) {
	select {
	case d := <-b.slot:
		return d, true
	default:
		return types.Direction{}, false
	}
}

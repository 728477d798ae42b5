package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestSnake_MoveAndRemoveTail(t *testing.T) {
	s := NewSnake([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, types.Right)

	s.Move(s.NextHead())
	if s.Len() != 3 || s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Fatalf("after move body = %v", s.Body)
	}

	s.RemoveTail()
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Fatalf("body = %v, want %v", s.Body, want)
		}
	}
}

func TestSnake_RemoveTailKeepsHead(t *testing.T) {
	s := NewSnake([]types.Point{{X: 1, Y: 1}}, types.Up)
	s.RemoveTail()
	if s.Len() != 1 {
		t.Errorf("length = %d, want 1", s.Len())
	}
}

func TestSnake_SetDirection(t *testing.T) {
	tests := []struct {
		current types.Direction
		next    types.Direction
		ok      bool
	}{
		{types.Right, types.Left, false},
		{types.Left, types.Right, false},
		{types.Up, types.Down, false},
		{types.Down, types.Up, false},
		{types.Right, types.Up, true},
		{types.Right, types.Right, true},
		{types.Up, types.Left, true},
		{types.Up, types.Direction{}, false},
	}

	for _, tt := range tests {
		s := NewSnake([]types.Point{{X: 3, Y: 3}}, tt.current)
		ok := s.SetDirection(tt.next)
		if ok != tt.ok {
			t.Errorf("%v -> %v: ok = %v, want %v", tt.current, tt.next, ok, tt.ok)
		}
		if !ok && s.Direction != tt.current {
			t.Errorf("%v -> %v: direction changed on rejected turn", tt.current, tt.next)
		}
	}
}

func TestNewSnake_CopiesBody(t *testing.T) {
	body := []types.Point{{X: 2, Y: 2}}
	s := NewSnake(body, types.Right)
	body[0] = types.Point{X: 9, Y: 9}
	if s.GetHead() != (types.Point{X: 2, Y: 2}) {
		t.Error("snake shares caller's slice")
	}
}

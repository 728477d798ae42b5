package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player body. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
	}
}

// Move prepends newHead to the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// RemoveTail drops the last segment, keeping at least the head
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head moves into on the next step
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

// SetDirection turns the snake unless dir reverses the current heading
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Len is the number of segments
func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

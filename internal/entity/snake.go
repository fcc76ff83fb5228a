// Package entity provides the game entities: the snake and the food it chases.
package entity

import "github.com/samdwyer/termsnake/internal/world"

const (
	// SnakeGlyph is the character used for every body segment.
	SnakeGlyph = '-'
	// InitialLength is the body length of a new snake.
	InitialLength = 3
)

// Snake is the player-controlled body. Segments are stored tail first, head last.
type Snake struct {
	body      []world.Cell
	heading   world.Direction
	canRotate bool // one heading change per tick
	display   world.Display
}

// NewSnake creates a horizontal snake of the given length ending just left of (x, y),
// heading right, and draws it.
func NewSnake(x, y, length int, glyph rune, d world.Display) *Snake {
	s := &Snake{
		body:      make([]world.Cell, 0, length),
		heading:   world.Right,
		canRotate: true,
		display:   d,
	}
	for i := x - length; i < x; i++ {
		c := world.NewCell(i, y, glyph)
		s.body = append(s.body, c)
		c.Draw(d)
	}
	return s
}

// Head returns the most recently added segment.
func (s *Snake) Head() world.Cell {
	return s.body[len(s.body)-1]
}

// NextPoint returns where the head will be after one step along the current heading.
func (s *Snake) NextPoint() world.Cell {
	return s.Head().Step(s.heading)
}

// Move advances the snake one step: the head grows forward and the tail is dropped.
func (s *Snake) Move() {
	head := s.NextPoint()
	s.body = append(s.body, head)

	tail := s.body[0]
	s.body = s.body[1:]

	tail.Clear(s.display)
	head.Draw(s.display)

	s.canRotate = true
}

// Eat grows the snake onto food if the food is exactly at the next point.
// Nothing changes when it is not.
func (s *Snake) Eat(food world.Cell) bool {
	head := s.NextPoint()
	if !head.Equal(food) {
		return false
	}

	s.body = append(s.body, head)
	head.Draw(s.display)
	s.canRotate = true
	return true
}

// Rotation requests a new heading. Only the first request between two steps is
// considered, and a request to reverse onto the body is dropped.
func (s *Snake) Rotation(dir world.Direction) {
	if !s.canRotate {
		return
	}
	if dir != s.heading.Opposite() {
		s.heading = dir
	}
	s.canRotate = false
}

// IsHit reports whether c overlaps a body segment other than the stored
// tail-most and head-most ones.
func (s *Snake) IsHit(c world.Cell) bool {
	for i := len(s.body) - 2; i > 0; i-- {
		if s.body[i].Equal(c) {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() world.Direction {
	return s.heading
}

// CanRotate reports whether a heading change is still allowed this tick.
func (s *Snake) CanRotate() bool {
	return s.canRotate
}

// Body returns a copy of the segments, tail first.
func (s *Snake) Body() []world.Cell {
	out := make([]world.Cell, len(s.body))
	copy(out, s.body)
	return out
}

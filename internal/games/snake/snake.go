package snake

import (
	"github.com/vovakirdan/checker-snake/internal/core"
)

// Snake is the player's body on the grid.
// The body is ordered head first; length is the target the body grows to.
type Snake struct {
	body      []core.Cell // Head at index 0
	length    int
	direction core.Direction
	score     int
}

// NewSnake creates a one-segment snake at start heading in dir.
func NewSnake(start core.Cell, dir core.Direction) *Snake {
	return &Snake{
		body:      []core.Cell{start.Wrap()},
		length:    1,
		direction: dir,
	}
}

// Move advances the head one cell, wrapping around the board edges.
// It returns false, leaving the body untouched, if the new head would land
// on any segment behind the head. Otherwise the head is pushed and the tail
// trimmed down to the target length.
func (s *Snake) Move() bool {
	head := s.Head().Add(s.direction)

	for _, seg := range s.body[1:] {
		if seg == head {
			return false
		}
	}

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if len(s.body) > s.length {
		s.body = s.body[:s.length]
	}
	return true
}

// Turn changes the heading for the next move.
// Requests to reverse straight into the neck are ignored.
func (s *Snake) Turn(dir core.Direction) {
	if dir.IsOpposite(s.direction) {
		return
	}
	s.direction = dir
}

// Grow raises the target length and the score by one.
// The body catches up on the following moves.
func (s *Snake) Grow() {
	s.length++
	s.score++
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments currently on the board.
func (s *Snake) Len() int {
	return len(s.body)
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// Score returns the number of foods eaten.
func (s *Snake) Score() int {
	return s.score
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Draw paints every segment as a filled cell.
func (s *Snake) Draw(dst core.Canvas, c core.Color) {
	for _, seg := range s.body {
		dst.FillRect(seg.Rect(), c)
	}
}

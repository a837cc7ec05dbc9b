package entity

import (
	"snake-arena/game/types"
)

// Snake is the segment chain. Body[0] is the head, the last element the tail.
type Snake struct {
	Body     []types.Cell
	Velocity types.Point
	Color    types.Color

	margin      int
	lastVacated types.Cell
	hasVacated  bool
}

// NewSnake lays out length segments leftwards from start, moving right.
func NewSnake(start types.Point, length int, geo Geometry) *Snake {
	pitch := geo.PitchX()
	s := &Snake{
		Body:     make([]types.Cell, 0, length),
		Velocity: types.RIGHT.Scale(pitch),
		Color:    types.SnakeColor,
		margin:   geo.SegmentMargin,
	}
	for i := 0; i < length; i++ {
		s.Body = append(s.Body, geo.Cell(types.Point{X: start.X - pitch*i, Y: start.Y}))
	}
	return s
}

// NewSnakeWithBody builds a chain from explicit cells, head first.
func NewSnakeWithBody(body []types.Cell, velocity types.Point, margin int) *Snake {
	cells := make([]types.Cell, len(body))
	copy(cells, body)
	return &Snake{
		Body:     cells,
		Velocity: velocity,
		Color:    types.SnakeColor,
		margin:   margin,
	}
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

// Tail returns every segment except the head.
func (s *Snake) Tail() []types.Cell {
	return s.Body[1:]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Heading returns the direction of the current velocity.
func (s *Snake) Heading() types.Direction {
	return types.DirectionOf(s.Velocity)
}

// LastVacated returns the cell freed by the most recent Advance.
func (s *Snake) LastVacated() (types.Cell, bool) {
	return s.lastVacated, s.hasVacated
}

// OnHorizontal reports whether the chain currently moves along x (or not at all).
func (s *Snake) OnHorizontal() bool {
	return s.Velocity.Y == 0
}

// OnVertical reports whether the chain currently moves along y (or not at all).
func (s *Snake) OnVertical() bool {
	return s.Velocity.X == 0
}

// Next returns where the head lands on the following Advance.
func (s *Snake) Next(b types.Bounds) types.Point {
	return WrapPoint(s.Head().Pos().Add(s.Velocity), b, s.margin)
}

// Advance drops the tail and pushes a new head one velocity step ahead.
// The length is unchanged.
func (s *Snake) Advance(b types.Bounds) {
	next := s.Next(b)
	last := len(s.Body) - 1
	s.lastVacated = s.Body[last]
	s.hasVacated = true

	head := s.Body[0].MoveTo(next)
	copy(s.Body[1:], s.Body[:last])
	s.Body[0] = head
}

// Grow appends a segment where the tail was before the last Advance.
func (s *Snake) Grow() {
	cell, ok := s.LastVacated()
	if !ok {
		cell = s.Body[len(s.Body)-1]
	}
	s.Body = append(s.Body, cell)
}

// SetDirection turns the chain. Only perpendicular turns are accepted;
// reversing or repeating the current axis is ignored.
func (s *Snake) SetDirection(d types.Direction) bool {
	step := s.step()
	switch {
	case d.Horizontal() && s.OnVertical():
	case d.Vertical() && s.OnHorizontal():
	default:
		return false
	}
	s.Velocity = d.Scale(step)
	return true
}

func (s *Snake) step() int {
	if s.Velocity.X != 0 {
		return abs(s.Velocity.X)
	}
	if s.Velocity.Y != 0 {
		return abs(s.Velocity.Y)
	}
	if len(s.Body) > 0 {
		return s.Body[0].Width + s.margin
	}
	return 0
}

// Collides reports whether the head overlaps c.
func (s *Snake) Collides(c types.Cell) bool {
	return s.Head().Overlaps(c)
}

// CollidesAny reports whether the head overlaps any member of group.
func (s *Snake) CollidesAny(group []types.Cell) bool {
	for _, c := range group {
		if s.Collides(c) {
			return true
		}
	}
	return false
}

// WrapPoint re-enters p from the opposite edge when it leaves b.
// Each axis is checked on its own: past max goes to min+margin,
// below min goes to max+margin.
func WrapPoint(p types.Point, b types.Bounds, margin int) types.Point {
	if p.X > b.MaxX {
		p.X = b.MinX + margin
	} else if p.X < b.MinX {
		p.X = b.MaxX + margin
	}
	if p.Y > b.MaxY {
		p.Y = b.MinY + margin
	} else if p.Y < b.MinY {
		p.Y = b.MaxY + margin
	}
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package entity

import "snake-arena/game/types"

// Geometry describes the cell grid shared by the snake and every spawn.
type Geometry struct {
	SegmentWidth  int
	SegmentHeight int
	SegmentMargin int
	WallThickness int
}

// PitchX is the horizontal distance between two neighbouring cells.
func (g Geometry) PitchX() int {
	return g.SegmentWidth + g.SegmentMargin
}

// PitchY is the vertical distance between two neighbouring cells.
func (g Geometry) PitchY() int {
	return g.SegmentHeight + g.SegmentMargin
}

// Cell returns a segment-sized cell at p.
func (g Geometry) Cell(p types.Point) types.Cell {
	return types.NewCell(p.X, p.Y, g.SegmentWidth, g.SegmentHeight)
}

// Positioned is anything drawn as one solid rectangle.
type Positioned interface {
	Rect() types.Cell
	Tint() types.Color
}

// Spawner is a Positioned that can be dropped at a random legal cell.
type Spawner interface {
	Positioned
	Spawn(rng types.Rand)
}

// Rects collects the rectangles of a group for collision tests.
func Rects[T Positioned](group []T) []types.Cell {
	out := make([]types.Cell, 0, len(group))
	for _, p := range group {
		out = append(out, p.Rect())
	}
	return out
}

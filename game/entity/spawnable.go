package entity

import "snake-arena/game/types"

type Kind int

const (
	KindFood Kind = iota
	KindMistake
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindMistake:
		return "mistake"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Spawnable is a single cell placed at random inside Area.
type Spawnable struct {
	Kind  Kind
	Cell  types.Cell
	Color types.Color
	Area  types.Bounds

	geo Geometry
}

// NewSpawnable returns an entity that has not been placed yet.
// area is the arena already inset by the wall thickness.
func NewSpawnable(kind Kind, area types.Bounds, geo Geometry, color types.Color) *Spawnable {
	return &Spawnable{
		Kind:  kind,
		Cell:  geo.Cell(types.Point{}),
		Color: color,
		Area:  area,
		geo:   geo,
	}
}

func (e *Spawnable) Rect() types.Cell  { return e.Cell }
func (e *Spawnable) Tint() types.Color { return e.Color }

// Spawn moves the entity to a uniformly drawn grid cell. Nothing else on
// the board is consulted.
func (e *Spawnable) Spawn(rng types.Rand) {
	x := e.roll(rng, e.Area.MinX, e.Area.MaxX, e.geo.PitchX())
	y := e.roll(rng, e.Area.MinY, e.Area.MaxY, e.geo.PitchY())
	e.Place(types.Point{X: x, Y: y})
}

// Place puts the entity at p without any checks.
func (e *Spawnable) Place(p types.Point) {
	e.Cell = e.Cell.MoveTo(p)
}

// Legal reports whether p is one of the positions Spawn can produce.
func (e *Spawnable) Legal(p types.Point) bool {
	return legalAxis(p.X, e.Area.MinX, e.Area.MaxX, e.geo.PitchX(), e.offset()) &&
		legalAxis(p.Y, e.Area.MinY, e.Area.MaxY, e.geo.PitchY(), e.offset())
}

func (e *Spawnable) offset() int {
	return e.geo.SegmentMargin + e.geo.WallThickness
}

// roll picks a grid index in [lo/pitch, hi/pitch-1] and converts it back
// to pixels, one pitch in from the wall plus the segment margin.
func (e *Spawnable) roll(rng types.Rand, lo, hi, pitch int) int {
	first, last := spawnRange(lo, hi, pitch)
	idx := first
	if last > first {
		idx += rng.Intn(last - first + 1)
	}
	return (idx-1)*pitch + e.offset()
}

func spawnRange(lo, hi, pitch int) (first, last int) {
	return lo / pitch, hi/pitch - 1
}

func legalAxis(v, lo, hi, pitch, offset int) bool {
	first, last := spawnRange(lo, hi, pitch)
	n := v - offset
	if n%pitch != 0 {
		return false
	}
	idx := n/pitch + 1
	return idx >= first && idx <= max(first, last)
}

package types

// Point is a pixel position or a per-frame velocity.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Cell is the axis-aligned square every entity is made of.
type Cell struct {
	X, Y          int
	Width, Height int
}

// NewCell returns a cell of the given size at (x, y).
func NewCell(x, y, width, height int) Cell {
	return Cell{X: x, Y: y, Width: width, Height: height}
}

// Pos returns the top-left corner of the cell.
func (c Cell) Pos() Point {
	return Point{X: c.X, Y: c.Y}
}

// MoveTo returns the same cell placed at p.
func (c Cell) MoveTo(p Point) Cell {
	c.X, c.Y = p.X, p.Y
	return c
}

// Overlaps reports whether the two cells intersect with positive area.
// Touching edges do not count.
func (c Cell) Overlaps(o Cell) bool {
	return c.X < o.X+o.Width && o.X < c.X+c.Width &&
		c.Y < o.Y+o.Height && o.Y < c.Y+c.Height
}

// Contains reports whether p lies inside the cell.
func (c Cell) Contains(p Point) bool {
	return p.X >= c.X && p.X < c.X+c.Width && p.Y >= c.Y && p.Y < c.Y+c.Height
}

// Inflate grows the cell by dx/dy in total around its centre.
func (c Cell) Inflate(dx, dy int) Cell {
	return Cell{X: c.X - dx/2, Y: c.Y - dy/2, Width: c.Width + dx, Height: c.Height + dy}
}

// Bounds is the playable arena. It is shared read-only for a whole round.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Width returns the horizontal extent of the arena.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the arena.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY
}

// Inset shrinks the bounds by n on every side.
func (b Bounds) Inset(n int) Bounds {
	return Bounds{MinX: b.MinX + n, MaxX: b.MaxX - n, MinY: b.MinY + n, MaxY: b.MaxY - n}
}

// Rand is the random source shared by every spawn. Tests inject a seeded one.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Key is a backend-independent key-down event.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	default:
		return "none"
	}
}

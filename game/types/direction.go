package types

// Direction is one of the four cardinal headings.
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Directions lists the four headings in clockwise order starting at UP.
var Directions = [4]Direction{UP, RIGHT, DOWN, LEFT}

// ToPoint returns the unit vector for d. Screen y grows downwards.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Scale returns the vector for d stretched to step pixels.
func (d Direction) Scale(step int) Point {
	p := d.ToPoint()
	return Point{X: p.X * step, Y: p.Y * step}
}

// TurnLeft returns the heading after a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the heading after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == LEFT || d == RIGHT
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool {
	return d == UP || d == DOWN
}

// DirectionOf interprets a velocity as a heading. A zero vector is NONE.
func DirectionOf(v Point) Direction {
	switch {
	case v.Y < 0:
		return UP
	case v.X > 0:
		return RIGHT
	case v.Y > 0:
		return DOWN
	case v.X < 0:
		return LEFT
	default:
		return NONE
	}
}

// DirectionForKey maps the arrow keys to headings.
func DirectionForKey(k Key) (Direction, bool) {
	switch k {
	case KeyUp:
		return UP, true
	case KeyDown:
		return DOWN, true
	case KeyLeft:
		return LEFT, true
	case KeyRight:
		return RIGHT, true
	}
	return NONE, false
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

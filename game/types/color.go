package types

type Color struct {
	R, G, B uint8
}

// Palette used by the game and every backend.
var (
	Black     = Color{R: 0, G: 0, B: 0}
	White     = Color{R: 255, G: 255, B: 255}
	Blue      = Color{R: 95, G: 135, B: 255}
	Green     = Color{R: 0, G: 255, B: 0}
	Red       = Color{R: 255, G: 0, B: 0}
	DarkGreen = Color{R: 0, G: 200, B: 0}
	DarkBlue  = Color{R: 65, G: 105, B: 225}
	Yellow    = Color{R: 255, G: 255, B: 0}
	DarkRed   = Color{R: 200, G: 0, B: 0}
	Grey      = Color{R: 211, G: 211, B: 211}
)

// Entity colors at round start.
var (
	SnakeColor    = DarkGreen
	HeadOutline   = Green
	FoodColor     = Red
	MistakeColor  = Blue
	ObstacleColor = Yellow
	WallColor     = Yellow
	ArenaColor    = White
	ScoreBarColor = Grey
	ScoreColor    = Red
)

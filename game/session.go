package game

import (
	"time"

	"github.com/google/uuid"

	"snake-arena/config"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Session is one round: the snake, everything it can hit and the score.
// It is owned by the frame loop and never shared.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	Bounds    types.Bounds
	Geometry  entity.Geometry
	Snake     *entity.Snake
	Walls     []entity.Wall
	Food      *entity.Spawnable
	Mistake   *entity.Spawnable
	Obstacles []*entity.Spawnable

	Score       int
	Frames      int
	MistakeHits int
	WallColor   types.Color

	collisionMgr *manager.CollisionManager
	spawnMgr     *manager.SpawnManager
	inputMgr     *manager.InputManager
}

// Outcome describes what a single Step did.
type Outcome struct {
	Report manager.CollisionReport
	Grew   bool
}

// NewSession lays out a fresh round. The snake starts in the top-left
// corner heading right; food, mistake and obstacles are spawned in that
// order from rng.
func NewSession(cfg config.Config, rng types.Rand, now time.Time) *Session {
	geo := entity.Geometry{
		SegmentWidth:  cfg.SegmentWidth,
		SegmentHeight: cfg.SegmentHeight,
		SegmentMargin: cfg.SegmentMargin,
		WallThickness: cfg.WallThickness,
	}
	bounds := cfg.Bounds()
	collisionMgr := manager.NewCollisionManager(cfg.Walls, cfg.Hazards)
	s := &Session{
		ID:           uuid.New(),
		StartedAt:    now,
		Bounds:       bounds,
		Geometry:     geo,
		Snake:        entity.NewSnake(cfg.Start(), cfg.StartLength, geo),
		WallColor:    types.WallColor,
		collisionMgr: collisionMgr,
		spawnMgr:     manager.NewSpawnManager(bounds, geo, rng, cfg.AvoidOverlap, collisionMgr),
		inputMgr:     manager.NewInputManager(),
	}
	s.Walls = entity.BuildWalls(bounds, geo.WallThickness, s.WallColor)

	s.Food = s.spawnMgr.NewFood(s.occupied())
	s.Mistake = s.spawnMgr.NewMistake(s.occupied())
	s.Obstacles = s.spawnMgr.NewObstacles(cfg.Obstacles, s.occupied())
	return s
}

// Collisions exposes the rules the round is played with.
func (s *Session) Collisions() *manager.CollisionManager {
	return s.collisionMgr
}

// Steer applies one key. Non-arrow keys and refused turns return false.
func (s *Session) Steer(k types.Key) bool {
	return s.inputMgr.Apply(s.Snake, k)
}

// Step advances the snake one cell and applies the consequences of what
// it ran into.
func (s *Session) Step() Outcome {
	s.Frames++
	s.Snake.Advance(s.Bounds)

	report := s.collisionMgr.Evaluate(s.Snake, s.Walls, s.Obstacles, s.Food, s.Mistake)
	out := Outcome{Report: report}
	if report.Dead() {
		return out
	}

	if report.Food {
		s.Snake.Grow()
		s.Score++
		out.Grew = true
		s.spawnMgr.Respawn(s.Food, s.occupied())
		s.recolor(types.Red, types.Red)
	}
	if report.Mistake {
		// The token stays where it is and can be hit again.
		s.MistakeHits++
		s.recolor(types.Blue, types.Blue)
	}
	return out
}

// Elapsed is the wall-clock length of the round so far.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

func (s *Session) recolor(food, walls types.Color) {
	s.Food.Color = food
	s.WallColor = walls
	s.Walls = entity.BuildWalls(s.Bounds, s.Geometry.WallThickness, walls)
}

// occupied lists every cell a spawn could land on, for overlap avoidance.
func (s *Session) occupied() []types.Cell {
	cells := append([]types.Cell(nil), s.Snake.Body...)
	if s.collisionMgr.WallsEnabled() {
		cells = append(cells, entity.Rects(s.Walls)...)
	}
	for _, e := range []*entity.Spawnable{s.Food, s.Mistake} {
		if e != nil {
			cells = append(cells, e.Rect())
		}
	}
	return append(cells, entity.Rects(s.Obstacles)...)
}

package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// MaxSpawnTries bounds the re-rolls made when overlap avoidance is on.
const MaxSpawnTries = 64

// SpawnManager creates and places the food, the mistake token and the
// obstacles for one round.
type SpawnManager struct {
	geo          entity.Geometry
	area         types.Bounds
	rng          types.Rand
	avoidOverlap bool
	collisionMgr *CollisionManager
}

// NewSpawnManager places entities inside bounds inset by the wall thickness.
func NewSpawnManager(bounds types.Bounds, geo entity.Geometry, rng types.Rand, avoidOverlap bool, collisionMgr *CollisionManager) *SpawnManager {
	return &SpawnManager{
		geo:          geo,
		area:         bounds.Inset(geo.WallThickness),
		rng:          rng,
		avoidOverlap: avoidOverlap,
		collisionMgr: collisionMgr,
	}
}

// Area returns the region spawns are drawn from.
func (sm *SpawnManager) Area() types.Bounds {
	return sm.area
}

func (sm *SpawnManager) NewFood(occupied []types.Cell) *entity.Spawnable {
	return sm.create(entity.KindFood, types.FoodColor, occupied)
}

func (sm *SpawnManager) NewMistake(occupied []types.Cell) *entity.Spawnable {
	return sm.create(entity.KindMistake, types.MistakeColor, occupied)
}

// NewObstacles spawns n obstacles in order. With overlap avoidance each one
// also keeps clear of those placed before it.
func (sm *SpawnManager) NewObstacles(n int, occupied []types.Cell) []*entity.Spawnable {
	taken := append([]types.Cell(nil), occupied...)
	obstacles := make([]*entity.Spawnable, 0, n)
	for i := 0; i < n; i++ {
		o := sm.create(entity.KindObstacle, types.ObstacleColor, taken)
		obstacles = append(obstacles, o)
		taken = append(taken, o.Rect())
	}
	return obstacles
}

// Respawn moves e to a new random cell. occupied is ignored unless overlap
// avoidance is enabled; if every try collides the last roll is kept.
func (sm *SpawnManager) Respawn(e *entity.Spawnable, occupied []types.Cell) {
	e.Spawn(sm.rng)
	if !sm.avoidOverlap {
		return
	}
	for try := 1; try < MaxSpawnTries; try++ {
		if sm.collisionMgr.ValidateSpawnPosition(e.Rect(), occupied) {
			return
		}
		e.Spawn(sm.rng)
	}
}

func (sm *SpawnManager) create(kind entity.Kind, color types.Color, occupied []types.Cell) *entity.Spawnable {
	e := entity.NewSpawnable(kind, sm.area, sm.geo, color)
	sm.Respawn(e, occupied)
	return e
}

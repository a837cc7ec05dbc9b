package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// CollisionType names what ended a round.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	default:
		return "none"
	}
}

// CollisionReport is the outcome of one frame's checks.
type CollisionReport struct {
	Fatal    CollisionType
	Obstacle int // index of the obstacle hit, -1 otherwise
	Food     bool
	Mistake  bool
}

// Dead reports whether the frame ended the round.
func (r CollisionReport) Dead() bool {
	return r.Fatal != NoCollision
}

type CollisionManager struct {
	walls   bool
	hazards bool
}

// NewCollisionManager selects which hazard groups are active for a round.
// Self collision is always checked.
func NewCollisionManager(walls, hazards bool) *CollisionManager {
	return &CollisionManager{
		walls:   walls,
		hazards: hazards,
	}
}

func (cm *CollisionManager) WallsEnabled() bool   { return cm.walls }
func (cm *CollisionManager) HazardsEnabled() bool { return cm.hazards }

// Overlaps is the pairwise test every other check is built on.
func Overlaps(a, b types.Cell) bool {
	return a.Overlaps(b)
}

// HeadVsGroup reports the index of the first cell in group that head
// overlaps, or -1.
func HeadVsGroup(head types.Cell, group []types.Cell) int {
	for i, c := range group {
		if Overlaps(head, c) {
			return i
		}
	}
	return -1
}

// CheckFatal runs the hazard checks for a head at the given cell in fixed
// order: walls, own tail, then each obstacle. The first hit wins.
func (cm *CollisionManager) CheckFatal(head types.Cell, tail []types.Cell, walls []entity.Wall, obstacles []*entity.Spawnable) (CollisionType, int) {
	if cm.walls && HeadVsGroup(head, entity.Rects(walls)) >= 0 {
		return WallCollision, -1
	}
	if HeadVsGroup(head, tail) >= 0 {
		return SelfCollision, -1
	}
	if cm.hazards {
		if i := HeadVsGroup(head, entity.Rects(obstacles)); i >= 0 {
			return ObstacleCollision, i
		}
	}
	return NoCollision, -1
}

// Evaluate checks the snake against everything on the board. Food and the
// mistake token are only looked at when the frame is not fatal.
func (cm *CollisionManager) Evaluate(snake *entity.Snake, walls []entity.Wall, obstacles []*entity.Spawnable, food, mistake *entity.Spawnable) CollisionReport {
	report := CollisionReport{Obstacle: -1}
	report.Fatal, report.Obstacle = cm.CheckFatal(snake.Head(), snake.Tail(), walls, obstacles)
	if report.Dead() {
		return report
	}
	report.Food = food != nil && snake.Collides(food.Rect())
	report.Mistake = mistake != nil && snake.Collides(mistake.Rect())
	return report
}

// ValidateSpawnPosition checks that c is clear of every occupied cell.
func (cm *CollisionManager) ValidateSpawnPosition(c types.Cell, occupied []types.Cell) bool {
	return HeadVsGroup(c, occupied) < 0
}

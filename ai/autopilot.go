package ai

import (
	"github.com/google/uuid"

	"snake-arena/game"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Autopilot plays rounds by pressing arrow keys chosen by a Q-learning
// agent. The table lives as long as the process.
type Autopilot struct {
	Agent       *QLearning
	GamesPlayed int

	prev *transition
}

type transition struct {
	round  uuid.UUID
	state  State
	action Action
	dist   int
	score  int
}

func NewAutopilot(rng types.Rand) *Autopilot {
	return &Autopilot{Agent: NewQLearning(rng)}
}

// Act rewards the previous choice using the board as it is now, then
// picks this frame's key.
func (p *Autopilot) Act(s *game.Session) types.Key {
	state, dist := Observe(s)
	if p.prev != nil && p.prev.round == s.ID {
		p.Agent.Update(p.prev.state, p.prev.action, p.reward(s, dist), &state)
	}
	action := p.Agent.GetAction(state)
	p.prev = &transition{
		round:  s.ID,
		state:  state,
		action: action,
		dist:   dist,
		score:  s.Score,
	}
	return action.Key()
}

// Finish charges the last move of a round with the death penalty.
func (p *Autopilot) Finish(r game.RoundResult) {
	if p.prev != nil && p.prev.round == r.ID {
		p.Agent.Update(p.prev.state, p.prev.action, RewardDeath, nil)
	}
	p.prev = nil
	p.GamesPlayed++
}

func (p *Autopilot) reward(s *game.Session, dist int) float64 {
	switch {
	case s.Score > p.prev.score:
		return RewardFood
	case dist < p.prev.dist:
		return RewardCloser
	case dist > p.prev.dist:
		return RewardFarther
	default:
		return 0
	}
}

// Observe builds the agent's state and the grid distance to the food.
// Danger uses the same wrap and collision rules as the round itself.
func Observe(s *game.Session) (State, int) {
	head := s.Snake.Head()
	food := s.Food.Rect()
	geo := s.Geometry

	var st State
	st.RelativeFoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}

	// The last segment moves out of the way on the next advance.
	tail := s.Snake.Body[1 : s.Snake.Len()-1]
	for i, d := range types.Directions {
		pitch := geo.PitchX()
		if d.Vertical() {
			pitch = geo.PitchY()
		}
		next := entity.WrapPoint(head.Pos().Add(d.Scale(pitch)), s.Bounds, geo.SegmentMargin)
		hit, _ := s.Collisions().CheckFatal(head.MoveTo(next), tail, s.Walls, s.Obstacles)
		st.DangerDirs[i] = hit != manager.NoCollision
	}

	dist := abs(food.X-head.X)/geo.PitchX() + abs(food.Y-head.Y)/geo.PitchY()
	return st, dist
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

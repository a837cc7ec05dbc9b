package ai

import (
	"snake-arena/game/types"
)

// State is what the agent sees of the board.
type State struct {
	RelativeFoodDir [2]int  // sign of food - head on each axis
	DangerDirs      [4]bool // up, right, down, left
}

// Action indexes types.Directions.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Direction returns the heading this action asks for.
func (a Action) Direction() types.Direction {
	return types.Directions[a]
}

// Key returns the arrow key that requests this action.
func (a Action) Key() types.Key {
	switch a {
	case Up:
		return types.KeyUp
	case Right:
		return types.KeyRight
	case Down:
		return types.KeyDown
	default:
		return types.KeyLeft
	}
}

// Rewards handed out per transition.
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
)

// QTable maps a state to the value of each action.
type QTable map[State][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64

	rng types.Rand
}

// NewQLearning returns an empty table. rng drives exploration.
func NewQLearning(rng types.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

// GetAction is epsilon-greedy over the table.
func (q *QLearning) GetAction(s State) Action {
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(4))
	}
	return q.BestAction(s)
}

// BestAction returns the highest valued action; ties go to the lowest index.
func (q *QLearning) BestAction(s State) Action {
	values := q.QTable[s]
	best := Up
	for a := Right; a <= Left; a++ {
		if values[a] > values[best] {
			best = a
		}
	}
	return best
}

// Update applies one Q-learning step. A nil next marks a terminal
// transition with no future value.
func (q *QLearning) Update(s State, a Action, reward float64, next *State) {
	var future float64
	if next != nil {
		nv := q.QTable[*next]
		future = nv[0]
		for _, v := range nv[1:] {
			future = max(future, v)
		}
	}
	values := q.QTable[s]
	values[a] += q.LearningRate * (reward + q.Discount*future - values[a])
	q.QTable[s] = values
	q.TotalReward += reward
}

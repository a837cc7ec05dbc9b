package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// InputManager turns key presses into direction changes.
type InputManager struct {
	accepted int
	rejected int
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// Apply steers the snake with k. Keys that are not arrows, and turns the
// snake refuses, return false.
func (im *InputManager) Apply(s *entity.Snake, k types.Key) bool {
	d, ok := types.DirectionForKey(k)
	if !ok {
		return false
	}
	if !s.SetDirection(d) {
		im.rejected++
		return false
	}
	im.accepted++
	return true
}

// ApplyAll feeds keys in arrival order. Each accepted turn changes the axis
// the next key is judged against.
func (im *InputManager) ApplyAll(s *entity.Snake, keys []types.Key) int {
	n := 0
	for _, k := range keys {
		if im.Apply(s, k) {
			n++
		}
	}
	return n
}

// Counts returns the accepted and rejected turns so far.
func (im *InputManager) Counts() (accepted, rejected int) {
	return im.accepted, im.rejected
}

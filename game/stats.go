package game

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"snake-arena/game/manager"
)

// HistorySize is how many rounds are kept individually; older rounds only
// survive in the totals.
const HistorySize = 100

// RoundRecord is what the history keeps about a finished round.
type RoundRecord struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Cause     manager.CollisionType
	Frames    int
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Stats is the in-memory history of the rounds played by this process.
type Stats struct {
	Rounds []RoundRecord // most recent last, at most HistorySize

	played        int
	best          int
	totalScore    int
	totalDuration time.Duration
}

func NewStats() *Stats {
	return &Stats{Rounds: make([]RoundRecord, 0, HistorySize)}
}

// Add records a finished round.
func (s *Stats) Add(r RoundRecord) {
	if len(s.Rounds) == HistorySize {
		copy(s.Rounds, s.Rounds[1:])
		s.Rounds = s.Rounds[:HistorySize-1]
	}
	s.Rounds = append(s.Rounds, r)

	s.played++
	s.totalScore += r.Score
	s.totalDuration += r.Duration()
	if r.Score > s.best {
		s.best = r.Score
	}
}

func (s *Stats) GamesPlayed() int {
	return s.played
}

func (s *Stats) MaxScore() int {
	return s.best
}

func (s *Stats) AverageScore() float64 {
	if s.played == 0 {
		return 0
	}
	return float64(s.totalScore) / float64(s.played)
}

func (s *Stats) AverageDuration() time.Duration {
	if s.played == 0 {
		return 0
	}
	return s.totalDuration / time.Duration(s.played)
}

// MedianScore is taken over the rounds still held individually.
func (s *Stats) MedianScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	scores := make([]int, len(s.Rounds))
	for i, r := range s.Rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// Last returns the most recent round.
func (s *Stats) Last() (RoundRecord, bool) {
	if len(s.Rounds) == 0 {
		return RoundRecord{}, false
	}
	return s.Rounds[len(s.Rounds)-1], true
}

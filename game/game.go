package game

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"snake-arena/config"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// RoundResult is how a round ended. Dying is not an error.
type RoundResult struct {
	ID       uuid.UUID
	Score    int
	Length   int
	Cause    manager.CollisionType
	Obstacle int
	Frames   int
	Duration time.Duration
}

// Game drives the screens and owns the current round.
type Game struct {
	Stats *Stats

	cfg     config.Config
	rng     types.Rand
	states  *manager.StateManager
	session *Session
	last    *RoundResult
	logger  *log.Logger
	now     func() time.Time
}

// New returns a game sitting on the main menu. A nil logger discards.
func New(cfg config.Config, rng types.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		Stats:  NewStats(),
		cfg:    cfg,
		rng:    rng,
		states: manager.NewStateManager(),
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces time.Now for round timing.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

func (g *Game) State() manager.State {
	return g.states.State()
}

// Session returns the current round, nil on the menu.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Config() config.Config {
	return g.cfg
}

func (g *Game) WallsEnabled() bool {
	return g.cfg.Walls
}

// LastRound returns the result of the most recent round.
func (g *Game) LastRound() (RoundResult, bool) {
	if g.last == nil {
		return RoundResult{}, false
	}
	return *g.last, true
}

// Dispatch performs a screen action. Actions that make no sense in the
// current state are ignored and return false.
func (g *Game) Dispatch(a manager.Action) bool {
	if a == manager.ActionEnd {
		// Rounds only end through a fatal collision in Tick.
		return false
	}
	from := g.states.State()
	to, ok := g.states.Fire(a)
	if !ok {
		return false
	}

	switch a {
	case manager.ActionStart, manager.ActionRetry:
		g.startRound()
	case manager.ActionToggleWalls:
		g.cfg.Walls = !g.cfg.Walls
		g.logger.Printf("walls %s", onOff(g.cfg.Walls))
	case manager.ActionPause, manager.ActionResume:
		g.logger.Printf("round %s %s at frame %d", g.session.ID, to, g.session.Frames)
	case manager.ActionMenu:
		g.session = nil
	case manager.ActionQuit:
		g.logger.Printf("quit from %s after %d rounds", from, g.Stats.GamesPlayed())
	}
	return true
}

// Tick runs one frame. keys are applied in arrival order: Escape toggles
// pause, arrows steer while running. The returned result is non-nil only
// on the frame the round ends.
func (g *Game) Tick(keys []types.Key) *RoundResult {
	for _, k := range keys {
		switch g.states.State() {
		case manager.StateRunning:
			if k == types.KeyEscape {
				g.Dispatch(manager.ActionPause)
				continue
			}
			g.session.Steer(k)
		case manager.StatePaused:
			if k == types.KeyEscape {
				g.Dispatch(manager.ActionResume)
			}
		}
	}
	if g.states.State() != manager.StateRunning {
		return nil
	}

	out := g.session.Step()
	if !out.Report.Dead() {
		return nil
	}
	return g.endRound(out.Report)
}

func (g *Game) startRound() {
	g.session = NewSession(g.cfg, g.rng, g.now())
	g.logger.Printf("round %s started (walls %s, %d obstacles)", g.session.ID, onOff(g.cfg.Walls), len(g.session.Obstacles))
}

func (g *Game) endRound(report manager.CollisionReport) *RoundResult {
	g.states.Fire(manager.ActionEnd)
	s := g.session
	end := g.now()
	result := RoundResult{
		ID:       s.ID,
		Score:    s.Score,
		Length:   s.Snake.Len(),
		Cause:    report.Fatal,
		Obstacle: report.Obstacle,
		Frames:   s.Frames,
		Duration: s.Elapsed(end),
	}
	g.last = &result
	g.Stats.Add(RoundRecord{
		ID:        result.ID,
		StartTime: s.StartedAt,
		EndTime:   end,
		Score:     result.Score,
		Length:    result.Length,
		Cause:     result.Cause,
		Frames:    result.Frames,
	})
	g.logger.Printf("round %s ended: score %d, length %d, hit %s after %d frames (mistake hits %d)",
		result.ID, result.Score, result.Length, result.Cause, result.Frames, s.MistakeHits)
	return &result
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

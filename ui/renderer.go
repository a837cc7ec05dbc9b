package ui

import (
	"fmt"

	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

const (
	titleSize   = 60
	textSize    = 40
	historyBars = 40
)

type Renderer struct {
	screenWidth      int
	screenHeight     int
	scoreBoardHeight int
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		screenWidth:      cfg.ScreenWidth,
		screenHeight:     cfg.ScreenHeight,
		scoreBoardHeight: cfg.ScoreBoardHeight,
	}
}

func (r *Renderer) centerX() int { return r.screenWidth / 2 }
func (r *Renderer) titleY() int  { return r.screenHeight / 4 }

// Draw renders one frame for whatever screen the game is on.
func (r *Renderer) Draw(s Surface, g *game.Game, mouse types.Point) {
	s.BeginFrame(types.ArenaColor)
	switch g.State() {
	case manager.StateMenu:
		r.drawTitle(s, "Snake", titleSize)
		drawButtons(s, r.buttons(s, g), mouse)
	case manager.StateRunning, manager.StatePaused:
		r.drawRound(s, g.Session())
		if g.State() == manager.StatePaused {
			r.drawPaused(s)
			drawButtons(s, r.buttons(s, g), mouse)
		}
	case manager.StateEnded:
		r.drawGameOver(s, g)
		drawButtons(s, r.buttons(s, g), mouse)
	}
	s.EndFrame()
}

// DrawRound renders a single round frame, used for screenshots.
func (r *Renderer) DrawRound(s Surface, sess *game.Session) {
	s.BeginFrame(types.ArenaColor)
	r.drawRound(s, sess)
	s.EndFrame()
}

// Press returns the screen action the input asks for, if any.
func (r *Renderer) Press(s Surface, g *game.Game, in FrameInput) (manager.Action, bool) {
	return pressed(r.buttons(s, g), in)
}

func (r *Renderer) buttons(s Surface, g *game.Game) []placedButton {
	switch g.State() {
	case manager.StateMenu:
		return layoutButtons(s, menuButtons(g.WallsEnabled()), r.centerX(), r.titleY(), titleSize)
	case manager.StatePaused:
		return layoutButtons(s, pauseButtons, r.centerX(), r.titleY(), titleSize)
	case manager.StateEnded:
		return layoutButtons(s, gameOverButtons, r.centerX(), r.titleY(), titleSize)
	default:
		return nil
	}
}

// drawRound paints back to front: walls, entities, snake, score bar.
func (r *Renderer) drawRound(s Surface, sess *game.Session) {
	if sess == nil {
		return
	}
	if sess.Collisions().WallsEnabled() {
		for _, w := range sess.Walls {
			s.FillRect(w.Rect(), w.Tint())
		}
	}
	s.FillRect(sess.Food.Rect(), sess.Food.Tint())
	s.FillRect(sess.Mistake.Rect(), sess.Mistake.Tint())
	for _, o := range sess.Obstacles {
		s.FillRect(o.Rect(), o.Tint())
	}
	for _, c := range sess.Snake.Body {
		s.FillRect(c, sess.Snake.Color)
	}
	s.StrokeRect(sess.Snake.Head(), types.HeadOutline)

	s.FillRect(types.NewCell(0, 0, r.screenWidth, r.scoreBoardHeight), types.ScoreBarColor)
	score := fmt.Sprintf("Score: %d", sess.Score)
	w := s.MeasureText(score, titleSize)
	s.DrawText(score, r.centerX()-w/2, r.scoreBoardHeight/2-titleSize/2, titleSize, types.ScoreColor)
}

func (r *Renderer) drawPaused(s Surface) {
	label := "Paused"
	w := s.MeasureText(label, titleSize)
	box := types.NewCell(r.centerX()-w/2, r.screenHeight/2-titleSize/2, w, titleSize).Inflate(buttonPadX, buttonPadY)
	s.FillRect(box, types.Grey)
	s.DrawText(label, r.centerX()-w/2, r.screenHeight/2-titleSize/2, titleSize, types.Black)
}

func (r *Renderer) drawTitle(s Surface, text string, size int) {
	w := s.MeasureText(text, size)
	s.DrawText(text, r.centerX()-w/2, r.titleY()-size/2, size, types.Black)
}

func (r *Renderer) drawGameOver(s Surface, g *game.Game) {
	score := 0
	if last, ok := g.LastRound(); ok {
		score = last.Score
	}
	r.drawTitle(s, fmt.Sprintf("Game over! Score %d", score), titleSize)

	line := fmt.Sprintf("Best: %d  Rounds: %d", g.Stats.MaxScore(), g.Stats.GamesPlayed())
	w := s.MeasureText(line, textSize)
	s.DrawText(line, r.centerX()-w/2, r.titleY()+75-textSize/2, textSize, types.DarkBlue)

	r.drawHistory(s, g.Stats)
}

// drawHistory is a bar chart of recent scores along the bottom edge.
func (r *Renderer) drawHistory(s Surface, stats *game.Stats) {
	rounds := stats.Rounds
	if len(rounds) > historyBars {
		rounds = rounds[len(rounds)-historyBars:]
	}
	best := max(stats.MaxScore(), 1)
	height := r.screenHeight / 12
	barW := r.screenWidth / historyBars
	for i, rec := range rounds {
		h := rec.Score * height / best
		if h == 0 {
			continue
		}
		s.FillRect(types.NewCell(i*barW, r.screenHeight-h, barW-1, h), types.DarkGreen)
	}
}

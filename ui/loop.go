package ui

import (
	"fmt"
	"io"
	"log"

	"snake-arena/ai"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Options are the optional extras of the frame loop.
type Options struct {
	Autopilot  *ai.Autopilot // plays instead of the keyboard when set
	Screenshot string        // PNG written at every round end when set
	Logger     *log.Logger
}

// Open creates the backend named in cfg.
func Open(cfg config.Config) (Backend, error) {
	switch cfg.Backend {
	case config.BackendRaylib:
		b, err := NewRaylibBackend(cfg.ScreenWidth, cfg.ScreenHeight, cfg.FrameRate, "Snake")
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.BackendTerminal:
		b, err := NewTerminalBackend(cfg.FrameRate, cfg.SegmentWidth+cfg.SegmentMargin, cfg.SegmentHeight+cfg.SegmentMargin)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Run drives the game until it quits: poll, simulate, render, wait. It
// closes b before returning.
func Run(g *game.Game, b Backend, r *Renderer, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	for g.State() != manager.StateQuit {
		in := b.Poll()
		if in.Quit {
			g.Dispatch(manager.ActionQuit)
			break
		}
		Frame(g, r, b, in, opts)
		b.Wait()
	}
	if err := b.Close(); err != nil {
		return fmt.Errorf("close backend: %w", err)
	}
	return nil
}

// Frame runs one loop iteration against s without waiting. The frame that
// ends a round still shows the board as it was at the collision.
func Frame(g *game.Game, r *Renderer, s Surface, in FrameInput, opts Options) {
	pilot := opts.Autopilot
	var ended bool
	switch g.State() {
	case manager.StateMenu, manager.StateEnded:
		if pilot != nil {
			if g.State() == manager.StateMenu {
				g.Dispatch(manager.ActionStart)
			} else {
				g.Dispatch(manager.ActionRetry)
			}
		} else if a, ok := r.Press(s, g, in); ok {
			g.Dispatch(a)
		}
	case manager.StatePaused:
		// A pause button consumes the frame; otherwise Escape may resume.
		if a, ok := r.Press(s, g, in); ok {
			g.Dispatch(a)
			break
		}
		ended = tick(g, r, in.Keys, opts)
	case manager.StateRunning:
		keys := in.Keys
		if pilot != nil {
			keys = append(keys[:len(keys):len(keys)], pilot.Act(g.Session()))
		}
		ended = tick(g, r, keys, opts)
	}
	switch {
	case g.State() == manager.StateQuit:
	case ended:
		r.DrawRound(s, g.Session())
	default:
		r.Draw(s, g, in.Mouse)
	}
}

// tick steps the round and reports whether it ended on this frame.
func tick(g *game.Game, r *Renderer, keys []types.Key, opts Options) bool {
	res := g.Tick(keys)
	if res == nil {
		return false
	}
	if opts.Autopilot != nil {
		opts.Autopilot.Finish(*res)
	}
	if opts.Screenshot != "" {
		if err := SaveScreenshot(r, g.Session(), opts.Screenshot); err != nil {
			opts.Logger.Printf("screenshot: %v", err)
		}
	}
	return true
}

// SaveScreenshot renders the round offscreen and writes it as PNG.
func SaveScreenshot(r *Renderer, sess *game.Session, path string) error {
	img := NewImageSurface(r.screenWidth, r.screenHeight)
	r.DrawRound(img, sess)
	if err := img.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

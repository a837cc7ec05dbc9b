package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"snake-arena/ai"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("snake: %v", err)
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	backend, err := ui.Open(cfg)
	if err != nil {
		logger.Printf("open %s backend: %v", cfg.Backend, err)
		closeLog()
		os.Exit(1)
	}
	logger.Printf("backend %s, seed %d", cfg.Backend, seed)

	opts := ui.Options{Screenshot: cfg.Screenshot, Logger: logger}
	if cfg.Autopilot {
		opts.Autopilot = ai.NewAutopilot(rng)
	}

	g := game.New(cfg, rng, logger)
	if err := ui.Run(g, backend, ui.NewRenderer(cfg), opts); err != nil {
		logger.Printf("run: %v", err)
	}
	if opts.Autopilot != nil {
		logger.Printf("autopilot: %d rounds, %d states, total reward %.1f",
			opts.Autopilot.GamesPlayed, len(opts.Autopilot.Agent.QTable), opts.Autopilot.Agent.TotalReward)
	}
}

// newLogger writes to stderr, or to the -log file. The terminal backend owns
// the tty, so without -log its output is discarded.
func newLogger(cfg config.Config) (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case cfg.Log != "":
		f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("snake: open log: %v", err)
		}
		out = f
		closer = func() { f.Close() }
	case cfg.Backend == config.BackendTerminal:
		out = io.Discard
	}
	return log.New(out, "snake: ", log.LstdFlags|log.Lmsgprefix), closer
}

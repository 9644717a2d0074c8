package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/logging"
	"classic-snake/platform/terminal"
	"classic-snake/platform/window"
	"classic-snake/ui"
)

// driver is what both host backends provide
type driver interface {
	game.Scheduler
	Surface() ui.Surface
	Now() float64
	Run(onKey func(key string) bool) error
	Close()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "Usage of snake:")
		config.Usage(os.Stderr)
		return nil
	}
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.Logger()
	log.Info("starting",
		"backend", cfg.Backend,
		"grid", cfg.GridSize,
		"cell", cfg.CellSize,
		"tick", cfg.TickInterval,
		"fps", cfg.TargetFPS,
		"seed", cfg.Seed,
		"permissive", cfg.Permissive)

	d, err := openDriver(cfg)
	if err != nil {
		log.Error("host unavailable", "backend", cfg.Backend, "err", err)
		return err
	}
	defer d.Close()

	policy := manager.Strict
	if cfg.Permissive {
		policy = manager.Permissive
	}
	session := game.NewSession(game.Options{
		Grid:   types.NewSquareGrid(cfg.GridSize),
		Random: manager.NewRandomSource(cfg.Seed),
		Policy: policy,
	})

	loop := game.NewLoop(session, d, ui.NewRenderer(d.Surface(), cfg.CellSize), game.LoopOptions{
		TickInterval:  cfg.TickInterval,
		MaxFrameDelta: cfg.MaxFrameDelta,
	})
	loop.Start(d.Now())
	defer loop.Stop()

	if err := d.Run(session.HandleKey); err != nil {
		return errors.Wrap(err, "host loop")
	}
	log.Info("session finished",
		"session", session.ID,
		"rounds", session.Stats().GetRoundsPlayed(),
		"best", session.Stats().GetHighScore())
	return nil
}

func openDriver(cfg config.Config) (driver, error) {
	size := cfg.CanvasSize()
	if cfg.Backend == config.BackendTerminal {
		d, err := terminal.Open(size, size, cfg.CellSize, cfg.TargetFPS)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	d, err := window.Open(size, size, cfg.TargetFPS)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// setupLogging installs the process logger. The terminal backend owns the
// screen, so it only logs to a file.
func setupLogging(cfg config.Config) (func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		w = f
		closer = func() { f.Close() }
	case cfg.Backend == config.BackendTerminal:
		w = io.Discard
	}

	logging.SetLogger(logging.New(w, level))
	return func() {
		logging.SetLogger(nil)
		closer()
	}, nil
}

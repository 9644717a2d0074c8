// Package config resolves runtime settings from defaults, an optional
// .env file, SNAKE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"classic-snake/game/types"
	"classic-snake/logging"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Host backends
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

const defaultEnvFile = ".env"

type Config struct {
	GridSize      int
	CellSize      int
	TickInterval  time.Duration
	TargetFPS     int
	MaxFrameDelta time.Duration
	Seed          uint64
	Backend       string
	LogLevel      string
	LogFile       string
	Permissive    bool
	EnvFile       string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		GridSize:     types.GridSize,
		CellSize:     types.CellSize,
		TickInterval: types.TickInterval,
		TargetFPS:    types.TargetFPS,
		Backend:      BackendWindow,
		LogLevel:     "info",
		EnvFile:      defaultEnvFile,
	}
}

// CanvasSize returns the drawing surface edge in pixels
func (c Config) CanvasSize() int {
	return c.GridSize * c.CellSize
}

// Load builds a Config from args (without the program name) and the
// process environment.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	// First pass only finds the env file; flags are applied again last.
	scratch := Default()
	if err := scratch.applyFlags(args); err != nil {
		return cfg, err
	}
	fileValues, err := readEnvFile(scratch.EnvFile)
	if err != nil {
		return cfg, err
	}
	lookupAll := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	if err := cfg.applyEnv(lookupAll); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readEnvFile parses the file without touching the process environment.
// A missing file is not an error.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read env file %s", path)
	}
	logging.Logger().Debug("env file loaded", "path", path, "keys", len(values))
	return values, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_GRID_SIZE", &c.GridSize},
		{"SNAKE_CELL_SIZE", &c.CellSize},
		{"SNAKE_FPS", &c.TargetFPS},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s=%q is not an integer", e.key, v)
			}
			*e.dst = n
		}
	}

	millis := []struct {
		key string
		dst *time.Duration
	}{
		{"SNAKE_TICK_MS", &c.TickInterval},
		{"SNAKE_MAX_FRAME_DELTA_MS", &c.MaxFrameDelta},
	}
	for _, e := range millis {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s=%q is not a millisecond count", e.key, v)
			}
			*e.dst = time.Duration(n) * time.Millisecond
		}
	}

	if v, ok := lookup("SNAKE_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "SNAKE_SEED=%q is not an unsigned integer", v)
		}
		c.Seed = n
	}
	if v, ok := lookup("SNAKE_PERMISSIVE_TRANSITIONS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "SNAKE_PERMISSIVE_TRANSITIONS=%q is not a boolean", v)
		}
		c.Permissive = b
	}
	if v, ok := lookup("SNAKE_BACKEND"); ok {
		c.Backend = v
	}
	if v, ok := lookup("SNAKE_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("SNAKE_LOG_FILE"); ok {
		c.LogFile = v
	}
	return nil
}

func (c *Config) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&c.GridSize, "grid", c.GridSize, "Grid cells per side")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Time per snake step")
	fs.IntVar(&c.TargetFPS, "fps", c.TargetFPS, "Target frames per second")
	fs.DurationVar(&c.MaxFrameDelta, "max-frame-delta", c.MaxFrameDelta, "Clamp for one frame's elapsed time (0 disables)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Food placement seed (0 uses the clock)")
	fs.StringVar(&c.Backend, "backend", c.Backend, "Host backend: window or terminal")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file")
	fs.BoolVar(&c.Permissive, "permissive", c.Permissive, "Allow any state transition")
	fs.StringVar(&c.EnvFile, "env-file", c.EnvFile, "Optional .env file")
	return fs
}

func (c *Config) applyFlags(args []string) error {
	if err := c.flagSet().Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Usage writes the flag summary to w
func Usage(w io.Writer) {
	cfg := Default()
	fs := cfg.flagSet()
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	switch {
	case c.GridSize < 5:
		return errors.Wrapf(ErrInvalidConfig, "grid size %d is below 5", c.GridSize)
	case c.CellSize < 4:
		return errors.Wrapf(ErrInvalidConfig, "cell size %d is below 4", c.CellSize)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick interval %v must be positive", c.TickInterval)
	case c.TargetFPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "fps %d must be positive", c.TargetFPS)
	case c.MaxFrameDelta < 0:
		return errors.Wrapf(ErrInvalidConfig, "max frame delta %v is negative", c.MaxFrameDelta)
	case c.Backend != BackendWindow && c.Backend != BackendTerminal:
		return errors.Wrapf(ErrInvalidConfig, "unknown backend %q", c.Backend)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

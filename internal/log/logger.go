// Package log configures the global zerolog logger for the CLI.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Verbose bool      // enable debug level
	Output  io.Writer // optional writer (defaults to os.Stderr)
	NoColor bool      // disable console colors
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. Diagnostics go to
// stderr so the report on stdout stays machine-readable.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.WarnLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		} else if env := os.Getenv("LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}

		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}

		console := zerolog.ConsoleWriter{Out: writer, NoColor: cfg.NoColor}
		base = zerolog.New(console).Level(level).With().Timestamp().Logger()
	})
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}

// Package logging builds the zerolog logger shared by the CLI and services.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/config"
)

// New returns a logger writing to w. Pretty output uses zerolog's console
// writer; colour is dropped when w is not a terminal or NoColor is set.
// An unknown level is reported and the logger falls back to warn.
func New(cfg config.LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	var log zerolog.Logger
	if cfg.Pretty {
		output := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor || !isTerminal(w),
		}
		log = zerolog.New(output).With().Timestamp().Logger()
	} else {
		log = zerolog.New(w).With().Timestamp().Logger()
	}

	level, err := ParseLevel(cfg.Level)
	log = log.Level(level)
	return log, err
}

// ParseLevel accepts zerolog level names case-insensitively. Empty means
// warn.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

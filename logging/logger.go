// Package logging builds the process-wide slog logger from LOG_LEVEL and LOG_FORMAT.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// ServiceName is attached to every record written by New.
const ServiceName = "dishdash"

type Config struct {
	Level  string
	Format string
	// AddSource includes file:line on each record.
	AddSource bool
}

// ParseLevel maps a textual level to slog. Unrecognized values mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat normalizes a LOG_FORMAT value. Empty selects JSON.
func ParseFormat(raw string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(raw)); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported log format %q (want %s or %s)", raw, FormatJSON, FormatText)
	}
}

// New returns a logger writing to w (stdout when nil), tagged with the service name.
// An unsupported format falls back to JSON; config.Validate rejects it earlier.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if f, _ := ParseFormat(cfg.Format); f == FormatText {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(slog.String("service", ServiceName))
}

package observability

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sandfly/dawnpatrol/internal/config"
)

// NewLogger builds a slog logger per LOG_FORMAT and LOG_LEVEL, writing to w.
// The TUI passes its own writer so bubbletea keeps the terminal to itself;
// the daemon passes os.Stderr.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "dawnpatrol")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

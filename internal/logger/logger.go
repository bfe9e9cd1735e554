package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "forum-api"

// Log is the process-wide logger. It carries the service attribute on every record.
var Log *slog.Logger

// level is shared by every handler Setup builds, so SetLevel applies without rebuilding Log.
var level = new(slog.LevelVar)

// Options selects where records go and how they are encoded.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer // stdout when nil
}

func init() {
	Setup(Options{Level: "info"})
}

// Setup replaces Log and the slog default.
func Setup(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	SetLevel(opts.Level)

	Log = slog.New(newHandler(out, opts.JSON)).With(slog.String("service", serviceName))
	slog.SetDefault(Log)
}

// SetLevel changes the minimum level of the current logger.
// Unknown names fall back to info.
func SetLevel(name string) {
	level.Set(parseLevel(name))
}

func newHandler(w io.Writer, json bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, AddSource: true}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(name string) slog.Level {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

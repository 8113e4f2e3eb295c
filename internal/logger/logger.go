package logger

import (
	"fmt"
	stdlog "log"
	"os"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger is the sink every component receives explicitly. There is no
// package-global logger; callers construct one and pass it down.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, err error, kv ...any)
}

// Standard writes timestamped lines with appended key=value pairs to an
// underlying *log.Logger, filtered by a minimum level.
type Standard struct {
	logger   *stdlog.Logger
	minLevel Level
}

var _ Logger = (*Standard)(nil)

// New returns a Standard logger writing to stderr.
func New(minLevel Level) *Standard {
	return &Standard{
		logger:   stdlog.New(os.Stderr, "", 0),
		minLevel: minLevel,
	}
}

// NewWithBackend wraps an existing *log.Logger. Useful for tests that
// capture output.
func NewWithBackend(backend *stdlog.Logger, minLevel Level) *Standard {
	return &Standard{logger: backend, minLevel: minLevel}
}

func (s *Standard) Debug(msg string, kv ...any) {
	s.logWithLevel(LevelDebug, msg, kv...)
}

func (s *Standard) Info(msg string, kv ...any) {
	s.logWithLevel(LevelInfo, msg, kv...)
}

func (s *Standard) Warn(msg string, kv ...any) {
	s.logWithLevel(LevelWarn, msg, kv...)
}

func (s *Standard) Error(msg string, err error, kv ...any) {
	// Prepend error into key-value list.
	extended := append([]any{"err", err}, kv...)
	s.logWithLevel(LevelError, msg, extended...)
}

func (s *Standard) logWithLevel(level Level, msg string, kv ...any) {
	if !s.enabled(level) {
		return
	}

	ts := time.Now().Format(time.RFC3339Nano)

	// Line format:
	// 2025-01-01T00:00:00Z [LEVEL] msg key=value ...
	line := ts + " [" + string(level) + "] " + msg

	if len(kv) > 0 {
		line += formatKVs(kv...)
	}

	s.logger.Println(line)
}

func (s *Standard) enabled(level Level) bool {
	switch s.minLevel {
	case LevelDebug:
		return true
	case LevelInfo:
		return level != LevelDebug
	case LevelWarn:
		return level == LevelWarn || level == LevelError
	case LevelError:
		return level == LevelError
	default:
		return true
	}
}

func formatKVs(kv ...any) string {
	out := ""
	// Expect kv as pairs: key, value, key, value, ...
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		val := kv[i+1]
		out += " " + key + "=" + fmt.Sprint(val)
	}
	// If odd number of args, last one is ignored.
	return out
}

// NoOp satisfies Logger and discards all records.
type NoOp struct{}

var _ Logger = NoOp{}

func (NoOp) Debug(string, ...any)        {}
func (NoOp) Info(string, ...any)         {}
func (NoOp) Warn(string, ...any)         {}
func (NoOp) Error(string, error, ...any) {}

// ParseLevel maps a config string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

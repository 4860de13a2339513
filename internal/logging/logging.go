// Package logging builds the zap logger shared by minecorg commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ParseLevel maps a level name to a zap level. Unknown names are an error.
func ParseLevel(levelStr string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case LevelDebug:
		return zapcore.DebugLevel, nil
	case LevelInfo, "":
		return zapcore.InfoLevel, nil
	case LevelWarn, "warning":
		return zapcore.WarnLevel, nil
	case LevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", levelStr)
	}
}

// New returns a logger writing to w. format is "console" (default) or
// "json". Console output omits timestamps and callers: it is meant for a
// person reading stderr.
func New(w io.Writer, levelStr, format string) (*zap.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	switch format {
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

// ForCLI returns the command-line logger: warnings and errors only,
// everything from debug up when verbose is set.
func ForCLI(w io.Writer, verbose bool) *zap.Logger {
	level := LevelWarn
	if verbose {
		level = LevelDebug
	}
	logger, err := New(w, level, "console")
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

package config

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
	LogLevelPanic LogLevel = "panic"
)

func (l LogLevel) String() string {
	return string(l)
}

// Level maps the configured name onto a zap level. Aliases are accepted case-insensitively, anything unknown is treated as error.
func (l LogLevel) Level() zapcore.Level {
	switch LogLevel(strings.ToLower(strings.TrimSpace(string(l)))) {
	case LogLevelDebug, "trace":
		return zap.DebugLevel
	case LogLevelInfo, "information", "notice":
		return zap.InfoLevel
	case LogLevelWarn, "warning":
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelFatal:
		return zap.FatalLevel
	case LogLevelPanic:
		return zap.PanicLevel
	default:
		return zap.ErrorLevel
	}
}

func (l LogLevel) Zap() zap.AtomicLevel {
	return zap.NewAtomicLevelAt(l.Level())
}

package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Initialize replaces the process logger with a console logger at the given level.
func Initialize(level zap.AtomicLevel) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	Set(log)
	return nil
}

// Set swaps the process logger. A nil logger disables logging.
func Set(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	global.Store(log)
}

func Logger() *zap.Logger {
	return global.Load()
}

func Sugar() *zap.SugaredLogger {
	return global.Load().Sugar()
}

// Sync flushes any buffered log entries.
func Sync() error {
	return global.Load().Sync()
}

// Package obslog wraps go.uber.org/zap the way shared/pkg/logger wraps
// it across the Granula services: a small Config, a constructor, and
// field helpers, so callers never import zap directly.
package obslog

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger construction.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, console
	ServiceName string
	Development bool
}

// Logger wraps a *zap.Logger. The zero value is not usable; use New
// or Nop.
type Logger struct {
	z *zap.Logger
}

// New builds a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, err
		}
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Development = cfg.Development

	z, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	if cfg.ServiceName != "" {
		z = z.With(zap.String("service", cfg.ServiceName))
	}
	return &Logger{z: z}, nil
}

// MustNew is New, panicking on error. Intended for CLI startup paths
// where there is no meaningful recovery.
func MustNew(cfg Config) *Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Nop returns a Logger that discards everything, used as the
// resolver's default when no logger is supplied.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Error(msg, fields...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.z.Sync()
}

// Field helpers, re-exported so callers never import zap directly.
func F(key string, value any) zap.Field   { return zap.Any(key, value) }
func Err(err error) zap.Field             { return zap.Error(err) }
func String(key, value string) zap.Field  { return zap.String(key, value) }
func Int(key string, value int) zap.Field { return zap.Int(key, value) }
func Duration(key string, d time.Duration) zap.Field { return zap.Duration(key, d) }

var global *Logger = Nop()

// Global returns the process-wide default logger.
func Global() *Logger { return global }

// SetGlobal replaces the process-wide default logger.
func SetGlobal(l *Logger) { global = l }

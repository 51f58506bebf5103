// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides the structured key/value logger used by the
// HTTP server.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const requestIDField = "request_id"

// Logger writes structured entries through a zap sugared logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a logger for mode. "prod" or "production" writes JSON at
// info level; anything else writes console output at debug level.
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func newFromCore(core zapcore.Core) *Logger {
	return &Logger{sugar: zap.New(core).Sugar()}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// ForRequest returns a logger that tags every entry with the request ID.
// An empty id returns l unchanged.
func (l *Logger) ForRequest(id string) *Logger {
	if id == "" {
		return l
	}
	return &Logger{sugar: l.sugar.With(requestIDField, id)}
}

// AtStatus logs msg at a level chosen by an HTTP status: error for 5xx,
// warn for 4xx, info otherwise.
func (l *Logger) AtStatus(status int, msg string, keysAndValues ...interface{}) {
	switch {
	case status >= 500:
		l.Error(msg, keysAndValues...)
	case status >= 400:
		l.Warn(msg, keysAndValues...)
	default:
		l.Info(msg, keysAndValues...)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return newFromCore(core), logs
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode)
		require.NoError(t, err, "mode %q", mode)
		assert.NotNil(t, l)
	}
}

func TestForRequestTagsEntries(t *testing.T) {
	l, logs := observed(t)

	l.ForRequest("abc").Warn("generation failed", "code", "no_match")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "generation failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "no_match", fields["code"])
}

func TestForRequestEmptyID(t *testing.T) {
	l, logs := observed(t)

	l.ForRequest("").Debug("generated ideas")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.NotContains(t, entries[0].ContextMap(), "request_id")
}

func TestAtStatus(t *testing.T) {
	tests := []struct {
		status int
		want   zapcore.Level
	}{
		{status: 200, want: zapcore.InfoLevel},
		{status: 304, want: zapcore.InfoLevel},
		{status: 400, want: zapcore.WarnLevel},
		{status: 422, want: zapcore.WarnLevel},
		{status: 500, want: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		l, logs := observed(t)
		l.AtStatus(tt.status, "HTTP request", "status", tt.status)
		require.Len(t, logs.All(), 1)
		assert.Equal(t, tt.want, logs.All()[0].Level, "status %d", tt.status)
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("discarded", "key", "value")
	l.ForRequest("x").Error("discarded")
	l.Sync()
}

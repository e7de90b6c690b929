package logsvc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trezcool/masomo-calendar/core/calendar"
	"github.com/trezcool/masomo-calendar/tests"
)

func TestRollbarLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewRollbarLogger(zap.New(core), testutil.NewConfig())

	caller := calendar.Caller{ID: "u1", Role: calendar.RoleTeacher}
	logger.Error("aggregation failed", errors.New("boom"), caller, map[string]interface{}{"path": "/events"})
	logger.Info("started")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "aggregation failed", entries[0].Message)
		assert.Equal(t, "boom", ctx["error"])
		assert.Equal(t, "u1", ctx["caller"])
		assert.Equal(t, "/events", ctx["path"])

		assert.Equal(t, "started", entries[1].Message)
		assert.Empty(t, entries[1].ContextMap())
	}
}

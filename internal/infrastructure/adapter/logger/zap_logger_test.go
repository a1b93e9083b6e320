package logger

import (
	"testing"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(obsCore), core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("payment initiated", map[string]any{"transaction_id": uint64(7)})
	l.Warn("lock conflict", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "payment initiated", entry.Message)
	assert.Equal(t, uint64(7), entry.ContextMap()["transaction_id"])

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("suppressed", nil)
	l.Error("confirm failed", nil)
	assert.Equal(t, 3, logs.Len())
}

func TestNewZapLoggerWithOptions(t *testing.T) {
	l, err := NewZapLoggerWithOptions(Options{Production: true, Level: "warn", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	_, err = NewZapLoggerWithOptions(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Info("ignored", map[string]any{"k": "v"})
	assert.NoError(t, l.Flush())
}

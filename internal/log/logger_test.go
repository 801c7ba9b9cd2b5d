package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Component: ComponentStorage, Output: &buf})

	logger.Info("Transaction saved", FieldTransactionID, 7)
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "component=storage")
	assert.Contains(t, out, "transaction_id=7")
	assert.NotContains(t, out, "hidden")

	buf.Reset()
	logger.WithComponent(ComponentShell).Warn("bad input")
	assert.Contains(t, buf.String(), "component=shell")
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpAdd).
		WithTransaction(3, "income", "Salary", 10).
		WithError(errors.New("boom")).
		WithErrorType(ErrorTypeDatabase)

	assert.Equal(t, OpAdd, f[FieldOperation])
	assert.Equal(t, int64(3), f[FieldTransactionID])
	assert.Equal(t, "boom", f[FieldError])
	assert.Len(t, f.ToSlice(), len(f)*2)

	f = NewFields().WithTransaction(0, "expense", "Food", 1).WithError(nil)
	_, hasID := f[FieldTransactionID]
	assert.False(t, hasID)
	_, hasErr := f[FieldError]
	assert.False(t, hasErr)
}

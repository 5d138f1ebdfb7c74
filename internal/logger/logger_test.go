package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.NewWithWriter(logger.Config{Level: logger.InfoLevel, Encoding: "json"}, &buf)
	require.NoError(t, err)

	log.With("component", "checker").Info("selector evaluated",
		"selector", "#header a",
		"present", true,
		"error", errors.New("boom"),
	)
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "selector evaluated", entry["msg"])
	assert.Equal(t, "checker", entry["component"])
	assert.Equal(t, "#header a", entry["selector"])
	assert.Equal(t, true, entry["present"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.NewWithWriter(logger.Config{Level: logger.WarnLevel, Encoding: "console"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden too")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := logger.NewWithWriter(logger.Config{Level: "verbose"}, &bytes.Buffer{})
	require.ErrorIs(t, err, logger.ErrInvalidLevel)

	_, err = logger.NewWithWriter(logger.Config{Encoding: "xml"}, &bytes.Buffer{})
	require.ErrorIs(t, err, logger.ErrInvalidEncoding)
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewNop()
	log.Debug("debug")
	log.Info("info")
	log.Warn("warn", "key", "value")
	log.Error("error")
	assert.Same(t, log, log.With("key", "value"))
	assert.NoError(t, log.Sync())
}

package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gruntwork-io/globre/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level log.Level) (log.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)

	return log.New(log.WithOutput(buf), log.WithLevel(level), log.WithFormatter(&logrus.JSONFormatter{})), buf
}

func TestLogger_WithFields(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger(log.DebugLevel)

	logger.WithFields(log.Fields{
		log.FieldKeyPattern: "*.go",
		log.FieldKeyRegex:   "^[^/]*\\.go$",
	}).Debugf("translated %d runes", 4)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "translated 4 runes", entry["msg"])
	assert.Equal(t, "*.go", entry[log.FieldKeyPattern])
	assert.Equal(t, "^[^/]*\\.go$", entry[log.FieldKeyRegex])
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger(log.InfoLevel)

	logger.Debugf("hidden")
	logger.Tracef("hidden")
	assert.Empty(t, buf.String())

	logger.WithError(errors.New("unclosed class")).Warnf("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "unclosed class")
}

func TestLogger_WithOptionsClones(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger(log.InfoLevel)

	verbose := logger.WithOptions(log.WithLevel(log.TraceLevel))

	assert.Equal(t, log.InfoLevel, logger.Level())
	assert.Equal(t, log.TraceLevel, verbose.Level())

	verbose.Tracef("from clone")
	assert.Contains(t, buf.String(), "from clone", "a clone keeps writing to the parent output")
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	logger, _ := newBufferedLogger(log.InfoLevel)

	require.NoError(t, logger.SetLevel("DEBUG"))
	assert.Equal(t, log.DebugLevel, logger.Level())

	err := logger.SetLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error, warn, info, debug, trace")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, level := range log.AllLevels {
		parsed, err := log.ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
		assert.Equal(t, level, log.FromLogrusLevel(level.ToLogrusLevel()))
	}

	assert.Equal(t, log.ErrorLevel, log.FromLogrusLevel(logrus.PanicLevel))
}

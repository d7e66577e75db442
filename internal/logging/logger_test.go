package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewDefaults(t *testing.T) {
	logger, err := New(Config{})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewVerbose(t *testing.T) {
	logger, err := New(Config{Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewQuietWinsOverVerbose(t *testing.T) {
	logger, err := New(Config{Verbose: true, Quiet: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewJSONFormat(t *testing.T) {
	_, err := New(Config{Format: "json"})
	require.NoError(t, err)
}

func TestNewBadFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	assert.Error(t, err)
}

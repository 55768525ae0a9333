package log_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/allsums/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.New(&buf, log.LogWarn)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.Int("n", 10))
	log.Sync(logger)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "10")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := log.New(&bytes.Buffer{}, log.LogLevel("verbose"))
	assert.ErrorIs(t, err, log.ErrUnknownLevel)
}

func TestZapLevel(t *testing.T) {
	for _, l := range log.ValidLevels() {
		zl, err := l.ZapLevel()
		assert.NoError(t, err)
		assert.Equal(t, string(l), zl.String())
	}
}

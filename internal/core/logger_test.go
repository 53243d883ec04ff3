package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		logger := NewLogger(level)
		assert.NotNil(t, logger, "level %q", level)
		// Must not panic at any level
		logger.Debug("debug", "k", "v")
		logger.Info("info", "k", "v")
		logger.Warn("warn", "k", "v")
		logger.Error("error", "k", "v")
	}
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	logger.Info("dropped", "k", "v")
}

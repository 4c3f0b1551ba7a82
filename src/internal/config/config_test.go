package config

import (
	"testing"

	"lograt/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, defaults().validate())
}

func TestValidate(t *testing.T) {
	t.Run("NegativeTagWidth", func(t *testing.T) {
		cfg := defaults()
		cfg.TagWidth = -1
		assert.ErrorContains(t, cfg.validate(), "tag width")
	})

	t.Run("UnknownSourceType", func(t *testing.T) {
		cfg := defaults()
		cfg.Source.Type = "http"
		assert.ErrorContains(t, cfg.validate(), "invalid source type")
	})

	t.Run("FileSourceRequiresPath", func(t *testing.T) {
		cfg := defaults()
		cfg.Source.Type = "file"
		assert.ErrorContains(t, cfg.validate(), "path")
	})

	t.Run("PollIntervalTooSmall", func(t *testing.T) {
		cfg := defaults()
		cfg.Source.PollIntervalMs = 1
		assert.ErrorContains(t, cfg.validate(), "poll interval")
	})

	t.Run("BadLogOutput", func(t *testing.T) {
		cfg := defaults()
		cfg.Logging.Output = "syslog"
		assert.ErrorContains(t, cfg.validate(), "log output")
	})

	t.Run("FileLoggingNeedsSection", func(t *testing.T) {
		cfg := defaults()
		cfg.Logging.Output = "file"
		assert.ErrorContains(t, cfg.validate(), "logging.file")
	})
}

func TestMinLevel(t *testing.T) {
	t.Run("AbsentDisablesGate", func(t *testing.T) {
		cfg := defaults()
		lvl, err := cfg.MinLevel()
		require.NoError(t, err)
		assert.Nil(t, lvl)
	})

	t.Run("Lowercase", func(t *testing.T) {
		cfg := defaults()
		cfg.Level = "w"
		lvl, err := cfg.MinLevel()
		require.NoError(t, err)
		require.NotNil(t, lvl)
		assert.Equal(t, core.Warn, *lvl)
	})

	t.Run("UnknownSurfacesError", func(t *testing.T) {
		cfg := defaults()
		cfg.Level = "X"
		_, err := cfg.MinLevel()
		assert.ErrorIs(t, err, core.ErrUnknownLevel)
	})
}

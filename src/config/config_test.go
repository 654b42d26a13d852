package config

import (
	"testing"

	"github.com/mattisv/circuitsim/src/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("valid, existing settings file", func(t *testing.T) {
		content := `max-variables: 6
output-dir: "tables"`
		settingsFile := helpers.CreateTempFileWithContents(t, content)

		settings, err := LoadSettings(settingsFile)
		require.NoError(t, err)

		assert.Equal(t, 6, settings.MaxVariables)
		assert.Equal(t, "tables", settings.OutputDir)
	})

	t.Run("partial settings file keeps defaults", func(t *testing.T) {
		settingsFile := helpers.CreateTempFileWithContents(t, `max-variables: 4`)

		settings, err := LoadSettings(settingsFile)
		require.NoError(t, err)

		assert.Equal(t, 4, settings.MaxVariables)
		assert.Equal(t, DefaultSettings().OutputDir, settings.OutputDir)
	})

	t.Run("invalid settings file", func(t *testing.T) {
		settingsFile := helpers.CreateTempFileWithContents(t, `{{{not yaml`)

		_, err := LoadSettings(settingsFile)
		assert.Error(t, err)
	})

	t.Run("non-existing settings file yields defaults", func(t *testing.T) {
		settings, err := LoadSettings("non-existing.yaml")
		require.NoError(t, err)

		assert.Equal(t, DefaultSettings(), settings)
	})

	t.Run("nonsense max-variables falls back to the default", func(t *testing.T) {
		settingsFile := helpers.CreateTempFileWithContents(t, `max-variables: -3`)

		settings, err := LoadSettings(settingsFile)
		require.NoError(t, err)

		assert.Equal(t, DefaultSettings().MaxVariables, settings.MaxVariables)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults apply when no config file exists", func(t *testing.T) {
		// Given: no file next to the test and an empty XDG config dir
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		xdg.Reload()

		// When: loading without a path
		config, err := Load("")
		require.NoError(t, err)

		// Then: every field carries its default
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "Tic-Tac-Toe", config.WindowTitle)
		assert.Equal(t, 512, config.WindowSize)
		assert.Equal(t, 10, config.BorderThickness)
		assert.Equal(t, 3, config.BoardSize)
		assert.Equal(t, 2*time.Second, config.FreezeDuration)
		assert.Equal(t, 60, config.TickRate)
	})

	t.Run("Defaults fill everything the file leaves out", func(t *testing.T) {
		// Given: a config file that only names the window
		path := writeConfigFile(t, "window-title: Testing\n")

		// When: loading it
		config, err := Load(path)
		require.NoError(t, err)

		// Then: the named field is taken and every other field carries its default
		assert.Equal(t, "Testing", config.WindowTitle)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, 512, config.WindowSize)
		assert.Equal(t, 10, config.BorderThickness)
		assert.Equal(t, 3, config.BoardSize)
		assert.Equal(t, 2*time.Second, config.FreezeDuration)
		assert.Equal(t, 60, config.TickRate)
	})

	t.Run("File values override the defaults", func(t *testing.T) {
		// Given: a config file with a bigger board and a slower freeze
		path := writeConfigFile(t, "log-level: debug\nboard-size: 4\nfreeze-duration: 5s\n")

		// When: loading it
		config, err := Load(path)
		require.NoError(t, err)

		// Then: the file wins where it speaks, defaults fill the rest
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, 4, config.BoardSize)
		assert.Equal(t, 5*time.Second, config.FreezeDuration)
		assert.Equal(t, 512, config.WindowSize)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment variable for the same field
		path := writeConfigFile(t, "board-size: 4\n")
		t.Setenv("TICTACTOE_BOARD_SIZE", "5")

		// When: loading it
		config, err := Load(path)
		require.NoError(t, err)

		// Then: the environment wins
		assert.Equal(t, 5, config.BoardSize)
	})

	t.Run("Returns an error for a missing file", func(t *testing.T) {
		// When: loading a path that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		// Then: it should fail
		require.Error(t, err)
	})

	t.Run("Rejects a negative tick rate", func(t *testing.T) {
		// Given: a config file with a negative tick rate
		path := writeConfigFile(t, "tick-rate: -5\n")

		// When: loading it
		_, err := Load(path)

		// Then: it should return ErrInvalidConfig
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Rejects a negative freeze duration", func(t *testing.T) {
		// Given: a config file with a negative freeze
		path := writeConfigFile(t, "freeze-duration: -1s\n")

		// When: loading it
		_, err := Load(path)

		// Then: it should return ErrInvalidConfig
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

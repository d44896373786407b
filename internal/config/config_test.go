package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  board:
    width: 12
    height: 8
  dice:
    sides: 4
  max_turns: 20
logging:
  level: debug
ui:
  color: false
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	resetGlobals()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, 12, c.Game.Board.Width)
	assert.Equal(t, 8, c.Game.Board.Height)
	assert.Equal(t, 4, c.Game.Dice.Sides)
	assert.Equal(t, 20, c.Game.MaxTurns)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.False(t, c.UI.Color)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, 10, c.Game.Board.Width)
	assert.Equal(t, 10, c.Game.Board.Height)
	assert.Equal(t, 6, c.Game.Dice.Sides)
	assert.Equal(t, int64(0), c.Game.Seed)
	assert.Equal(t, 0, c.Game.MaxTurns)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.True(t, c.UI.Color)
	assert.False(t, c.UI.AnimateDice)
}

func TestInitRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("game:\n  dice:\n    sides: 11\n"), 0644))

	resetGlobals()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.dice.sides")
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("DICEGAME_GAME_SEED", "1234")
	t.Setenv("DICEGAME_LOGGING_LEVEL", "warn")

	resetGlobals()
	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, int64(1234), c.Game.Seed)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestSet(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	require.NoError(t, Set("game.max_turns", 7))
	assert.Equal(t, 7, Get().Game.MaxTurns)

	// An invalid update is rejected and the previous config kept
	err := Set("game.board.width", 0)
	require.Error(t, err)
	assert.Equal(t, 10, Get().Game.Board.Width)
}

func TestSetBeforeInit(t *testing.T) {
	resetGlobals()
	assert.Error(t, Set("game.max_turns", 1))
	assert.Equal(t, "", ConfigFilePath())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game: GameConfig{
				Board: BoardConfig{Width: 10, Height: 10},
				Dice:  DiceConfig{Sides: 6},
			},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, false},
		{"upper case level", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"zero width", func(c *Config) { c.Game.Board.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Game.Board.Height = -1 }, true},
		{"zero sides", func(c *Config) { c.Game.Dice.Sides = 0 }, true},
		{"sides exceed height", func(c *Config) { c.Game.Board.Height = 5 }, true},
		{"negative max turns", func(c *Config) { c.Game.MaxTurns = -3 }, true},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// replaceFile swaps content in with a rename so the watcher never sees a
// truncated file.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("game:\n  max_turns: 1\n"), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))

	var (
		resultsMu sync.Mutex
		results   []error
		stopRead  = make(chan struct{})
		readers   sync.WaitGroup
	)
	stop, err := WatchConfig(func(name string, err error) {
		resultsMu.Lock()
		defer resultsMu.Unlock()
		results = append(results, err)
	})
	require.NoError(t, err)

	// Readers keep hitting the config while the watcher swaps it
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stopRead:
				return
			default:
				_ = Get().Game.MaxTurns
				_ = ConfigFilePath()
			}
		}
	}()

	for i := 2; i <= 5; i++ {
		replaceFile(t, configFile, "game:\n  max_turns: "+strconv.Itoa(i)+"\n")
		time.Sleep(20 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return Get().Game.MaxTurns == 5
	}, 3*time.Second, 10*time.Millisecond)

	// An invalid file is reported and the last good config kept
	replaceFile(t, configFile, "game:\n  max_turns: -1\n")
	assert.Eventually(t, func() bool {
		resultsMu.Lock()
		defer resultsMu.Unlock()
		return len(results) > 0 && results[len(results)-1] != nil
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, 5, Get().Game.MaxTurns)

	close(stopRead)
	readers.Wait()
	require.NoError(t, stop())
}

func TestWatchConfigWithoutFile(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/path/config.yaml"))

	_, err := WatchConfig(nil)
	assert.Error(t, err)
}

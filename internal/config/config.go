package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	UI          UIConfig          `mapstructure:"ui"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Board    BoardConfig `mapstructure:"board"`
	Dice     DiceConfig  `mapstructure:"dice"`
	Seed     int64       `mapstructure:"seed"`
	MaxTurns int         `mapstructure:"max_turns"`
}

// BoardConfig holds the grid dimensions
type BoardConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// DiceConfig holds dice settings
type DiceConfig struct {
	Sides int `mapstructure:"sides"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Events bool   `mapstructure:"events"`
}

// UIConfig holds terminal output settings
type UIConfig struct {
	Color       bool `mapstructure:"color"`
	AnimateDice bool `mapstructure:"animate_dice"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	WatchConfig bool `mapstructure:"watch_config"`
}

// mu guards cfg and v. The file watcher reloads from its own goroutine.
var (
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.board.width", 10)
	v.SetDefault("game.board.height", 10)
	v.SetDefault("game.dice.sides", 6)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_turns", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.events", false)

	v.SetDefault("ui.color", true)
	v.SetDefault("ui.animate_dice", false)

	v.SetDefault("development.watch_config", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	nv := viper.New()
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/dicegame")
	}

	nv.SetEnvPrefix("DICEGAME")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "" && errors.Is(err, os.ErrNotExist):
			// A named file that does not exist falls back to defaults
		case errors.As(err, &notFound):
			// No config in the default locations
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded, err := decode(nv)
	if err != nil {
		return err
	}

	v = nv
	cfg = loaded
	return nil
}

// Get returns the global config instance. The returned value is never
// mutated; a reload swaps in a new one.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	if v == nil {
		return errors.New("config not initialized - call Init() first")
	}
	v.Set(key, value)
	return reloadLocked()
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()

	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// WatchConfig re-reads the loaded config file whenever it changes on disk and
// reports each result to onChange, which may be nil. A rejected file keeps
// the previous config. Call the returned stop function to end the watch.
func WatchConfig(onChange func(name string, err error)) (stop func() error, err error) {
	path := ConfigFilePath()
	if path == "" {
		return nil, errors.New("no config file loaded to watch")
	}
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				err := readAndReload()
				if onChange != nil {
					onChange(event.Name, err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onChange != nil {
					onChange(path, fmt.Errorf("config watcher: %w", err))
				}
			}
		}
	}()

	return func() error {
		err := watcher.Close()
		<-done
		return err
	}, nil
}

func readAndReload() error {
	mu.Lock()
	defer mu.Unlock()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return reloadLocked()
}

// reloadLocked re-reads the viper state into cfg, keeping the old value when
// the new one does not validate. mu must be held for writing.
func reloadLocked() error {
	updated, err := decode(v)
	if err != nil {
		return err
	}
	cfg = updated
	return nil
}

func decode(src *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := src.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Board.Width < 1 || c.Game.Board.Height < 1 {
		return fmt.Errorf("game.board dimensions must be positive")
	}
	if c.Game.Dice.Sides < 1 {
		return fmt.Errorf("game.dice.sides must be at least 1")
	}
	// Both starting rectangles must fit whatever the dice show
	if c.Game.Dice.Sides > c.Game.Board.Width || c.Game.Dice.Sides > c.Game.Board.Height {
		return fmt.Errorf("game.dice.sides (%d) must not exceed the board dimensions (%dx%d)",
			c.Game.Dice.Sides, c.Game.Board.Width, c.Game.Board.Height)
	}
	if c.Game.MaxTurns < 0 {
		return fmt.Errorf("game.max_turns must be non-negative")
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}
	return nil
}

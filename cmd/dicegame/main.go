package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DiceGame/internal/config"
	"github.com/mitchelldurbincs/DiceGame/internal/game"
	"github.com/mitchelldurbincs/DiceGame/internal/game/dice"
	"github.com/mitchelldurbincs/DiceGame/internal/game/events"
	"github.com/mitchelldurbincs/DiceGame/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DiceGame/internal/ui/console"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seed := flag.Int64("seed", 0, "Dice seed (0 to use config default, then the clock)")
	flag.Parse()

	fmt.Println("Dice Game!")

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	levelFromFlag := *logLevel != ""
	if !levelFromFlag {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format, os.Stderr)

	if cfg.Development.WatchConfig {
		stopWatch, err := config.WatchConfig(onConfigReload(levelFromFlag))
		if err != nil {
			log.Warn().Err(err).Msg("Config hot reload disabled")
		} else {
			defer stopWatch()
		}
	}

	if *seed == 0 {
		*seed = cfg.Game.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	p1, p2, err := console.PromptPlayers(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read player names")
	}

	bus := events.NewEventBusWithLogger(log.Logger)
	if cfg.Logging.Events {
		bus.Subscribe(subscribers.NewLoggerSubscriber("event-log", log.Logger, zerolog.DebugLevel))
	}

	presenter := console.NewPresenter(os.Stdout, console.Options{
		Color:       cfg.UI.Color,
		AnimateDice: cfg.UI.AnimateDice,
	})

	g, err := game.NewGame(p1, p2, game.GameConfig{
		Width:     cfg.Game.Board.Width,
		Height:    cfg.Game.Board.Height,
		Dice:      dice.New(rand.New(rand.NewSource(*seed)), cfg.Game.Dice.Sides),
		Presenter: presenter,
		EventBus:  bus,
		Logger:    log.Logger,
		MaxTurns:  cfg.Game.MaxTurns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	log.Info().
		Str("game_id", g.ID()).
		Int64("seed", *seed).
		Int("width", cfg.Game.Board.Width).
		Int("height", cfg.Game.Board.Height).
		Int("dice_sides", cfg.Game.Dice.Sides).
		Msg("Starting game")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Str("game_id", g.ID()).Msg("Game failed")
	}

	log.Info().
		Str("game_id", g.ID()).
		Stringer("phase", g.Phase()).
		Int("turns", g.Turns()).
		Str("halt_reason", g.HaltReason()).
		Msg("Game over")
}

// onConfigReload returns the hot reload callback. Loggers are already built
// by then, so only the global level follows the file, and only when no
// -log-level flag pinned it.
func onConfigReload(levelFromFlag bool) func(name string, err error) {
	return func(name string, err error) {
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("Config reload rejected")
			return
		}
		if !levelFromFlag {
			zerolog.SetGlobalLevel(parseLevel(config.Get().Logging.Level))
		}
		log.Info().Str("file", name).Msg("Config reloaded")
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func setupLogging(level, format string, out io.Writer) {
	zerolog.SetGlobalLevel(parseLevel(level))

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		})
	}
}

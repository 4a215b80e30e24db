package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aaronzipp/dogma/internal/config"
	"github.com/aaronzipp/dogma/internal/models"
	"github.com/aaronzipp/dogma/internal/random"
	"github.com/aaronzipp/dogma/internal/render"
	"github.com/aaronzipp/dogma/internal/runner"
	"github.com/aaronzipp/dogma/internal/store"
	"github.com/aaronzipp/dogma/internal/strategy"
)

func main() {
	envFile := os.Getenv("DOGMA_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadDotenv(envFile); err != nil {
		config.Exitf("dotenv: %v", err)
	}

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("config: %v", err)
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logger := newLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// run plays the configured games and prints the outcome to out
func run(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	if cfg.Replay != "" {
		replay, err := render.ParseReplayToken(cfg.Replay)
		if err != nil {
			return err
		}
		if replay.Strategy == luaStrategy {
			if cfg.LuaScript == "" {
				return errors.New("replay token was recorded with a lua script; pass it with -lua")
			}
		} else {
			cfg.Strategy, cfg.LuaScript = replay.Strategy, ""
		}
		cfg.Seed, cfg.SeedSet, cfg.Players, cfg.Games = replay.Seed, true, replay.Players, 1
	}

	seed, _, err := random.Resolve(cfg.SeedPtr(), nil)
	if err != nil {
		return err
	}
	factory, err := deciderFactory(cfg)
	if err != nil {
		return err
	}

	sessions := store.NewSessionStore()
	logger.Info("starting run", "games", cfg.Games, "players", len(cfg.Players), "seed", seed)
	report, err := runner.Run(ctx, runner.Config{
		Players:    cfg.Players,
		Seed:       seed,
		Games:      cfg.Games,
		Parallel:   cfg.Parallel,
		NewDecider: factory,
		Store:      sessions,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if cfg.Games == 1 {
		fmt.Fprint(out, render.GameSummary(report.Played[0]))
		if err := report.Sessions[0].Err; err != nil {
			fmt.Fprintf(out, "Aborted: %v\n", err)
		}
	} else {
		fmt.Fprint(out, render.Report(report))
	}

	for _, session := range sessions.List() {
		session.RLock()
		if session.Outcome != nil {
			logger.Debug("session finished", "session", session.ID, "seed", session.Seed, "winner", session.Outcome.Winner, "turns", session.Outcome.Turns)
		} else {
			logger.Debug("session failed", "session", session.ID, "seed", session.Seed, "err", session.Err)
		}
		session.RUnlock()
	}
	logger.Info("run finished", "sessions", sessions.Len(), "failed", report.Failed)

	token := render.Replay{Seed: seed, Strategy: strategyName(cfg), Players: cfg.Players}.Token()
	fmt.Fprintf(out, "Replay: %s\n", token)
	if cfg.QRPath != "" {
		if err := render.WriteReplayQR(cfg.QRPath, token); err != nil {
			return err
		}
		logger.Info("replay qr written", "path", cfg.QRPath)
	}
	return nil
}

const luaStrategy = "lua"

// strategyName is the strategy recorded in replay tokens
func strategyName(cfg config.Config) string {
	if cfg.LuaScript != "" {
		return luaStrategy
	}
	return cfg.Strategy
}

// deciderFactory builds the decision-maker constructor the config asks for
func deciderFactory(cfg config.Config) (runner.DeciderFactory, error) {
	if cfg.LuaScript != "" {
		source, err := os.ReadFile(cfg.LuaScript)
		if err != nil {
			return nil, fmt.Errorf("read lua script: %w", err)
		}
		probe, err := strategy.NewLua(string(source))
		if err != nil {
			return nil, err
		}
		probe.Close()
		return func(string, int64) (models.Decider, error) {
			d, err := strategy.NewLua(string(source))
			if err != nil {
				return nil, err
			}
			return d, nil
		}, nil
	}

	switch cfg.Strategy {
	case "random":
		return func(_ string, seed int64) (models.Decider, error) {
			return strategy.NewRandom(seed), nil
		}, nil
	case "cautious":
		return func(string, int64) (models.Decider, error) {
			d, err := strategy.NewBuiltinLua("cautious")
			if err != nil {
				return nil, err
			}
			return d, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
}

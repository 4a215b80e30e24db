// Package config loads the dogma CLI configuration from a .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const seedEnv = "DOGMA_SEED"

// Config holds CLI configuration.
type Config struct {
	Players   []string `env:"DOGMA_PLAYERS" envSeparator:"," envDefault:"Ada,Bea,Cal,Dov,Eli"`
	Seed      int64    `env:"DOGMA_SEED"`
	Games     int      `env:"DOGMA_GAMES" envDefault:"1"`
	Parallel  int      `env:"DOGMA_PARALLEL" envDefault:"4"`
	Strategy  string   `env:"DOGMA_STRATEGY" envDefault:"random"`
	LuaScript string   `env:"DOGMA_LUA_SCRIPT"`
	LogLevel  string   `env:"DOGMA_LOG_LEVEL" envDefault:"info"`
	QRPath    string   `env:"DOGMA_QR_PATH"`
	Replay    string   `env:"DOGMA_REPLAY"`

	// SeedSet reports whether a seed came from the environment or flags.
	SeedSet bool
}

// SeedPtr returns the configured seed, or nil when none was given.
func (c Config) SeedPtr() *int64 {
	if !c.SeedSet {
		return nil
	}
	seed := c.Seed
	return &seed
}

// Validate checks values the flag and env parsers cannot.
func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	switch c.Strategy {
	case "random", "cautious":
	default:
		if c.LuaScript == "" {
			return fmt.Errorf("unknown strategy %q", c.Strategy)
		}
	}
	return nil
}

// LoadDotenv loads path into the process environment. A missing file is
// not an error; existing variables are left untouched.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v, ok := os.LookupEnv(seedEnv); ok && strings.TrimSpace(v) != "" {
		target.SeedSet = true
	}
	return nil
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(flags *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	flags.Func("players", "Comma-separated player names in seating order", func(v string) error {
		cfg.Players = splitNames(v)
		return nil
	})
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the first game; later games use seed+1, seed+2, ...")
	flags.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play")
	flags.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "Maximum games played at once")
	flags.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Decision-maker for every player: random or cautious")
	flags.StringVar(&cfg.LuaScript, "lua", cfg.LuaScript, "Path to a Lua decider script used for every player")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&cfg.QRPath, "qr", cfg.QRPath, "Write a PNG QR code of the first game's replay token to this path")
	flags.StringVar(&cfg.Replay, "replay", cfg.Replay, "Replay the single game described by a replay token")

	if args == nil {
		args = []string{}
	}
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.SeedSet = true
		}
	})
	return cfg, nil
}

func splitNames(v string) []string {
	var names []string
	for _, name := range strings.Split(v, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

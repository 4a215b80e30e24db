package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaronzipp/dogma/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Players:  []string{"Ada", "Bea", "Cal", "Dov", "Eli"},
		Seed:     5,
		SeedSet:  true,
		Games:    1,
		Parallel: 1,
		Strategy: "random",
		LogLevel: "info",
	}
}

func discard() *slog.Logger {
	return newLogger(io.Discard, slog.LevelError)
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := parseLevel(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("parseLevel(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRunSingleGamePrintsSummaryAndToken(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), testConfig(), discard(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Replay: dogma:seed=5;strategy=random;players=Ada,Bea,Cal,Dov,Eli") {
		t.Fatalf("missing replay token in output:\n%s", text)
	}
	if !strings.Contains(text, "Ada") {
		t.Fatalf("missing roster in output:\n%s", text)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := run(context.Background(), testConfig(), discard(), &first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(context.Background(), testConfig(), discard(), &second); err != nil {
		t.Fatalf("run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("same seed gave different output:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestRunReplayMatchesSeededRun(t *testing.T) {
	var direct, replayed bytes.Buffer
	if err := run(context.Background(), testConfig(), discard(), &direct); err != nil {
		t.Fatalf("run: %v", err)
	}
	cfg := testConfig()
	cfg.SeedSet = false
	cfg.Players = nil
	cfg.Games = 4
	cfg.Replay = "dogma:seed=5;strategy=random;players=Ada,Bea,Cal,Dov,Eli"
	if err := run(context.Background(), cfg, discard(), &replayed); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if direct.String() != replayed.String() {
		t.Fatalf("replay differs:\n%s\n---\n%s", direct.String(), replayed.String())
	}
}

func TestRunBatchWithBuiltinLua(t *testing.T) {
	cfg := testConfig()
	cfg.Games = 3
	cfg.Strategy = "cautious"
	var out bytes.Buffer
	if err := run(context.Background(), cfg, discard(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Replay:") {
		t.Fatalf("missing replay line:\n%s", out.String())
	}
}

func TestRunWritesQR(t *testing.T) {
	cfg := testConfig()
	cfg.QRPath = filepath.Join(t.TempDir(), "replay.png")
	var out bytes.Buffer
	if err := run(context.Background(), cfg, discard(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	info, err := os.Stat(cfg.QRPath)
	if err != nil {
		t.Fatalf("stat qr: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("qr file is empty")
	}
}

func TestDeciderFactoryRejectsUnknown(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "psychic"
	if _, err := deciderFactory(cfg); err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
}

func TestRunBadReplayToken(t *testing.T) {
	cfg := testConfig()
	cfg.Replay = "nonsense"
	if err := run(context.Background(), cfg, discard(), io.Discard); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestRunReplayRestoresStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "cautious"
	var direct bytes.Buffer
	if err := run(context.Background(), cfg, discard(), &direct); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(direct.String(), "strategy=cautious") {
		t.Fatalf("token should record the strategy:\n%s", direct.String())
	}

	replay := testConfig()
	replay.SeedSet = false
	replay.Replay = "dogma:seed=5;strategy=cautious;players=Ada,Bea,Cal,Dov,Eli"
	var replayed bytes.Buffer
	if err := run(context.Background(), replay, discard(), &replayed); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if direct.String() != replayed.String() {
		t.Fatalf("replay under the default strategy differs:\n%s\n---\n%s", direct.String(), replayed.String())
	}
}

func TestRunReplayOfLuaScriptNeedsScript(t *testing.T) {
	cfg := testConfig()
	cfg.Replay = "dogma:seed=5;strategy=lua;players=Ada,Bea,Cal,Dov,Eli"
	if err := run(context.Background(), cfg, discard(), io.Discard); err == nil {
		t.Fatal("expected an error when the lua script is missing")
	}
}

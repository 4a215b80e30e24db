// Package runner plays batches of independent games.
//
// Every game gets its own Game instance, seed and decision-makers, so games
// can run concurrently without sharing mutable state; each game on its own
// is still played turn by turn on a single goroutine.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aaronzipp/dogma/internal/game"
	"github.com/aaronzipp/dogma/internal/models"
	"github.com/aaronzipp/dogma/internal/store"
)

// DeciderFactory builds the decision-maker for one seat of one game. The
// seed is derived from the game seed and the seat so whole runs replay.
type DeciderFactory func(name string, seed int64) (models.Decider, error)

// Config describes a batch of games
type Config struct {
	Players    []string
	Seed       int64
	Games      int
	Parallel   int
	NewDecider DeciderFactory
	Store      *store.SessionStore
	Logger     *slog.Logger
}

// Report aggregates the outcomes of a batch; Sessions and Played are in
// game order
type Report struct {
	Games    int
	Wins     map[models.Team]int
	Messages map[string]int
	Failed   int
	Sessions []*models.Session
	Played   []*game.Game
}

// SeatSeed derives the seed of a seat's decider from the game seed
func SeatSeed(gameSeed int64, seat int) int64 {
	return gameSeed*31 + int64(seat) + 1
}

// Run plays cfg.Games games with seeds cfg.Seed, cfg.Seed+1, ... A game
// aborted by a decision contract violation is counted as failed; any other
// error stops the run.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Games < 1 {
		return nil, fmt.Errorf("run: games must be at least 1, got %d", cfg.Games)
	}
	if cfg.NewDecider == nil {
		return nil, errors.New("run: decider factory is required")
	}
	if cfg.Store == nil {
		cfg.Store = store.NewSessionStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	parallel := max(cfg.Parallel, 1)

	report := &Report{
		Games:    cfg.Games,
		Wins:     make(map[models.Team]int),
		Messages: make(map[string]int),
		Sessions: make([]*models.Session, cfg.Games),
		Played:   make([]*game.Game, cfg.Games),
	}
	ids := make([]string, cfg.Games)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)
	for i := range cfg.Games {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			session, played, err := playOne(cfg, cfg.Seed+int64(i))
			if err != nil {
				return err
			}
			ids[i] = session.ID
			report.Played[i] = played
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		session, ok := cfg.Store.Get(id)
		if !ok {
			return nil, fmt.Errorf("run: session %s of game %d left the store", id, i)
		}
		report.Sessions[i] = session
		session.RLock()
		if session.Outcome != nil {
			report.Wins[session.Outcome.Winner]++
			report.Messages[session.Outcome.Message]++
		} else {
			report.Failed++
		}
		session.RUnlock()
	}
	return report, nil
}

func playOne(cfg Config, seed int64) (*models.Session, *game.Game, error) {
	players := make([]*models.Player, len(cfg.Players))
	var closers []interface{ Close() }
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for seat, name := range cfg.Players {
		decider, err := cfg.NewDecider(name, SeatSeed(seed, seat))
		if err != nil {
			return nil, nil, fmt.Errorf("decider for %s: %w", name, err)
		}
		if c, ok := decider.(interface{ Close() }); ok {
			closers = append(closers, c)
		}
		players[seat] = models.NewPlayer(name, decider)
	}

	session := &models.Session{
		ID:        newSessionID(cfg.Store),
		Seed:      seed,
		Players:   players,
		CreatedAt: time.Now(),
	}
	logger := cfg.Logger.With("session", session.ID)

	g, err := game.New(players, game.WithSeed(seed), game.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	cfg.Store.Set(session)

	winner, message, err := g.PlayToCompletion()
	if err != nil {
		if errors.Is(err, game.ErrContractViolation) {
			logger.Warn("game aborted", "err", err)
			session.Fail(err)
			return session, g, nil
		}
		return nil, nil, err
	}
	session.Finish(models.Outcome{Winner: winner, Message: message, Turns: g.Turns()})
	return session, g, nil
}

// newSessionID generates a session ID not yet present in s
func newSessionID(s *store.SessionStore) string {
	for {
		id := uuid.NewString()
		if !s.Exists(id) {
			return id
		}
	}
}

// Package game implements the dogma rules engine.
//
// A Game owns every piece of shared state: the roster, the journal deck,
// the publication tally, pressure, and the leader and reviewer seats. It
// advances one turn per PlayOneTurn call and asks each player's Decider for
// every choice along the way. A Game is not safe for concurrent use; hosts
// running several games give each its own instance and seed.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/aaronzipp/dogma/internal/models"
	"github.com/aaronzipp/dogma/internal/random"
)

// Tally counts successful publications of each card kind
type Tally struct {
	Favorable   int
	Unfavorable int
}

// Total returns the number of published cards
func (t Tally) Total() int {
	return t.Favorable + t.Unfavorable
}

func (t *Tally) add(card models.Card) {
	switch card {
	case models.CardFavorable:
		t.Favorable++
	case models.CardUnfavorable:
		t.Unfavorable++
	}
}

// Game is the aggregate root of a single play-through
type Game struct {
	players []*models.Player
	seed    int64
	seeded  bool
	rng     *rand.Rand
	logger  *slog.Logger

	winner  models.Team
	message string
	err     error

	drawPile         []models.Card
	discardPile      []models.Card
	tally            Tally
	lastPublished    models.Card
	pressure         int
	overruleUnlocked bool

	figurehead       *models.Player
	spy              *models.Player
	leader           *models.Player
	reviewer         *models.Player
	previousLeader   *models.Player
	previousReviewer *models.Player

	lastVote *VoteResult
	started  bool
	turns    int
}

// Option configures a Game at construction
type Option func(*options)

type options struct {
	seed   *int64
	logger *slog.Logger
	seeder func() (int64, error)
}

// WithSeed fixes the seed driving every shuffle and random choice
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithLogger routes engine logs to logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func withSeeder(gen func() (int64, error)) Option {
	return func(o *options) {
		o.seeder = gen
	}
}

// New creates a game for the given ordered roster. The order of players
// defines leadership rotation. Players are validated up front: the count
// must be within [MinPlayers, MaxPlayers] and every player needs a unique
// non-empty name and a decider.
func New(players []*models.Player, opts ...Option) (*Game, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateRoster(players); err != nil {
		return nil, err
	}

	seed, seeded, err := random.Resolve(o.seed, o.seeder)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve seed: %v", ErrConfig, err)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Game{
		players: slices.Clone(players),
		seed:    seed,
		seeded:  seeded,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger.With("seed", seed),
	}
	g.drawPile = newDeck()
	g.shuffleCards(g.drawPile)

	return g, nil
}

func validateRoster(players []*models.Player) error {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return fmt.Errorf("%w: need %d-%d players, got %d", ErrConfig, MinPlayers, MaxPlayers, len(players))
	}
	seen := make(map[string]bool, len(players))
	for i, p := range players {
		if p == nil {
			return fmt.Errorf("%w: player %d is nil", ErrConfig, i)
		}
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrConfig, i)
		}
		if p.Decider == nil {
			return fmt.Errorf("%w: player %s has no decider", ErrConfig, p.Name)
		}
		if p.Role != "" || p.Partner != nil {
			return fmt.Errorf("%w: player %s already holds a role from another game", ErrConfig, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrConfig, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func newDeck() []models.Card {
	cards := make([]models.Card, 0, DeckSize)
	for range FavorableCopies {
		cards = append(cards, models.CardFavorable)
	}
	for range UnfavorableCopies {
		cards = append(cards, models.CardUnfavorable)
	}
	return cards
}

// Players returns the roster in rotation order
func (g *Game) Players() []*models.Player { return slices.Clone(g.players) }

// Seed returns the seed driving the game's randomness
func (g *Game) Seed() int64 { return g.seed }

// HasSeed reports whether the seed was supplied by the caller
func (g *Game) HasSeed() bool { return g.seeded }

// Winner returns the winning team, or TeamNone while the game is running
func (g *Game) Winner() models.Team { return g.winner }

// Message returns the outcome description, empty while the game is running
func (g *Game) Message() string { return g.message }

// Finished reports whether a win condition has fired
func (g *Game) Finished() bool { return g.winner != models.TeamNone }

// Err returns the error that aborted the game, if any
func (g *Game) Err() error { return g.err }

// DrawPile returns a copy of the draw pile, top card first
func (g *Game) DrawPile() []models.Card { return slices.Clone(g.drawPile) }

// DiscardPile returns a copy of the discard pile
func (g *Game) DiscardPile() []models.Card { return slices.Clone(g.discardPile) }

// Publications returns the publication tally
func (g *Game) Publications() Tally { return g.tally }

// LastPublished returns the kind of the most recent regular publication,
// or the empty card when unset
func (g *Game) LastPublished() models.Card { return g.lastPublished }

// Pressure returns the count of consecutive failed attempts
func (g *Game) Pressure() int { return g.pressure }

// OverruleUnlocked reports whether reviewers may request an overrule
func (g *Game) OverruleUnlocked() bool { return g.overruleUnlocked }

// Figurehead returns the figurehead, nil before factions are assigned
func (g *Game) Figurehead() *models.Player { return g.figurehead }

// Spy returns the spy, nil before factions are assigned
func (g *Game) Spy() *models.Player { return g.spy }

// Leader returns the current leader
func (g *Game) Leader() *models.Player { return g.leader }

// Reviewer returns the current reviewer
func (g *Game) Reviewer() *models.Player { return g.reviewer }

// PreviousLeader returns the leader of the last successful publication
func (g *Game) PreviousLeader() *models.Player { return g.previousLeader }

// PreviousReviewer returns the reviewer of the last successful publication
func (g *Game) PreviousReviewer() *models.Player { return g.previousReviewer }

// LastVote returns the most recent nomination vote, nil before the first
func (g *Game) LastVote() *VoteResult { return g.lastVote }

// Turns returns the number of turns played
func (g *Game) Turns() int { return g.turns }

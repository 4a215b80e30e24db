package game

import (
	"testing"

	"github.com/aaronzipp/dogma/internal/models"
	"github.com/aaronzipp/dogma/internal/strategy"
)

var playerNames = []string{"Ada", "Bea", "Cal", "Dov", "Eli", "Fay", "Gus", "Hal", "Ivy", "Jon"}

func randomPlayers(n int, seed int64) []*models.Player {
	players := make([]*models.Player, n)
	for i := range n {
		players[i] = models.NewPlayer(playerNames[i], strategy.NewRandom(seed+int64(i)))
	}
	return players
}

func scriptedPlayers(n int, decider models.Decider) []*models.Player {
	players := make([]*models.Player, n)
	for i := range n {
		players[i] = models.NewPlayer(playerNames[i], decider)
	}
	return players
}

func newGame(t *testing.T, players []*models.Player) *Game {
	t.Helper()
	g, err := New(players, WithSeed(1))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return g
}

func countCards(cards []models.Card, kind models.Card) int {
	n := 0
	for _, c := range cards {
		if c == kind {
			n++
		}
	}
	return n
}

// checkInvariants asserts the card supply, pressure range and outcome pairing
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	tally := g.Publications()
	if got := tally.Total() + len(g.drawPile) + len(g.discardPile); got != DeckSize {
		t.Fatalf("card supply = %d, want %d", got, DeckSize)
	}
	fav := countCards(g.drawPile, models.CardFavorable) + countCards(g.discardPile, models.CardFavorable) + tally.Favorable
	if fav != FavorableCopies {
		t.Fatalf("favorable supply = %d, want %d", fav, FavorableCopies)
	}
	unfav := countCards(g.drawPile, models.CardUnfavorable) + countCards(g.discardPile, models.CardUnfavorable) + tally.Unfavorable
	if unfav != UnfavorableCopies {
		t.Fatalf("unfavorable supply = %d, want %d", unfav, UnfavorableCopies)
	}
	if g.pressure < 0 || g.pressure > MaxPressure {
		t.Fatalf("pressure = %d, want within [0,%d]", g.pressure, MaxPressure)
	}
	if (g.winner == models.TeamNone) != (g.message == "") {
		t.Fatalf("winner %q and message %q must be set together", g.winner, g.message)
	}
}

func hand(cards ...models.Card) []models.Card { return cards }

package game

import (
	"fmt"
	"slices"

	"github.com/aaronzipp/dogma/internal/models"
)

func (g *Game) shuffleCards(cards []models.Card) {
	g.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// reshuffle folds the discard pile into the draw pile and shuffles the lot
func (g *Game) reshuffle() {
	cards := make([]models.Card, 0, len(g.drawPile)+len(g.discardPile))
	cards = append(cards, g.drawPile...)
	cards = append(cards, g.discardPile...)
	g.shuffleCards(cards)
	g.drawPile = cards
	g.discardPile = nil
	g.logger.Debug("deck reshuffled", "draw", len(g.drawPile))
}

// draw removes n cards from the top of the draw pile. When fewer than n
// remain the discard pile is folded in once; a second shortfall cannot
// happen with a full card supply and is reported as ErrDeckExhausted.
func (g *Game) draw(n int) ([]models.Card, error) {
	if len(g.drawPile) < n {
		g.reshuffle()
		if len(g.drawPile) < n {
			return nil, fmt.Errorf("%w: need %d cards, %d available", ErrDeckExhausted, n, len(g.drawPile))
		}
	}
	drawn := slices.Clone(g.drawPile[:n])
	g.drawPile = slices.Clone(g.drawPile[n:])
	return drawn, nil
}

// peek returns up to n cards from the top of the draw pile without
// touching either pile
func (g *Game) peek(n int) []models.Card {
	return slices.Clone(g.drawPile[:min(n, len(g.drawPile))])
}

// returnToBottom places cards under the draw pile in order
func (g *Game) returnToBottom(cards []models.Card) {
	g.drawPile = append(g.drawPile, cards...)
}

// checkSelection verifies that kept plus rejected is a permutation of
// candidates with exactly one card rejected
func checkSelection(player *models.Player, candidates, kept []models.Card, rejected models.Card) error {
	const op = "ChooseCardsToSubmit"
	if len(kept) != len(candidates)-1 {
		return violation(player.Name, op, "kept %d of %d cards, want %d", len(kept), len(candidates), len(candidates)-1)
	}
	remaining := slices.Clone(candidates)
	for _, card := range append(slices.Clone(kept), rejected) {
		if !card.Valid() {
			return violation(player.Name, op, "card %q is not a journal card", card)
		}
		i := slices.Index(remaining, card)
		if i < 0 {
			return violation(player.Name, op, "card %q is not among candidates %v", card, candidates)
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	return nil
}

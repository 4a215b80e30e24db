package game

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/aaronzipp/dogma/internal/models"
	"github.com/aaronzipp/dogma/internal/strategy"
)

func TestDrawTakesFromTop(t *testing.T) {
	g := newGame(t, randomPlayers(5, 1))
	cards := g.DrawPile()

	drawn, err := g.draw(HandSize)
	if err != nil {
		t.Fatalf("draw returned error: %v", err)
	}
	if !slices.Equal(drawn, cards[:3]) {
		t.Fatalf("drew %v, want %v", drawn, cards[:3])
	}
	if !slices.Equal(g.DrawPile(), cards[3:]) {
		t.Fatalf("draw pile = %v, want %v", g.DrawPile(), cards[3:])
	}
}

func TestDrawReshufflesWhenShort(t *testing.T) {
	g := newGame(t, randomPlayers(5, 1))
	cards := g.DrawPile()
	g.drawPile = slices.Clone(cards[len(cards)-2:])
	g.discardPile = slices.Clone(cards[:len(cards)-2])

	drawn, err := g.draw(HandSize)
	if err != nil {
		t.Fatalf("draw returned error: %v", err)
	}
	if len(drawn) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(drawn))
	}
	if len(g.DrawPile()) != len(cards)-3 {
		t.Fatalf("draw pile has %d cards, want %d", len(g.DrawPile()), len(cards)-3)
	}
	if len(g.DiscardPile()) != 0 {
		t.Fatalf("expected discard pile to be folded in, got %v", g.DiscardPile())
	}
}

func TestDrawReportsExhaustion(t *testing.T) {
	g := newGame(t, randomPlayers(5, 1))
	g.drawPile = hand(models.CardFavorable)
	g.discardPile = nil

	if _, err := g.draw(HandSize); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestCheckSelection(t *testing.T) {
	player := models.NewPlayer("Ada", &strategy.Scripted{})
	candidates := hand(models.CardFavorable, models.CardUnfavorable, models.CardFavorable)
	tests := []struct {
		name     string
		kept     []models.Card
		rejected models.Card
		ok       bool
	}{
		{"permutation", hand(models.CardFavorable, models.CardFavorable), models.CardUnfavorable, true},
		{"reordered", hand(models.CardUnfavorable, models.CardFavorable), models.CardFavorable, true},
		{"too many kept", candidates, models.CardFavorable, false},
		{"too few kept", hand(models.CardFavorable), models.CardUnfavorable, false},
		{"invented card", hand(models.CardUnfavorable, models.CardUnfavorable), models.CardFavorable, false},
		{"unknown kind", hand(models.CardFavorable, models.CardFavorable), "X", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSelection(player, candidates, tt.kept, tt.rejected)
			if tt.ok && err != nil {
				t.Fatalf("expected valid selection, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrContractViolation) {
				t.Fatalf("expected ErrContractViolation, got %v", err)
			}
		})
	}
}

func TestCheckSelectionNamesUnknownCard(t *testing.T) {
	player := models.NewPlayer("Ada", &strategy.Scripted{})
	candidates := hand(models.CardFavorable, models.CardUnfavorable)
	err := checkSelection(player, candidates, hand("Q"), models.CardUnfavorable)
	if !errors.Is(err, ErrContractViolation) {
		t.Fatalf("expected ErrContractViolation, got %v", err)
	}
	if !strings.Contains(err.Error(), "not a journal card") {
		t.Fatalf("expected the unknown card to be named, got %v", err)
	}
}

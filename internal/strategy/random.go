// Package strategy provides ready-made decision-makers for the engine.
package strategy

import (
	"math/rand"
	"slices"

	"github.com/aaronzipp/dogma/internal/models"
)

// Random makes every decision uniformly at random
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random decider with its own seeded source
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Nominate picks an eligible player at random
func (r *Random) Nominate(eligible []*models.Player) *models.Player {
	return eligible[r.rng.Intn(len(eligible))]
}

// Vote approves or rejects at random
func (r *Random) Vote(*models.Player) models.Vote {
	if r.rng.Intn(2) == 0 {
		return models.VoteApprove
	}
	return models.VoteReject
}

// ChooseCardsToSubmit rejects a random card and, when allowed, flips a coin
// on requesting an overrule
func (r *Random) ChooseCardsToSubmit(candidates []models.Card, overruleAvailable bool) ([]models.Card, models.Card, bool) {
	overrule := false
	if overruleAvailable {
		overrule = r.AgreeToOverrule()
	}
	i := r.rng.Intn(len(candidates))
	rejected := candidates[i]
	kept := slices.Delete(slices.Clone(candidates), i, i+1)
	return kept, rejected, overrule
}

// AgreeToOverrule agrees at random
func (r *Random) AgreeToOverrule() bool {
	return r.rng.Intn(2) == 0
}

// Denounce picks an eligible player at random
func (r *Random) Denounce(eligible []*models.Player) *models.Player {
	return eligible[r.rng.Intn(len(eligible))]
}

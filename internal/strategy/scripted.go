package strategy

import (
	"slices"

	"github.com/aaronzipp/dogma/internal/models"
)

// Scripted delegates each decision to an optional function. Unset functions
// fall back to a fixed choice: the first eligible player, an approving
// vote, rejecting the last card without an overrule, and refusing overrules.
type Scripted struct {
	NominateFunc func(eligible []*models.Player) *models.Player
	VoteFunc     func(nominee *models.Player) models.Vote
	ChooseFunc   func(candidates []models.Card, overruleAvailable bool) ([]models.Card, models.Card, bool)
	AgreeFunc    func() bool
	DenounceFunc func(eligible []*models.Player) *models.Player
}

func (s *Scripted) Nominate(eligible []*models.Player) *models.Player {
	if s.NominateFunc != nil {
		return s.NominateFunc(eligible)
	}
	return eligible[0]
}

func (s *Scripted) Vote(nominee *models.Player) models.Vote {
	if s.VoteFunc != nil {
		return s.VoteFunc(nominee)
	}
	return models.VoteApprove
}

func (s *Scripted) ChooseCardsToSubmit(candidates []models.Card, overruleAvailable bool) ([]models.Card, models.Card, bool) {
	if s.ChooseFunc != nil {
		return s.ChooseFunc(candidates, overruleAvailable)
	}
	last := len(candidates) - 1
	return slices.Clone(candidates[:last]), candidates[last], false
}

func (s *Scripted) AgreeToOverrule() bool {
	if s.AgreeFunc != nil {
		return s.AgreeFunc()
	}
	return false
}

func (s *Scripted) Denounce(eligible []*models.Player) *models.Player {
	if s.DenounceFunc != nil {
		return s.DenounceFunc(eligible)
	}
	return eligible[0]
}

// Preferring returns a card chooser that rejects a card of kind avoid when
// one is offered, and otherwise rejects the last card. It never overrules.
func Preferring(avoid models.Card) func([]models.Card, bool) ([]models.Card, models.Card, bool) {
	return func(candidates []models.Card, _ bool) ([]models.Card, models.Card, bool) {
		i := slices.Index(candidates, avoid)
		if i < 0 {
			i = len(candidates) - 1
		}
		rejected := candidates[i]
		return slices.Delete(slices.Clone(candidates), i, i+1), rejected, false
	}
}

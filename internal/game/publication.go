package game

import "slices"

// publish runs the publication protocol for the seated leader and reviewer.
// It reports false when the pair agreed to overrule, in which case nothing
// is published.
func (g *Game) publish() (bool, error) {
	hand, err := g.draw(HandSize)
	if err != nil {
		return false, err
	}

	kept, rejected, overrule := g.leader.Decider.ChooseCardsToSubmit(slices.Clone(hand), false)
	if err := checkSelection(g.leader, hand, kept, rejected); err != nil {
		return false, err
	}
	if overrule {
		return false, violation(g.leader.Name, "ChooseCardsToSubmit", "requested an overrule that was not offered")
	}
	g.discardPile = append(g.discardPile, rejected)

	choices := slices.Clone(kept)
	kept, rejected, overrule = g.reviewer.Decider.ChooseCardsToSubmit(slices.Clone(choices), g.overruleUnlocked)
	if err := checkSelection(g.reviewer, choices, kept, rejected); err != nil {
		return false, err
	}
	if overrule && !g.overruleUnlocked {
		return false, violation(g.reviewer.Name, "ChooseCardsToSubmit", "requested an overrule that was not offered")
	}

	if overrule {
		if g.leader.Decider.AgreeToOverrule() {
			// The vetoed pair goes under the deck so the card supply is conserved.
			g.returnToBottom(choices)
			g.addPressure()
			g.logger.Debug("publication overruled", "leader", g.leader.Name, "reviewer", g.reviewer.Name)
			return false, nil
		}

		kept, rejected, overrule = g.reviewer.Decider.ChooseCardsToSubmit(slices.Clone(choices), false)
		if err := checkSelection(g.reviewer, choices, kept, rejected); err != nil {
			return false, err
		}
		if overrule {
			return false, violation(g.reviewer.Name, "ChooseCardsToSubmit", "requested an overrule on the retry")
		}
	}

	g.discardPile = append(g.discardPile, rejected)
	card := kept[0]
	g.tally.add(card)
	g.lastPublished = card
	g.pressure = 0
	g.previousLeader = g.leader
	g.previousReviewer = g.reviewer
	g.logger.Debug("journal published", "card", card, "favorable", g.tally.Favorable, "unfavorable", g.tally.Unfavorable)
	return true, nil
}

// emergencyPublish prints the top card of the deck after pressure maxes out
func (g *Game) emergencyPublish() error {
	drawn, err := g.draw(1)
	if err != nil {
		return err
	}
	card := drawn[0]
	g.tally.add(card)
	g.lastPublished = ""
	g.pressure = 0
	g.logger.Debug("emergency publication", "card", card, "favorable", g.tally.Favorable, "unfavorable", g.tally.Unfavorable)
	return nil
}

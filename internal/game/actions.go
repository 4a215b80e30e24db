package game

import "slices"

// PerformMilestoneActions grants the seated leader the power unlocked by
// the current unfavorable tally:
//
//   - at 3, a preview of the next three cards;
//   - at 4 and 5, a denouncement, which ends the game if it hits the figurehead;
//   - at 5, when the game goes on, the overrule power for all later reviewers.
//
// It reports whether a win condition fired.
func (g *Game) PerformMilestoneActions() (bool, error) {
	unfavorable := g.tally.Unfavorable

	if unfavorable == PreviewMilestone {
		g.leader.LastSeen = g.peek(HandSize)
		g.logger.Debug("leader previewed deck", "leader", g.leader.Name, "cards", len(g.leader.LastSeen))
	}

	if isDenounceMilestone(unfavorable) {
		if err := g.denounce(); err != nil {
			return false, err
		}
		if g.checkFigureheadOusted() {
			return true, nil
		}
	}

	if unfavorable == OverruleMilestone {
		g.overruleUnlocked = true
		g.logger.Debug("overrule unlocked")
	}

	return false, nil
}

func (g *Game) denounce() error {
	pool := g.DenouncementPool()
	if len(pool) == 0 {
		return violation(g.leader.Name, "Denounce", "no player is eligible for denouncement")
	}
	target := g.leader.Decider.Denounce(slices.Clone(pool))
	if err := checkChoice(g.leader, "Denounce", pool, target); err != nil {
		return err
	}
	target.Denounced = true
	g.previousLeader = nil
	g.previousReviewer = nil
	g.logger.Info("player denounced", "leader", g.leader.Name, "denounced", target.Name)
	return nil
}

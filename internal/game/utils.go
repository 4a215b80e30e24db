package game

import (
	"slices"

	"github.com/aaronzipp/dogma/internal/models"
)

// NominationPool returns the players the current leader may nominate:
// everyone except the leader, the previous reviewer and, outside of
// five-player games, the previous leader. Denounced players never qualify.
func (g *Game) NominationPool() []*models.Player {
	excluded := []*models.Player{g.leader, g.previousReviewer}
	if len(g.players) != SmallGameSize {
		excluded = append(excluded, g.previousLeader)
	}
	return g.playersExcept(excluded)
}

// DenouncementPool returns the players the current leader may denounce
func (g *Game) DenouncementPool() []*models.Player {
	return g.playersExcept([]*models.Player{g.leader})
}

func (g *Game) playersExcept(excluded []*models.Player) []*models.Player {
	pool := make([]*models.Player, 0, len(g.players))
	for _, p := range g.players {
		if p.Denounced || slices.Contains(excluded, p) {
			continue
		}
		pool = append(pool, p)
	}
	return pool
}

// checkChoice verifies a decider picked a member of pool
func checkChoice(chooser *models.Player, operation string, pool []*models.Player, chosen *models.Player) error {
	if chosen == nil {
		return violation(chooser.Name, operation, "no player chosen")
	}
	if !slices.Contains(pool, chosen) {
		return violation(chooser.Name, operation, "%s is not eligible", chosen.Name)
	}
	return nil
}

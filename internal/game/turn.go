package game

import (
	"fmt"
	"slices"

	"github.com/aaronzipp/dogma/internal/models"
)

// PlayOneTurn plays a complete turn and reports whether the game has
// concluded. Once a winner is set further calls return true without
// touching state. An error aborts the game; it is returned again on every
// later call.
func (g *Game) PlayOneTurn() (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.Finished() {
		return true, nil
	}
	done, err := g.turn()
	if err != nil {
		g.err = err
		g.logger.Error("turn aborted", "turn", g.turns, "err", err)
		return false, err
	}
	return done, nil
}

// PlayToCompletion plays turns until a win condition fires
func (g *Game) PlayToCompletion() (models.Team, string, error) {
	for {
		done, err := g.PlayOneTurn()
		if err != nil {
			return models.TeamNone, "", err
		}
		if done {
			return g.winner, g.message, nil
		}
	}
}

func (g *Game) turn() (bool, error) {
	if err := g.Start(); err != nil {
		return false, err
	}
	g.turns++

	if err := g.rotateLeader(); err != nil {
		return false, err
	}

	nominee, err := g.nominate()
	if err != nil {
		return false, err
	}

	passed, err := g.castVote(nominee)
	if err != nil {
		return false, err
	}

	published := false
	if passed {
		g.reviewer = nominee
		if g.checkRhetoricWin() {
			return true, nil
		}

		published, err = g.publish()
		if err != nil {
			return false, err
		}
		if !published {
			g.addPressure()
			g.logger.Debug("turn ended without publication", "turn", g.turns, "pressure", g.pressure)
			return false, nil
		}
	}

	if g.pressure >= MaxPressure {
		if err := g.emergencyPublish(); err != nil {
			return false, err
		}
	}

	if g.checkJournalWin() {
		return true, nil
	}

	if published && g.lastPublished == models.CardUnfavorable {
		if _, err := g.PerformMilestoneActions(); err != nil {
			return false, err
		}
	}

	return g.checkFigureheadOusted(), nil
}

// rotateLeader picks a random first leader, then passes leadership to the
// next non-denounced player in roster order
func (g *Game) rotateLeader() error {
	if g.leader == nil {
		candidates := g.playersExcept(nil)
		if len(candidates) == 0 {
			return fmt.Errorf("%w: every player is denounced", ErrContractViolation)
		}
		g.leader = candidates[g.rng.Intn(len(candidates))]
		g.logger.Debug("first leader chosen", "leader", g.leader.Name)
		return nil
	}

	start := slices.Index(g.players, g.leader)
	for step := 1; step <= len(g.players); step++ {
		next := g.players[(start+step)%len(g.players)]
		if !next.Denounced {
			g.leader = next
			g.logger.Debug("leadership passed", "turn", g.turns, "leader", next.Name)
			return nil
		}
	}
	return fmt.Errorf("%w: every player is denounced", ErrContractViolation)
}

func (g *Game) nominate() (*models.Player, error) {
	pool := g.NominationPool()
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no player is eligible for nomination", ErrContractViolation)
	}
	nominee := g.leader.Decider.Nominate(slices.Clone(pool))
	if err := checkChoice(g.leader, "Nominate", pool, nominee); err != nil {
		return nil, err
	}
	g.logger.Debug("reviewer nominated", "leader", g.leader.Name, "nominee", nominee.Name)
	return nominee, nil
}

package game

import (
	"github.com/aaronzipp/dogma/internal/models"
)

// VoteResult represents the outcome of a nomination vote
type VoteResult struct {
	Nominee string
	Approve int
	Reject  int
	Ballots map[string]models.Vote
}

// Passed reports whether approvals strictly outnumber rejections
func (r *VoteResult) Passed() bool {
	return r.Approve > r.Reject
}

// CountVotes tallies ballots keyed by voter name
func CountVotes(nominee string, ballots map[string]models.Vote) *VoteResult {
	result := &VoteResult{
		Nominee: nominee,
		Ballots: ballots,
	}
	for _, vote := range ballots {
		switch vote {
		case models.VoteApprove:
			result.Approve++
		case models.VoteReject:
			result.Reject++
		}
	}
	return result
}

// castVote polls every non-denounced player on nominee. A failed vote
// raises pressure.
func (g *Game) castVote(nominee *models.Player) (bool, error) {
	ballots := make(map[string]models.Vote, len(g.players))
	for _, p := range g.players {
		if p.Denounced {
			continue
		}
		vote := p.Decider.Vote(nominee)
		if vote != models.VoteApprove && vote != models.VoteReject {
			return false, violation(p.Name, "Vote", "unknown ballot %q", vote)
		}
		ballots[p.Name] = vote
	}

	result := CountVotes(nominee.Name, ballots)
	g.lastVote = result
	passed := result.Passed()
	if !passed {
		g.addPressure()
	}
	g.logger.Debug("vote cast", "nominee", nominee.Name, "approve", result.Approve, "reject", result.Reject, "passed", passed)
	return passed, nil
}

// addPressure raises pressure by one, saturating at MaxPressure
func (g *Game) addPressure() {
	g.pressure = min(g.pressure+1, MaxPressure)
}

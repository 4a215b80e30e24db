package game

import (
	"github.com/aaronzipp/dogma/internal/models"
)

// declare records the winner unless one is already set. It always reports
// true so checks can return its result directly.
func (g *Game) declare(team models.Team, message string) bool {
	if g.winner == models.TeamNone {
		g.winner = team
		g.message = message
		g.logger.Info("game over", "winner", team, "message", message, "turns", g.turns)
	}
	return true
}

// checkRhetoricWin ends the game when the figurehead is seated as reviewer
// once enough favorable journals are out
func (g *Game) checkRhetoricWin() bool {
	if g.reviewer != nil && g.reviewer == g.figurehead && g.tally.Favorable >= RhetoricThreshold {
		return g.declare(models.TeamMinority, MessageRhetoric)
	}
	return false
}

// checkJournalWin ends the game when either tally fills up
func (g *Game) checkJournalWin() bool {
	if g.tally.Favorable >= FavorableToWin {
		return g.declare(models.TeamMajority, MessageStatusQuo)
	}
	if g.tally.Unfavorable >= UnfavorableToWin {
		return g.declare(models.TeamMinority, MessageQuelled)
	}
	return false
}

// checkFigureheadOusted ends the game once the figurehead is denounced
func (g *Game) checkFigureheadOusted() bool {
	if g.figurehead != nil && g.figurehead.Denounced {
		return g.declare(models.TeamMajority, MessageOusted)
	}
	return false
}

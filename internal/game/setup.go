package game

import (
	"fmt"

	"github.com/aaronzipp/dogma/internal/models"
)

// ShuffleRoles builds a role pool for the roster: one spy, one figurehead
// and loyalists for everyone else, in shuffled order
func (g *Game) ShuffleRoles() []models.Role {
	roles := make([]models.Role, 0, len(g.players))
	for range len(g.players) - 2 {
		roles = append(roles, models.RoleLoyalist)
	}
	roles = append(roles, models.RoleSpy, models.RoleFigurehead)
	g.rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	return roles
}

// AssignFactions deals a shuffled role pool to the roster in list order and
// records the spy and figurehead
func (g *Game) AssignFactions() {
	roles := g.ShuffleRoles()
	for i, p := range g.players {
		p.Role = roles[i]
		p.Partner = nil
		switch p.Role {
		case models.RoleFigurehead:
			g.figurehead = p
		case models.RoleSpy:
			g.spy = p
		}
	}
	g.logger.Debug("factions assigned", "figurehead", g.figurehead.Name, "spy", g.spy.Name)
}

// RevealPartners introduces the spy and the figurehead to one another
func (g *Game) RevealPartners() error {
	if g.figurehead == nil || g.spy == nil {
		return fmt.Errorf("%w: factions must be assigned before partners are revealed", ErrConfig)
	}
	g.figurehead.Partner = g.spy
	g.spy.Partner = g.figurehead
	return nil
}

// Start assigns factions and reveals partners. It runs at most once and is
// called implicitly by the first turn.
func (g *Game) Start() error {
	if g.started {
		return nil
	}
	if g.figurehead == nil {
		g.AssignFactions()
	}
	if err := g.RevealPartners(); err != nil {
		return err
	}
	g.started = true
	g.logger.Info("game started", "players", len(g.players))
	return nil
}

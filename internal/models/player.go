package models

import "fmt"

// Decider makes every choice the engine delegates to a player.
// Implementations must not mutate engine state; the engine applies the
// returned decision and rejects values outside the documented constraints.
type Decider interface {
	// Nominate picks a reviewer from eligible.
	Nominate(eligible []*Player) *Player

	// Vote casts a ballot on the nominated reviewer.
	Vote(nominee *Player) Vote

	// ChooseCardsToSubmit keeps all but one of candidates and rejects the
	// rest. requestOverrule may only be true when overruleAvailable is.
	ChooseCardsToSubmit(candidates []Card, overruleAvailable bool) (kept []Card, rejected Card, requestOverrule bool)

	// AgreeToOverrule answers the reviewer's overrule request.
	AgreeToOverrule() bool

	// Denounce picks a player to remove from eligible.
	Denounce(eligible []*Player) *Player
}

// Player represents a participant and the identity state the engine manages
type Player struct {
	Name    string
	Decider Decider

	Role      Role
	Denounced bool
	Partner   *Player // the other dissident, nil for loyalists
	LastSeen  []Card  // cards most recently previewed by this player
}

// NewPlayer creates a player with the given name and decision-maker
func NewPlayer(name string, decider Decider) *Player {
	return &Player{Name: name, Decider: decider}
}

// Team returns the faction the player's role belongs to
func (p *Player) Team() Team {
	return p.Role.Team()
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, %s, denounced=%t)", p.Name, p.Role, p.Denounced)
}

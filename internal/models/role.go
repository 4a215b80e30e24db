package models

// Role is the hidden identity dealt to a player at game start
type Role string

const (
	RoleUnassigned Role = ""
	RoleLoyalist   Role = "loyalist"
	RoleSpy        Role = "spy"
	RoleFigurehead Role = "figurehead"
)

// Team returns the faction the role plays for
func (r Role) Team() Team {
	switch r {
	case RoleLoyalist:
		return TeamMajority
	case RoleSpy, RoleFigurehead:
		return TeamMinority
	default:
		return TeamNone
	}
}

// Team is one of the two factions that can win a game
type Team string

const (
	TeamNone     Team = ""
	TeamMajority Team = "loyalists"
	TeamMinority Team = "dissidents"
)

// Vote is a ballot cast on a nominated reviewer
type Vote string

const (
	VoteApprove Vote = "approve"
	VoteReject  Vote = "reject"
)

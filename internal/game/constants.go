package game

const (
	// MinPlayers is the minimum number of players required to start a game
	MinPlayers = 5

	// MaxPlayers is the maximum number of players a game supports
	MaxPlayers = 10

	// SmallGameSize is the player count at which the previous leader stays nominable
	SmallGameSize = 5

	// FavorableCopies is the number of favorable cards in a fresh deck
	FavorableCopies = 11

	// UnfavorableCopies is the number of unfavorable cards in a fresh deck
	UnfavorableCopies = 6

	// DeckSize is the total card supply across draw pile, discard pile and publications
	DeckSize = FavorableCopies + UnfavorableCopies

	// HandSize is the number of cards drawn for a publication
	HandSize = 3

	// MaxPressure forces an emergency publication once reached
	MaxPressure = 3

	// FavorableToWin is the favorable tally that ends the game for the loyalists
	FavorableToWin = 6

	// UnfavorableToWin is the unfavorable tally that ends the game for the dissidents
	UnfavorableToWin = 5

	// RhetoricThreshold is the favorable tally from which a figurehead reviewer wins
	RhetoricThreshold = 3

	// Unfavorable tallies that unlock milestone powers
	PreviewMilestone  = 3
	OverruleMilestone = 5
)

// Outcome messages
const (
	MessageRhetoric  = "The figurehead's rhetorical prowess has dominated."
	MessageStatusQuo = "The loyalists have altered the status quo."
	MessageQuelled   = "The dissidents have quelled the free-thinkers."
	MessageOusted    = "The loyalists have successfully ousted the figurehead."
)

func isDenounceMilestone(unfavorable int) bool {
	return unfavorable == 4 || unfavorable == 5
}

package models

// Card is a single journal card; the deck holds two kinds
type Card string

const (
	CardFavorable   Card = "F"
	CardUnfavorable Card = "U"
)

// Valid reports whether c is one of the two card kinds
func (c Card) Valid() bool {
	return c == CardFavorable || c == CardUnfavorable
}

// String returns the card's single-letter value
func (c Card) String() string {
	return string(c)
}

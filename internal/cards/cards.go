// internal/cards/cards.go
//
// Playing-card types for the blackjack table.
// A card has a human-readable label ("Ace of Spades") and a fixed numeric
// value: ace counts 11, two through ten count face value, court cards count
// 10. The house rules here never re-value an ace as 1.

package cards

import "strconv"

type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "?"
	}
}

type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(int(r))
	}
}

// Value returns the rank's point value at the blackjack table.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// Card is one of the 52 distinct suit/rank combinations.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Value returns the card's point value.
func (c Card) Value() int {
	return c.Rank.Value()
}

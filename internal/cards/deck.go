// internal/cards/deck.go
//
// Deck and hand containers backing a blackjack round.
// Responsibilities:
//   - Deck: all 52 distinct cards, shuffled once at construction through an
//     injected randomness source, consumed by popping from the end.
//   - Hand: the ordered, append-only cards a participant has drawn, with a
//     summed point value.
//
// Drawing from an exhausted deck panics: blackjack draws at most 21 cards
// across both hands before someone busts, so an empty deck is a programming
// error, not a game outcome.

package cards

import (
	"strings"

	"github.com/robalobadob/arcade/internal/rng"
)

// Deck is a shuffled pile of distinct cards.
type Deck struct {
	cards []Card
}

// NewDeck builds the full 52-card deck and shuffles it with src.
func NewDeck(src rng.Source) *Deck {
	cards := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	src.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the top card. Panics when the deck is empty.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		panic("cards: draw from empty deck")
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Remaining reports how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Hand is the ordered list of cards a participant holds.
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Take draws one card from d into the hand.
func (h *Hand) Take(d *Deck) {
	h.cards = append(h.cards, d.Draw())
}

// TakeUntil draws from d until the hand's value reaches at least v.
func (h *Hand) TakeUntil(d *Deck, v int) {
	for h.Value() < v {
		h.Take(d)
	}
}

// Value sums the point values of all held cards.
func (h *Hand) Value() int {
	total := 0
	for _, c := range h.cards {
		total += c.Value()
	}
	return total
}

// Cards returns the held cards in draw order.
func (h *Hand) Cards() []Card {
	return h.cards
}

// String lists the hand's cards separated by commas.
func (h *Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, ", ")
}

// internal/blackjack/blackjack.go
//
// Blackjack round against the dealer, played through the game protocol.
// Rules:
//   - Fresh shuffled deck per round; two cards each, dealer dealt first.
//   - "hit" draws one card; going over 21 busts and resolves immediately.
//   - "stand" lets the dealer draw up to at least 17, then scores the round.
//   - Anything else re-prompts.
//   - The player wins when their total beats the dealer's without exceeding
//     21, or when the dealer busts. Every other outcome goes to the house.
//
// The deck and both hands mutate in place; they are private to one round
// and never aliased. The protocol-visible transition stays value-like: Next
// returns either this round or a Finished summary.

package blackjack

import (
	"fmt"

	"github.com/robalobadob/arcade/internal/cards"
	"github.com/robalobadob/arcade/internal/game"
	"github.com/robalobadob/arcade/internal/rng"
)

const (
	dealerStand = 17 // dealer draws until reaching at least this value
	bustLimit   = 21
)

// Game is one blackjack round.
type Game struct {
	deck   *cards.Deck
	dealer *cards.Hand
	player *cards.Hand
}

// New deals a fresh round: shuffled deck, two cards to the dealer, then two
// to the player, all drawn from the same deck.
func New(src rng.Source) *Game {
	g := &Game{
		deck:   cards.NewDeck(src),
		dealer: cards.NewHand(),
		player: cards.NewHand(),
	}
	g.dealer.Take(g.deck)
	g.dealer.Take(g.deck)
	g.player.Take(g.deck)
	g.player.Take(g.deck)
	return g
}

func (g *Game) Done() bool { return false }

func (g *Game) Info() string { return "" }

// Prompt shows the dealer's first card (the second stays hidden) and the
// player's full hand with its running total.
func (g *Game) Prompt() string {
	return fmt.Sprintf(
		"Dealer's hand: (hidden card), %s\nYour hand: %s, total value %d\nYour move (hit or stand): ",
		g.dealer.Cards()[0], g.player, g.player.Value(),
	)
}

// Next handles one command. Unrecognized input leaves the round unchanged.
func (g *Game) Next(answer string) game.State {
	switch answer {
	case "stand":
		g.dealer.TakeUntil(g.deck, dealerStand)
		return g.resolve()
	case "hit":
		g.player.Take(g.deck)
		if g.player.Value() > bustLimit {
			return g.resolve()
		}
	}
	return g
}

// resolve scores the round exactly once and reveals both hands.
func (g *Game) resolve() game.State {
	dealerValue := g.dealer.Value()
	playerValue := g.player.Value()
	playerWon := (playerValue > dealerValue && playerValue <= bustLimit) || dealerValue > bustLimit

	verdict := "The dealer won"
	if playerWon {
		verdict = "You won"
	}
	return game.Finish(fmt.Sprintf(
		"Dealer's hand: %s, total value %d\nYour hand: %s, total value %d\n%s",
		g.dealer, dealerValue, g.player, playerValue, verdict,
	))
}

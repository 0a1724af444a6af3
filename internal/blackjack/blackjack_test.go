package blackjack

import (
	"strings"
	"testing"

	"github.com/robalobadob/arcade/internal/cards"
)

// identity leaves the deck unshuffled: cards pop suit by suit from the King
// of Clubs downwards.
type identity struct{}

func (identity) Intn(n int) int { return 0 }

func (identity) Shuffle(int, func(i, j int)) {}

// reversed flips the deck so cards pop from the Ace of Spades upwards,
// giving low, predictable values.
type reversed struct{}

func (reversed) Intn(n int) int { return 0 }
func (reversed) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// rigged applies an explicit swap list to stack the deck. The unshuffled
// layout is index = suit*13 + rank - 1 and draws pop from index 51 down.
type rigged struct{ swaps [][2]int }

func (rigged) Intn(n int) int { return 0 }
func (r rigged) Shuffle(_ int, swap func(i, j int)) {
	for _, s := range r.swaps {
		swap(s[0], s[1])
	}
}

// spadesIndex returns the unshuffled deck index of a spades card.
func spadesIndex(r cards.Rank) int { return int(r) - 1 }

// TestNewDealsTwoCardsEachFromOneDeck verifies the opening deal: dealer
// first, then player, four cards total off the shared deck.
func TestNewDealsTwoCardsEachFromOneDeck(t *testing.T) {
	g := New(identity{})
	if n := len(g.dealer.Cards()); n != 2 {
		t.Fatalf("dealer has %d cards, want 2", n)
	}
	if n := len(g.player.Cards()); n != 2 {
		t.Fatalf("player has %d cards, want 2", n)
	}
	if g.deck.Remaining() != 48 {
		t.Fatalf("deck has %d cards left, want 48", g.deck.Remaining())
	}
	// Unshuffled deck deals from the back of the clubs.
	if got := g.dealer.String(); got != "King of Clubs, Queen of Clubs" {
		t.Fatalf("dealer hand = %q", got)
	}
	if got := g.player.String(); got != "Jack of Clubs, 10 of Clubs" {
		t.Fatalf("player hand = %q", got)
	}
}

// TestPromptHidesDealerSecondCard checks the table view: one dealer card
// visible, full player hand with running total.
func TestPromptHidesDealerSecondCard(t *testing.T) {
	g := New(identity{})
	prompt := g.Prompt()
	if !strings.Contains(prompt, "(hidden card), King of Clubs") {
		t.Fatalf("prompt does not show the dealer's first card: %q", prompt)
	}
	if strings.Contains(prompt, "Queen of Clubs") {
		t.Fatalf("prompt leaks the dealer's hidden card: %q", prompt)
	}
	if !strings.Contains(prompt, "total value 20") {
		t.Fatalf("prompt missing player total: %q", prompt)
	}
	if !strings.Contains(prompt, "hit or stand") {
		t.Fatalf("prompt missing move instructions: %q", prompt)
	}
}

// TestUnknownInputLeavesRoundUnchanged ensures bad commands re-prompt
// silently without drawing cards.
func TestUnknownInputLeavesRoundUnchanged(t *testing.T) {
	g := New(identity{})
	next := g.Next("double")
	if next != g {
		t.Fatal("unknown input produced a new state")
	}
	if next.Info() != "" {
		t.Fatalf("unknown input produced message %q", next.Info())
	}
	if g.deck.Remaining() != 48 {
		t.Fatalf("unknown input drew cards: %d left", g.deck.Remaining())
	}
}

// TestHitValueStrictlyIncreasesUntilBust walks a low deck through several
// hits and checks the round ends the instant the player exceeds 21.
func TestHitValueStrictlyIncreasesUntilBust(t *testing.T) {
	g := New(reversed{}) // dealer Ace+2 = 13, player 3+4 = 7
	if g.player.Value() != 7 {
		t.Fatalf("player starts at %d, want 7", g.player.Value())
	}

	prev := g.player.Value()
	st := g.Next("hit") // draws 5 -> 12
	if st != g {
		t.Fatal("non-busting hit should stay in the round")
	}
	if g.player.Value() <= prev {
		t.Fatalf("hit did not increase value: %d -> %d", prev, g.player.Value())
	}

	prev = g.player.Value()
	st = g.Next("hit") // draws 6 -> 18
	if st.Done() {
		t.Fatal("round ended while player was at 18")
	}
	if g.player.Value() <= prev {
		t.Fatalf("hit did not increase value: %d -> %d", prev, g.player.Value())
	}

	st = g.Next("hit") // draws 7 -> 25, bust
	if !st.Done() {
		t.Fatalf("player at %d should have busted", g.player.Value())
	}
	if !strings.Contains(st.Info(), "total value 25") {
		t.Fatalf("bust summary missing player total: %q", st.Info())
	}
	if !strings.Contains(st.Info(), "The dealer won") {
		t.Fatalf("bust summary missing verdict: %q", st.Info())
	}
}

// TestStandDealerDrawsToAtLeastSeventeen checks the dealer's draw rule.
func TestStandDealerDrawsToAtLeastSeventeen(t *testing.T) {
	g := New(reversed{}) // dealer starts at 13
	st := g.Next("stand")
	if !st.Done() {
		t.Fatal("stand did not resolve the round")
	}
	if g.dealer.Value() < 17 {
		t.Fatalf("dealer stopped at %d, below 17", g.dealer.Value())
	}
}

// TestStandTieGoesToDealer checks the house edge: equal totals lose.
func TestStandTieGoesToDealer(t *testing.T) {
	g := New(identity{}) // dealer 20, player 20
	st := g.Next("stand")
	if !st.Done() {
		t.Fatal("stand did not resolve the round")
	}
	if !strings.Contains(st.Info(), "The dealer won") {
		t.Fatalf("tie should go to the dealer: %q", st.Info())
	}
	// Summary reveals both full hands and totals.
	if !strings.Contains(st.Info(), "Queen of Clubs") {
		t.Fatalf("summary does not reveal the hidden card: %q", st.Info())
	}
}

// TestPlayerWinsWithHigherTotal stacks the deck so the player stands on 20
// against a dealer 17.
func TestPlayerWinsWithHigherTotal(t *testing.T) {
	src := rigged{swaps: [][2]int{
		{spadesIndex(cards.King), 51},  // dealer card 1: 10
		{spadesIndex(cards.Seven), 50}, // dealer card 2: 7
		{spadesIndex(cards.Queen), 49}, // player card 1: 10
		{spadesIndex(cards.Jack), 48},  // player card 2: 10
	}}
	g := New(src)
	if g.dealer.Value() != 17 || g.player.Value() != 20 {
		t.Fatalf("rigged deal off: dealer %d, player %d", g.dealer.Value(), g.player.Value())
	}
	st := g.Next("stand")
	if !st.Done() || !strings.Contains(st.Info(), "You won") {
		t.Fatalf("expected player win, got %q", st.Info())
	}
}

// TestPlayerWinsWhenDealerBusts stacks the deck so the dealer draws past 21.
func TestPlayerWinsWhenDealerBusts(t *testing.T) {
	src := rigged{swaps: [][2]int{
		{spadesIndex(cards.King), 51},  // dealer card 1: 10
		{spadesIndex(cards.Six), 50},   // dealer card 2: 6 -> 16, must draw
		{spadesIndex(cards.Queen), 49}, // player card 1: 10
		{spadesIndex(cards.Jack), 48},  // player card 2: 10
		{spadesIndex(cards.Eight), 47}, // dealer draw: 8 -> 24, bust
	}}
	g := New(src)
	st := g.Next("stand")
	if !st.Done() {
		t.Fatal("stand did not resolve the round")
	}
	if g.dealer.Value() != 24 {
		t.Fatalf("dealer value = %d, want 24", g.dealer.Value())
	}
	if !strings.Contains(st.Info(), "You won") {
		t.Fatalf("expected player win on dealer bust, got %q", st.Info())
	}
}

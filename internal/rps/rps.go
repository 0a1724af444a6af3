// internal/rps/rps.go
//
// Rock, scissors, paper against a random opponent, played through the game
// protocol. The choice list and beats table form a three-way cycle: each
// choice beats exactly one other and loses to exactly one other. A single
// valid answer resolves the whole round; anything else re-prompts.

package rps

import (
	"github.com/robalobadob/arcade/internal/game"
	"github.com/robalobadob/arcade/internal/rng"
	"github.com/robalobadob/arcade/internal/textfmt"
)

var (
	choices = []string{"rock", "scissors", "paper"}
	// winsOver[i] is the index choices[i] beats.
	winsOver = []int{1, 2, 0}
)

// Game is one round of rock, scissors, paper.
type Game struct {
	src rng.Source
}

// New starts a round drawing the opponent's choice from src.
func New(src rng.Source) *Game {
	return &Game{src: src}
}

func (g *Game) Done() bool { return false }

func (g *Game) Info() string { return "" }

func (g *Game) Prompt() string {
	return "Pick one of " + textfmt.NaturalList(choices, " or ") + ": "
}

// Next resolves the round. Input outside the choice list returns the round
// unchanged so the loop re-prompts.
func (g *Game) Next(answer string) game.State {
	player := index(answer)
	if player < 0 {
		return g
	}
	opponent := g.src.Intn(len(choices))
	switch {
	case opponent == player:
		return game.Finish("It's a draw")
	case winsOver[player] == opponent:
		return game.Finish("You won against " + choices[opponent])
	default:
		return game.Finish("You lost against " + choices[opponent])
	}
}

func index(answer string) int {
	for i, c := range choices {
		if c == answer {
			return i
		}
	}
	return -1
}

// internal/hangman/hangman.go
//
// One round of hangman, played through the game protocol.
// Rules:
//   - A target word is picked uniformly from the word list at creation.
//   - Each answer's first letter counts as the guess (case-insensitive);
//     the word keeps its original casing for display.
//   - Every guessed letter is recorded. Only a first-time wrong letter
//     costs a guess; repeats and correct letters are free.
//   - Covering every distinct letter of the word wins; running out of
//     guesses loses. Both reveal the word.
//
// Transitions are pure: Next returns a fresh round value with its own copy
// of the guessed set, so no two rounds can ever share guesses.

package hangman

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/robalobadob/arcade/internal/game"
	"github.com/robalobadob/arcade/internal/rng"
	"github.com/robalobadob/arcade/internal/textfmt"
)

// Game is one round of hangman.
type Game struct {
	word    string
	guessed map[rune]bool
	left    int
	notify  func(string)
}

// New picks a word from words via src and starts a round with the given
// guess budget. notify receives the immediate right/wrong notice after each
// guess; it may be nil.
func New(words []string, guessesLeft int, src rng.Source, notify func(string)) *Game {
	return &Game{
		word:    words[src.Intn(len(words))],
		guessed: make(map[rune]bool),
		left:    guessesLeft,
		notify:  notify,
	}
}

func (g *Game) Done() bool { return false }

func (g *Game) Info() string { return "" }

// Prompt shows the masked word and how many guesses remain.
func (g *Game) Prompt() string {
	return fmt.Sprintf("Guess a letter in the word (%s) (%d %s left)? ",
		g.masked(), g.left, textfmt.Pluralize(g.left, "guess", "guesses"))
}

// Next takes the first letter of the answer as the guess and resolves the
// round: win once the word is covered, loss once the budget is spent,
// otherwise a new round value with the guess recorded.
func (g *Game) Next(answer string) game.State {
	runes := []rune(answer)
	if len(runes) == 0 {
		return g
	}
	guess := unicode.ToLower(runes[0])
	lowered := strings.ToLower(g.word)
	correct := strings.ContainsRune(lowered, guess)

	if correct {
		g.say("Correct :)")
	} else {
		g.say("Wrong")
	}

	left := g.left
	if !correct && !g.guessed[guess] {
		left--
	}

	guessed := make(map[rune]bool, len(g.guessed)+1)
	for r := range g.guessed {
		guessed[r] = true
	}
	guessed[guess] = true

	switch {
	case covered(lowered, guessed):
		return game.Finish("You found the word " + g.word)
	case left < 1:
		return game.Finish("You did not find the word " + g.word)
	default:
		return &Game{word: g.word, guessed: guessed, left: left, notify: g.notify}
	}
}

// masked renders the word with unguessed letters replaced by underscores.
func (g *Game) masked() string {
	var b strings.Builder
	for _, r := range g.word {
		if g.guessed[unicode.ToLower(r)] {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// covered reports whether every distinct letter of word is in guessed.
func covered(word string, guessed map[rune]bool) bool {
	for _, r := range word {
		if !guessed[r] {
			return false
		}
	}
	return true
}

func (g *Game) say(s string) {
	if g.notify != nil {
		g.notify(s)
	}
}

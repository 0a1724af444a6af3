// internal/menu/menu.go
//
// The arcade's top-level menu, itself a game.State: the same driving loop
// that runs the games runs the menu. Selecting an entry constructs that
// game, hands control to game.Run until the game finishes, records the
// outcome, and falls back to the menu. "x" quits with an empty summary.
//
// Entries are an ordered registry of key/title/factory rows so the prompt
// and the dispatch always agree.

package menu

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/arcade/internal/blackjack"
	"github.com/robalobadob/arcade/internal/game"
	"github.com/robalobadob/arcade/internal/hangman"
	"github.com/robalobadob/arcade/internal/rng"
	"github.com/robalobadob/arcade/internal/rps"
	"github.com/robalobadob/arcade/internal/store"
)

// Options carries the per-session game parameters.
type Options struct {
	// Words is the hangman word list.
	Words []string
	// HangmanGuesses is the guess budget per hangman round.
	HangmanGuesses int
}

type entry struct {
	key   string
	title string
	start func() game.State
}

// Menu dispatches to the games and records their outcomes.
type Menu struct {
	console game.Console
	results store.Store
	entries []entry
}

// New builds the menu. All game randomness flows through src, and every
// finished game's summary is saved to results.
func New(c game.Console, src rng.Source, results store.Store, opts Options) *Menu {
	m := &Menu{console: c, results: results}
	notify := func(s string) {
		if err := c.WriteLine(s); err != nil {
			log.Warn().Err(err).Msg("write notice")
		}
	}
	m.entries = []entry{
		{"1", "Blackjack", func() game.State {
			return blackjack.New(src)
		}},
		{"2", "Hangman", func() game.State {
			return hangman.New(opts.Words, opts.HangmanGuesses, src, notify)
		}},
		{"3", "Rock, scissors, paper", func() game.State {
			return rps.New(src)
		}},
	}
	return m
}

func (m *Menu) Done() bool { return false }

func (m *Menu) Info() string { return "" }

// Prompt lists the games plus the exit choice.
func (m *Menu) Prompt() string {
	var b strings.Builder
	b.WriteString("What do you want to play?\n")
	for _, e := range m.entries {
		b.WriteString("(" + e.key + ") " + e.title + "\n")
	}
	b.WriteString("(x) Quit\n? ")
	return b.String()
}

// Next dispatches a selection. A game choice plays that game to completion
// and returns to the menu; "x" finishes the arcade; anything else leaves
// the menu unchanged so the loop re-prompts.
func (m *Menu) Next(answer string) game.State {
	if answer == "x" {
		return game.Finish("")
	}
	for _, e := range m.entries {
		if e.key != answer {
			continue
		}
		final, err := game.Run(e.start(), m.console)
		if err != nil {
			// Console is gone (EOF or write failure); end the arcade.
			log.Error().Err(err).Str("game", e.title).Msg("game aborted")
			return game.Finish("")
		}
		m.record(e.title, final.Info())
		return m
	}
	return m
}

// record saves a finished game's outcome for the session log.
func (m *Menu) record(title, summary string) {
	r := &store.Result{
		ID:      uuid.NewString(),
		Game:    title,
		Summary: summary,
		When:    time.Now(),
	}
	if err := m.results.Save(context.Background(), r); err != nil {
		log.Warn().Err(err).Str("game", title).Msg("save result")
	}
	log.Debug().Str("game", title).Str("result", r.ID).Msg("game finished")
}

package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/arcade/internal/config"
	"github.com/robalobadob/arcade/internal/console"
	"github.com/robalobadob/arcade/internal/game"
	"github.com/robalobadob/arcade/internal/menu"
	"github.com/robalobadob/arcade/internal/rng"
	"github.com/robalobadob/arcade/internal/store"
	"github.com/robalobadob/arcade/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(cfg.WordsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	seed := cfg.Seed
	if !cfg.SeedSet {
		if seed, err = rng.NewSeed(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed randomness")
		}
	}
	log.Debug().Int64("seed", seed).Int("words", words.Count()).Msg("starting arcade")

	term := console.New(os.Stdin, os.Stdout)
	results := store.NewMemoryStore()
	m := menu.New(term, rng.New(seed), results, menu.Options{
		Words:          words.List(),
		HangmanGuesses: cfg.HangmanGuesses,
	})

	if _, err := game.Run(m, term); err != nil {
		// Ctrl-D at the menu is a normal way to leave.
		if !errors.Is(err, io.EOF) {
			log.Fatal().Err(err).Msg("arcade exited")
		}
	}

	played, _ := results.List(context.Background())
	log.Debug().Int("games", len(played)).Msg("session over")
}

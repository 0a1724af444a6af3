// internal/config/config.go
//
// Environment-based configuration for the arcade.
// Everything has a sensible default; only a malformed ARCADE_SEED is a hard
// error, since an explicit determinism request must not be silently dropped.
//
// Environment variables:
//   LOG_LEVEL        zerolog level name (default "info").
//   WORDS_FILE       path to a hangman word list; empty uses the embedded one.
//   HANGMAN_GUESSES  guess budget per hangman round (default 5).
//   ARCADE_SEED      int64 seed for all randomness; absent means random play.

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const defaultHangmanGuesses = 5

type Config struct {
	LogLevel       string
	WordsFile      string
	HangmanGuesses int

	Seed    int64
	SeedSet bool
}

// LoadFromEnv reads the configuration from the process environment.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		HangmanGuesses: defaultHangmanGuesses,
	}

	if v := os.Getenv("HANGMAN_GUESSES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HangmanGuesses = n
		} else {
			log.Warn().Str("value", v).Int("default", defaultHangmanGuesses).
				Msg("invalid HANGMAN_GUESSES, using default")
		}
	}

	if v := os.Getenv("ARCADE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ARCADE_SEED %q: %w", v, err)
		}
		cfg.Seed = n
		cfg.SeedSet = true
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

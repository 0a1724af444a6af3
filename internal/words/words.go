// internal/words/words.go
//
// Word list management for hangman.
//
// Responsibilities:
//   - Load the word list from a configured file or fall back to the
//     embedded default list.
//   - Keep original casing for display; hangman compares case-insensitively.
//   - Filter out anything that is not a plain letters-only word.
//
// Initialization behavior (Init):
//   1. If a path is given, load one word per line from that file.
//   2. Otherwise use the embedded default list (a handful of animals).
//
// Constraints:
//   • Words must consist of letters only (any case, unicode letters allowed).
//   • Initialization runs once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"
	"unicode"
)

//go:embed default_words.txt
var embeddedWords string

var (
	initOnce sync.Once
	list     []string
	initErr  error
)

// Init loads the word list exactly once. An empty path selects the embedded
// defaults. Returns an error if the resulting list is empty.
func Init(path string) error {
	initOnce.Do(func() {
		if path != "" {
			list, initErr = readWordFile(path)
			if initErr != nil {
				return
			}
		} else {
			list = normalizeLines(embeddedWords)
		}
		if len(list) == 0 {
			initErr = errors.New("words: word list is empty")
		}
	})
	return initErr
}

// List returns the loaded words in file order. Init must have succeeded
// before calling it.
func List() []string {
	return list
}

// Count reports how many words are loaded.
func Count() int {
	return len(list)
}

// readWordFile loads one word per line from a file, trims surrounding
// whitespace, and keeps only letters-only words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); isWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a slice of
// letters-only words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := strings.TrimSpace(line); isWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// isWord reports whether s is non-empty and letters-only.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

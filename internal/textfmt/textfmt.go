// internal/textfmt/textfmt.go
//
// Small natural-language formatting helpers shared by the game prompts.
// Defines:
//   - Pluralize: pick a phrase variant keyed by cardinality.
//   - NaturalList: join alternatives with commas and a final conjunction.
//
// Both functions are pure; they hold no state and never fail.

package textfmt

import "strings"

// Pluralize returns the phrase variant for cardinality n.
// Variants cover n=1,2,3,... in order; any n outside the covered range
// (including n < 1) falls back to the last variant.
//
//	Pluralize(1, "guess", "guesses") == "guess"
//	Pluralize(7, "guess", "guesses") == "guesses"
func Pluralize(n int, singular string, plurals ...string) string {
	variants := append([]string{singular}, plurals...)
	if n >= 1 && n <= len(variants) {
		return variants[n-1]
	}
	return variants[len(variants)-1]
}

// NaturalList joins alternatives into a sentence fragment, separating the
// final item with conj instead of a comma.
//
//	NaturalList([]string{"a", "b", "c"}, " or ") == "a, b or c"
//
// A single alternative is returned as-is; an empty slice yields "".
func NaturalList(alternatives []string, conj string) string {
	switch len(alternatives) {
	case 0:
		return ""
	case 1:
		return alternatives[0]
	}
	last := alternatives[len(alternatives)-1]
	return strings.Join(alternatives[:len(alternatives)-1], ", ") + conj + last
}

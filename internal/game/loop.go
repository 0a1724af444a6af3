// internal/game/loop.go
//
// Generic driving loop shared by every game (and the menu itself).
// Responsibilities:
//   - Ask the current state for a prompt, read one line, feed it to Next.
//   - Skip empty lines without transitioning (defined re-prompt rule).
//   - Print the successor's Info when non-empty.
//   - Stop as soon as the state reports Done.
//
// The loop terminates for every game in the arcade: each transition shrinks
// a bounded resource (guesses left, one resolved round, hand values that
// only grow toward the bust limit).

package game

import "fmt"

// Console is the line-oriented I/O boundary the loop runs against.
// The terminal implementation lives in internal/console; tests script it.
type Console interface {
	// ReadLine shows prompt and returns one line of input without its
	// trailing newline. The line is otherwise passed through verbatim.
	ReadLine(prompt string) (string, error)

	// WriteLine emits one line of output.
	WriteLine(s string) error
}

// Run drives st until completion and returns the final state.
// I/O failures abort the loop and are returned alongside the last state.
func Run(st State, c Console) (State, error) {
	for !st.Done() {
		answer, err := c.ReadLine(st.Prompt())
		if err != nil {
			return st, fmt.Errorf("read answer: %w", err)
		}
		if answer == "" {
			continue
		}
		st = st.Next(answer)
		if info := st.Info(); info != "" {
			if err := c.WriteLine(info); err != nil {
				return st, fmt.Errorf("write info: %w", err)
			}
		}
	}
	return st, nil
}

// internal/game/state.go
//
// The shared contract implemented by every arcade game.
// Defines:
//   - State: the four-operation protocol (completion, message, prompt,
//     transition) the driving loop runs against.
//   - Finished: the absorbing terminal state carrying a fixed summary.
//
// Transitions are pure: Next returns a successor value (possibly the
// receiver, possibly Finished) and never mutates anything the loop can
// observe. Once a state reports Done, every reachable successor does too.

package game

// State is one step of an interactive game.
type State interface {
	// Done reports whether the game is over. Once true it stays true for
	// every state reachable from this one.
	Done() bool

	// Info is the message to show the player after the transition that
	// produced this state. May be empty.
	Info() string

	// Prompt is the text shown when requesting the next input. May be empty.
	Prompt() string

	// Next consumes one non-empty line of input and returns the successor
	// state. Input the game does not recognize returns the same state
	// unchanged, causing the loop to re-prompt.
	Next(answer string) State
}

// Finished is a completed game. It repeats its summary and never progresses.
type Finished struct {
	summary string
}

// Finish wraps a final summary message in a terminal state.
func Finish(summary string) Finished {
	return Finished{summary: summary}
}

// Done always reports true.
func (f Finished) Done() bool { return true }

// Info returns the fixed summary set at creation.
func (f Finished) Info() string { return f.summary }

// Prompt is empty; a finished game asks for nothing.
func (f Finished) Prompt() string { return "" }

// Next is the identity transition.
func (f Finished) Next(string) State { return f }

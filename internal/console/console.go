// internal/console/console.go
//
// Terminal implementation of the game.Console boundary.
// Reads one line per prompt from an io.Reader (stdin in production) and
// writes messages line by line to an io.Writer. Lines are passed through
// verbatim apart from the stripped newline; whatever trimming a game wants
// is the game's business.

package console

import (
	"bufio"
	"fmt"
	"io"
)

// Terminal is a line-oriented console over a reader/writer pair.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// New wraps in and out in a Terminal.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// ReadLine prints prompt (no trailing newline, so input continues on the
// same line) and returns the next input line. Returns io.EOF once the
// input is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(t.out, prompt); err != nil {
			return "", err
		}
	}
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

// WriteLine emits s followed by a newline.
func (t *Terminal) WriteLine(s string) error {
	_, err := fmt.Fprintln(t.out, s)
	return err
}

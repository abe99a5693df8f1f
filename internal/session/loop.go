package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// TurnFunc handles one forwarded user line. Errors are shown and the loop
// keeps going; they never terminate the session.
type TurnFunc func(ctx context.Context, input string) error

// exitTokens end the session, matched case-insensitively after trimming.
var exitTokens = map[string]bool{
	"exit": true,
	"quit": true,
	"q":    true,
}

// Loop is the interactive read-forward-print loop shared by every call
// command. One blocking read, then one blocking turn, on a single goroutine.
type Loop struct {
	in  io.Reader
	out io.Writer
}

// New creates a loop over the given streams.
func New(in io.Reader, out io.Writer) *Loop {
	return &Loop{in: in, out: out}
}

// IsExit reports whether a trimmed line is an exit token.
func IsExit(line string) bool {
	return exitTokens[strings.ToLower(line)]
}

// Run prints the banner and drives turns until an exit token, EOF or
// context cancellation. Whitespace-only lines re-prompt without calling
// the turn function; exit tokens are never forwarded to it.
func (lp *Loop) Run(ctx context.Context, banner Banner, turn TurnFunc) error {
	lp.printBanner(banner)

	scanner := bufio.NewScanner(lp.in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(lp.out, "\nYou: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if IsExit(input) {
			fmt.Fprintln(lp.out, "Goodbye!")
			return nil
		}

		if err := turn(ctx, input); err != nil {
			fmt.Fprintf(lp.out, "\nError: %v\n", err)
		}
	}
}

// Banner is the session header shown before the first prompt.
type Banner struct {
	Title    string
	Subtitle string
}

func (lp *Loop) printBanner(b Banner) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(lp.out)
	fmt.Fprintln(lp.out, rule)
	fmt.Fprintln(lp.out, b.Title)
	if b.Subtitle != "" {
		fmt.Fprintln(lp.out, b.Subtitle)
	}
	fmt.Fprintln(lp.out, "Type 'exit' or 'quit' to end the session.")
	fmt.Fprintln(lp.out, rule)
}

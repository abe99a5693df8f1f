package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"foundry-agent-toolkit/internal/session"
)

func runLoop(t *testing.T, input string, turn session.TurnFunc) string {
	t.Helper()
	var out strings.Builder
	loop := session.New(strings.NewReader(input), &out)
	err := loop.Run(context.Background(), session.Banner{Title: "Test Agent"}, turn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestLoop(t *testing.T) {
	t.Run("Exit Tokens Are Case Insensitive And Never Forwarded", func(t *testing.T) {
		for _, token := range []string{"exit", "Exit", "QUIT", "q", "Q", "  quit  "} {
			var forwarded []string
			out := runLoop(t, token+"\n", func(_ context.Context, input string) error {
				forwarded = append(forwarded, input)
				return nil
			})
			if len(forwarded) != 0 {
				t.Errorf("token %q was forwarded: %v", token, forwarded)
			}
			if !strings.Contains(out, "Goodbye!") {
				t.Errorf("token %q did not print goodbye", token)
			}
		}
	})

	t.Run("Whitespace Only Lines Do Not Forward", func(t *testing.T) {
		var forwarded []string
		out := runLoop(t, "\n   \n\t\nhello\nexit\n", func(_ context.Context, input string) error {
			forwarded = append(forwarded, input)
			return nil
		})
		if len(forwarded) != 1 || forwarded[0] != "hello" {
			t.Errorf("expected only hello forwarded, got %v", forwarded)
		}
		// One prompt per line read plus the final exit prompt.
		if got := strings.Count(out, "You: "); got != 5 {
			t.Errorf("expected 5 prompts, got %d", got)
		}
	})

	t.Run("Turn Error Continues Loop", func(t *testing.T) {
		var calls int
		out := runLoop(t, "first\nsecond\nexit\n", func(_ context.Context, input string) error {
			calls++
			if input == "first" {
				return errors.New("remote call failed")
			}
			return nil
		})
		if calls != 2 {
			t.Errorf("expected loop to continue after error, got %d calls", calls)
		}
		if !strings.Contains(out, "Error: remote call failed") {
			t.Errorf("expected error rendered, got %q", out)
		}
	})

	t.Run("EOF Ends Loop Cleanly", func(t *testing.T) {
		out := runLoop(t, "hello\n", func(_ context.Context, _ string) error { return nil })
		if !strings.Contains(out, "You: ") {
			t.Errorf("expected at least one prompt, got %q", out)
		}
	})

	t.Run("Banner Shown Once", func(t *testing.T) {
		out := runLoop(t, "exit\n", func(_ context.Context, _ string) error { return nil })
		if !strings.Contains(out, "Test Agent") {
			t.Errorf("expected banner title, got %q", out)
		}
		if !strings.Contains(out, "Type 'exit' or 'quit' to end the session.") {
			t.Errorf("expected exit hint, got %q", out)
		}
	})

	t.Run("Cancelled Context Stops Loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out strings.Builder
		loop := session.New(strings.NewReader("hello\n"), &out)
		err := loop.Run(ctx, session.Banner{Title: "t"}, func(_ context.Context, _ string) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestIsExit(t *testing.T) {
	cases := map[string]bool{
		"exit": true, "Exit": true, "QUIT": true, "q": true,
		"exit now": false, "quit?": false, "": false, "hello": false,
	}
	for in, want := range cases {
		if got := session.IsExit(in); got != want {
			t.Errorf("IsExit(%q) = %v, want %v", in, got, want)
		}
	}
}

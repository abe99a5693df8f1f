package agentcall_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundry-agent-toolkit/internal/agentcall"
	"foundry-agent-toolkit/internal/session"
	"foundry-agent-toolkit/pkg/identity"
	"foundry-agent-toolkit/pkg/log"
	"foundry-agent-toolkit/pkg/responses"
)

func jsonResponse(text string) *responses.Response {
	return &responses.Response{
		ID: "resp-1",
		Output: []responses.OutputItem{
			{Type: "message", Content: []responses.ContentPart{{Type: "output_text", Text: text}}},
		},
	}
}

func TestIntentTurn(t *testing.T) {
	t.Run("Well Formed Result Rendered", func(t *testing.T) {
		invoker := &fakeInvoker{
			createFunc: func(_ context.Context, _ responses.Request) (*responses.Response, error) {
				return jsonResponse(`{
					"intent": "workforce_query",
					"nextAgent": "WorkforceAgent",
					"confidence": 0.88,
					"reasoning": "asks about certifications"
				}`), nil
			},
		}

		var out strings.Builder
		uc := agentcall.New(log.Nop(), invoker, &out, true)
		turn := uc.IntentTurn(testTarget)

		if err := turn(context.Background(), "Which workers have expired certs?"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{
			"Intent Classification Result:",
			"Intent: workforce_query",
			"Next Agent: WorkforceAgent",
			"Confidence: 0.88",
			"Reasoning: asks about certifications",
		} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output missing %q:\n%s", want, out.String())
			}
		}
		if strings.Contains(out.String(), "Additional Agents:") {
			t.Error("additional agents shown without the flag")
		}
	})

	t.Run("Multiple Agents Shown Only With Flag", func(t *testing.T) {
		invoker := &fakeInvoker{
			createFunc: func(_ context.Context, _ responses.Request) (*responses.Response, error) {
				return jsonResponse(`{
					"intent": "combined_query",
					"nextAgent": "WorkforceAgent",
					"confidence": 0.7,
					"reasoning": "needs site and workforce data",
					"requiresMultipleAgents": true,
					"additionalAgents": ["ConstructionSiteAgent"]
				}`), nil
			},
		}

		var out strings.Builder
		uc := agentcall.New(log.Nop(), invoker, &out, false)
		if err := uc.IntentTurn(testTarget)(context.Background(), "crew and sensor status"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Additional Agents: [ConstructionSiteAgent]") {
			t.Errorf("expected additional agents rendered:\n%s", out.String())
		}
	})

	t.Run("Missing Fields Render Sentinels", func(t *testing.T) {
		invoker := &fakeInvoker{
			createFunc: func(_ context.Context, _ responses.Request) (*responses.Response, error) {
				return jsonResponse(`{"intent": "general_query"}`), nil
			},
		}

		var out strings.Builder
		uc := agentcall.New(log.Nop(), invoker, &out, false)
		if err := uc.IntentTurn(testTarget)(context.Background(), "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Next Agent: N/A", "Confidence: N/A", "Reasoning: N/A"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output missing %q:\n%s", want, out.String())
			}
		}
	})

	t.Run("Not JSON Shows Raw And Does Not Fail The Turn", func(t *testing.T) {
		invoker := &fakeInvoker{
			createFunc: func(_ context.Context, _ responses.Request) (*responses.Response, error) {
				return jsonResponse("I am sorry, I cannot classify that."), nil
			},
		}

		var out strings.Builder
		uc := agentcall.New(log.Nop(), invoker, &out, true)
		if err := uc.IntentTurn(testTarget)(context.Background(), "???"); err != nil {
			t.Fatalf("malformed payload must not fail the turn: %v", err)
		}
		if !strings.Contains(out.String(), "Agent Response (not JSON): I am sorry, I cannot classify that.") {
			t.Errorf("expected raw passthrough:\n%s", out.String())
		}
	})

	t.Run("Remote Error Propagates", func(t *testing.T) {
		invoker := &fakeInvoker{
			createFunc: func(_ context.Context, _ responses.Request) (*responses.Response, error) {
				return nil, errors.New("503 service unavailable")
			},
		}

		var out strings.Builder
		uc := agentcall.New(log.Nop(), invoker, &out, false)
		if err := uc.IntentTurn(testTarget)(context.Background(), "hi"); err == nil {
			t.Error("expected remote error to propagate")
		}
	})
}

// TestDispatchConfirmEndToEnd drives the real loop, use case and HTTP
// client against a fake invocation plane: the documented dispatch
// confirmation phrase must classify to dispatch_confirm and route to the
// CommunicationAgent.
func TestDispatchConfirmEndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req responses.Request
		json.NewDecoder(r.Body).Decode(&req)

		result := map[string]any{
			"intent":     "general_query",
			"nextAgent":  "WorkforceAgent",
			"confidence": 0.5,
			"reasoning":  "fallback",
		}
		if req.Input == "Yes I confirm this dispatch" {
			result = map[string]any{
				"intent":     "dispatch_confirm",
				"nextAgent":  "CommunicationAgent",
				"confidence": 0.99,
				"reasoning":  "explicit dispatch confirmation phrase",
			}
		}
		text, _ := json.Marshal(result)

		body := map[string]any{
			"id": "resp-e2e",
			"output": []map[string]any{
				{"type": "message", "content": []map[string]any{
					{"type": "output_text", "text": string(text)},
				}},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer ts.Close()

	tokens, _ := identity.NewStaticProvider("test-token")
	client, err := responses.NewClient(ts.URL, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out strings.Builder
	uc := agentcall.New(log.Nop(), client, &out, true)
	loop := session.New(strings.NewReader("Yes I confirm this dispatch\nexit\n"), &out)

	err = loop.Run(context.Background(), session.Banner{Title: "Detect User Intent Agent"}, uc.IntentTurn(testTarget))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Intent: dispatch_confirm") {
		t.Errorf("expected dispatch_confirm classification:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Next Agent: CommunicationAgent") {
		t.Errorf("expected CommunicationAgent routing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected clean exit:\n%s", out.String())
	}
}

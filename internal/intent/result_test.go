package intent_test

import (
	"encoding/json"
	"testing"

	"foundry-agent-toolkit/internal/intent"
)

func TestParse(t *testing.T) {
	t.Run("Well Formed Payload Extracts Verbatim", func(t *testing.T) {
		raw := `{
			"intent": "dispatch_confirm",
			"nextAgent": "CommunicationAgent",
			"confidence": 0.95,
			"reasoning": "user explicitly confirmed the dispatch",
			"requiresMultipleAgents": true,
			"additionalAgents": ["WeatherAgent"]
		}`
		r, err := intent.Parse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Intent != intent.IntentDispatchConfirm {
			t.Errorf("expected dispatch_confirm, got %s", r.Intent)
		}
		if r.NextAgent != intent.AgentCommunication {
			t.Errorf("expected CommunicationAgent, got %s", r.NextAgent)
		}
		if r.ConfidenceDisplay() != "0.95" {
			t.Errorf("expected 0.95, got %s", r.ConfidenceDisplay())
		}
		if r.ReasoningDisplay() != "user explicitly confirmed the dispatch" {
			t.Errorf("unexpected reasoning: %s", r.ReasoningDisplay())
		}
		if !r.RequiresMultipleAgents {
			t.Error("expected requiresMultipleAgents to be true")
		}
		if r.AdditionalAgentsDisplay() != "[WeatherAgent]" {
			t.Errorf("unexpected additional agents: %s", r.AdditionalAgentsDisplay())
		}
	})

	t.Run("Missing Fields Fall Back To Sentinel", func(t *testing.T) {
		r, err := intent.Parse(`{}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.IntentDisplay() != intent.NotAvailable {
			t.Errorf("expected %s, got %s", intent.NotAvailable, r.IntentDisplay())
		}
		if r.NextAgentDisplay() != intent.NotAvailable {
			t.Errorf("expected %s, got %s", intent.NotAvailable, r.NextAgentDisplay())
		}
		if r.ConfidenceDisplay() != intent.NotAvailable {
			t.Errorf("expected %s, got %s", intent.NotAvailable, r.ConfidenceDisplay())
		}
		if r.ReasoningDisplay() != intent.NotAvailable {
			t.Errorf("expected %s, got %s", intent.NotAvailable, r.ReasoningDisplay())
		}
	})

	t.Run("Zero Confidence Is Not Missing", func(t *testing.T) {
		r, err := intent.Parse(`{"confidence": 0}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ConfidenceDisplay() != "0" {
			t.Errorf("expected 0, got %s", r.ConfidenceDisplay())
		}
	})

	t.Run("Invalid Payload Returns Error Not Panic", func(t *testing.T) {
		for _, raw := range []string{"", "not json at all", "{truncated", "[1,2,3"} {
			if _, err := intent.Parse(raw); err == nil {
				t.Errorf("expected parse error for %q", raw)
			}
		}
	})

	t.Run("Flag Without List Is Preserved", func(t *testing.T) {
		// The source contract does not correlate the flag and the list;
		// neither does the consumer.
		r, err := intent.Parse(`{"requiresMultipleAgents": true}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.RequiresMultipleAgents {
			t.Error("expected flag preserved")
		}
		if r.AdditionalAgentsDisplay() != "[]" {
			t.Errorf("expected empty list render, got %s", r.AdditionalAgentsDisplay())
		}
	})

	t.Run("Span Attribute Defaults", func(t *testing.T) {
		r, _ := intent.Parse(`{}`)
		if r.IntentOrUnknown() != "unknown" || r.NextAgentOrUnknown() != "unknown" {
			t.Error("expected unknown span attribute defaults")
		}
		if r.ConfidenceOrZero() != 0 {
			t.Errorf("expected 0 confidence default, got %f", r.ConfidenceOrZero())
		}
	})
}

func TestSchema(t *testing.T) {
	schema := intent.Schema()

	t.Run("Marshals", func(t *testing.T) {
		if _, err := json.Marshal(schema); err != nil {
			t.Fatalf("schema must marshal: %v", err)
		}
	})

	t.Run("Closed Enum Sets", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		intents := props["intent"].(map[string]any)["enum"].([]string)
		if len(intents) != 7 {
			t.Errorf("expected 7 intent categories, got %d", len(intents))
		}
		seen := map[string]bool{}
		for _, v := range intents {
			if seen[v] {
				t.Errorf("duplicate intent category %s", v)
			}
			seen[v] = true
		}
		if !seen[intent.IntentDispatchConfirm] {
			t.Error("dispatch_confirm missing from intent enum")
		}

		agents := props["nextAgent"].(map[string]any)["enum"].([]string)
		if len(agents) != 4 {
			t.Errorf("expected 4 agents, got %d", len(agents))
		}
	})

	t.Run("Strict Contract", func(t *testing.T) {
		if schema["additionalProperties"] != false {
			t.Error("expected additionalProperties false")
		}
		required := schema["required"].([]string)
		want := []string{"intent", "nextAgent", "confidence", "reasoning"}
		if len(required) != len(want) {
			t.Fatalf("expected %d required fields, got %d", len(want), len(required))
		}
		for i := range want {
			if required[i] != want[i] {
				t.Errorf("required[%d]: expected %s, got %s", i, want[i], required[i])
			}
		}
	})
}

package responses_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundry-agent-toolkit/pkg/identity"
	"foundry-agent-toolkit/pkg/responses"
)

func newTestClient(t *testing.T, endpoint string) *responses.Client {
	t.Helper()
	tokens, err := identity.NewStaticProvider("test-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client, err := responses.NewClient(endpoint, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestCreate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/openai/responses") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req responses.Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.Agent == nil || req.Agent.Type != responses.AgentReferenceType {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"missing agent reference"}`))
			return
		}
		if req.Stream {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"id": "resp-1",
			"output": [
				{"type": "message", "content": [
					{"type": "output_text", "text": "hello "},
					{"type": "output_text", "text": "world"}
				]}
			]
		}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	t.Run("Aggregates Output Text", func(t *testing.T) {
		resp, err := client.Create(context.Background(), responses.Request{
			Input: "hi",
			Agent: &responses.AgentReference{Name: "TestAgent", Type: responses.AgentReferenceType},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != "resp-1" {
			t.Errorf("unexpected response id: %s", resp.ID)
		}
		if resp.OutputText() != "hello world" {
			t.Errorf("unexpected output text: %q", resp.OutputText())
		}
	})

	t.Run("Missing Agent Reference Error", func(t *testing.T) {
		_, err := client.Create(context.Background(), responses.Request{Input: "hi"})
		if err == nil || !strings.Contains(err.Error(), "400") {
			t.Errorf("expected 400 error, got %v", err)
		}
	})
}

func TestStream(t *testing.T) {
	events := []string{
		`data: {"type":"response.created","response":{"id":"resp-9"}}`,
		``,
		`data: not-json-keepalive`,
		`data: {"type":"response.output_text.delta","delta":"Hel"}`,
		`data: {"type":"response.unknown_event"}`,
		`data: {"type":"response.output_text.delta","delta":"lo"}`,
		`data: {"type":"response.completed"}`,
		`data: [DONE]`,
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "text/event-stream" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var req responses.Request
		json.NewDecoder(r.Body).Decode(&req)
		if !req.Stream {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, e := range events {
			fmt.Fprintf(w, "%s\n", e)
		}
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	t.Run("Decodes Known Events In Order", func(t *testing.T) {
		var got []responses.StreamEvent
		err := client.Stream(context.Background(), responses.Request{
			Input: "hi",
			Agent: &responses.AgentReference{Name: "TestAgent", Type: responses.AgentReferenceType},
		}, func(e responses.StreamEvent) {
			got = append(got, e)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(got) != 4 {
			t.Fatalf("expected 4 events, got %d: %+v", len(got), got)
		}
		if got[0].Type != responses.EventResponseCreated || got[0].Response.ID != "resp-9" {
			t.Errorf("unexpected first event: %+v", got[0])
		}
		if got[1].Delta+got[2].Delta != "Hello" {
			t.Errorf("unexpected deltas: %q %q", got[1].Delta, got[2].Delta)
		}
		if got[3].Type != responses.EventResponseCompleted {
			t.Errorf("unexpected last event: %+v", got[3])
		}
	})

	t.Run("Server Error Surfaces Body", func(t *testing.T) {
		errTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"no access"}`))
		}))
		defer errTS.Close()

		errClient := newTestClient(t, errTS.URL)
		err := errClient.Stream(context.Background(), responses.Request{Input: "hi"}, func(responses.StreamEvent) {})
		if err == nil || !strings.Contains(err.Error(), "no access") {
			t.Errorf("expected error with body, got %v", err)
		}
	})

	t.Run("EOF Without Done Marker Ends Stream", func(t *testing.T) {
		shortTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {\"type\":\"response.output_text.delta\",\"delta\":\"x\"}\n")
		}))
		defer shortTS.Close()

		shortClient := newTestClient(t, shortTS.URL)
		var deltas int
		err := shortClient.Stream(context.Background(), responses.Request{Input: "hi"}, func(e responses.StreamEvent) {
			if e.Type == responses.EventOutputTextDelta {
				deltas++
			}
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deltas != 1 {
			t.Errorf("expected 1 delta, got %d", deltas)
		}
	})
}

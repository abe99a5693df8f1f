package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is one Intent Classification Result as returned by the agent.
// Parsing is best-effort: fields the agent omitted stay at their zero
// value and render as the NotAvailable sentinel. Confidence is a pointer
// so "absent" and "0" stay distinguishable.
type Result struct {
	Intent                 string   `json:"intent"`
	NextAgent              string   `json:"nextAgent"`
	Confidence             *float64 `json:"confidence"`
	Reasoning              string   `json:"reasoning"`
	RequiresMultipleAgents bool     `json:"requiresMultipleAgents"`
	AdditionalAgents       []string `json:"additionalAgents"`
}

// Parse decodes a raw agent payload. A nil Result with an error means the
// payload was not JSON at all; the caller shows the raw text instead.
func Parse(raw string) (*Result, error) {
	var r Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	return &r, nil
}

// IntentDisplay returns the intent or the sentinel.
func (r *Result) IntentDisplay() string {
	return orNA(r.Intent)
}

// NextAgentDisplay returns the routing target or the sentinel.
func (r *Result) NextAgentDisplay() string {
	return orNA(r.NextAgent)
}

// ConfidenceDisplay returns the confidence or the sentinel.
func (r *Result) ConfidenceDisplay() string {
	if r.Confidence == nil {
		return NotAvailable
	}
	return trimFloat(*r.Confidence)
}

// ReasoningDisplay returns the reasoning or the sentinel.
func (r *Result) ReasoningDisplay() string {
	return orNA(r.Reasoning)
}

// AdditionalAgentsDisplay renders the additional agent list. Shown only
// when RequiresMultipleAgents is set; an empty list still renders, the
// flag/list correlation is deliberately not validated.
func (r *Result) AdditionalAgentsDisplay() string {
	return "[" + strings.Join(r.AdditionalAgents, ", ") + "]"
}

// IntentOrUnknown is the span-attribute form of the intent.
func (r *Result) IntentOrUnknown() string {
	if r.Intent == "" {
		return "unknown"
	}
	return r.Intent
}

// NextAgentOrUnknown is the span-attribute form of the routing target.
func (r *Result) NextAgentOrUnknown() string {
	if r.NextAgent == "" {
		return "unknown"
	}
	return r.NextAgent
}

// ConfidenceOrZero is the span-attribute form of the confidence.
func (r *Result) ConfidenceOrZero() float64 {
	if r.Confidence == nil {
		return 0
	}
	return *r.Confidence
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// trimFloat formats without a forced precision so 0.95 prints as 0.95,
// not 0.950000.
func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", f), "0"), ".")
}

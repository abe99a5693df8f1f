package responses

// AgentReference targets a provisioned agent by name.
type AgentReference struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Request is the body for the responses endpoint.
type Request struct {
	Input      string          `json:"input"`
	Stream     bool            `json:"stream,omitempty"`
	ToolChoice string          `json:"tool_choice,omitempty"`
	Agent      *AgentReference `json:"agent,omitempty"`
}

// Response is a completed, single-shot response.
type Response struct {
	ID     string       `json:"id"`
	Output []OutputItem `json:"output"`
}

// OutputItem is one entry of the response output array.
type OutputItem struct {
	Type    string        `json:"type"`
	Content []ContentPart `json:"content"`
}

// ContentPart is one piece of an output item's content.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// OutputText concatenates all output_text parts across output items.
func (r *Response) OutputText() string {
	var out string
	for _, item := range r.Output {
		for _, part := range item.Content {
			if part.Type == "output_text" {
				out += part.Text
			}
		}
	}
	return out
}

// StreamEvent is one decoded server-sent event.
type StreamEvent struct {
	Type     string       `json:"type"`
	Delta    string       `json:"delta,omitempty"`
	Response *ResponseRef `json:"response,omitempty"`
}

// ResponseRef carries the response identity inside stream events.
type ResponseRef struct {
	ID string `json:"id"`
}

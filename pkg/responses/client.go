package responses

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"foundry-agent-toolkit/pkg/identity"
)

var dataPrefix = []byte("data: ")
var doneMarker = []byte("[DONE]")

// Client calls the project's OpenAI-compatible responses endpoint.
type Client struct {
	baseURL    string
	apiVersion string
	tokens     identity.TokenProvider
	httpClient *http.Client
}

// NewClient creates a responses client for a project endpoint. The request
// path lives under {endpoint}/openai, matching where the hosted service
// exposes its OpenAI-compatible surface.
func NewClient(projectEndpoint string, tokens identity.TokenProvider) (*Client, error) {
	if projectEndpoint == "" {
		return nil, fmt.Errorf("responses: project endpoint is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("responses: token provider is required")
	}
	return &Client{
		baseURL:    projectEndpoint + "/openai",
		apiVersion: DefaultAPIVersion,
		tokens:     tokens,
		// No timeout: streamed responses hold the connection open for as
		// long as the model generates. Cancellation comes from ctx.
		httpClient: &http.Client{},
	}, nil
}

// Create sends a single-shot request and returns the completed response.
func (c *Client) Create(ctx context.Context, req Request) (*Response, error) {
	req.Stream = false

	httpResp, err := c.send(ctx, req, false)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var out Response
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Stream sends a streaming request and invokes onEvent for every decoded
// event until the completion marker or context cancellation. Lines that do
// not decode as events are skipped; the stream is expected to interleave
// keep-alives and unknown event types.
func (c *Client) Stream(ctx context.Context, req Request, onEvent func(StreamEvent)) error {
	req.Stream = true

	httpResp, err := c.send(ctx, req, true)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	br := bufio.NewReader(httpResp.Body)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if done := handleStreamLine(line, onEvent); done {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read stream: %w", err)
		}
	}
}

// handleStreamLine decodes one SSE line, reporting whether the stream ended.
func handleStreamLine(line []byte, onEvent func(StreamEvent)) bool {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || !bytes.HasPrefix(line, dataPrefix) {
		return false
	}
	payload := bytes.TrimSpace(bytes.TrimPrefix(line, dataPrefix))
	if bytes.Equal(payload, doneMarker) {
		return true
	}

	var event StreamEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		// Partial or vendor-specific chunks are expected; skip them.
		return false
	}
	onEvent(event)
	return event.Type == EventResponseCompleted
}

func (c *Client) send(ctx context.Context, req Request, stream bool) (*http.Response, error) {
	url := fmt.Sprintf("%s/responses?api-version=%s", c.baseURL, c.apiVersion)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	token, err := c.tokens.Token(ctx, identity.ScopeFoundry)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("x-ms-client-request-id", uuid.NewString())
	if stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call responses API: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("responses API error %d: %s", resp.StatusCode, string(raw))
	}
	return resp, nil
}

package foundry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"foundry-agent-toolkit/pkg/identity"
)

// Client is the Foundry project control-plane HTTP client.
type Client struct {
	endpoint   string
	armBase    string
	apiVersion string
	tokens     identity.TokenProvider
	httpClient *http.Client
	writeLimit *rate.Limiter
}

// Option customizes the client.
type Option func(*Client)

// WithAPIVersion overrides the project API version.
func WithAPIVersion(v string) Option {
	return func(c *Client) { c.apiVersion = v }
}

// WithARMBase overrides the management endpoint. Used in tests.
func WithARMBase(base string) Option {
	return func(c *Client) { c.armBase = base }
}

// NewClient creates a control-plane client for a project endpoint.
func NewClient(endpoint string, tokens identity.TokenProvider, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("foundry: project endpoint is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("foundry: token provider is required")
	}
	c := &Client{
		endpoint:   endpoint,
		armBase:    ARMEndpoint,
		apiVersion: DefaultAPIVersion,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		writeLimit: rate.NewLimiter(rate.Limit(writeRatePerSec), writeBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateAgentVersion creates (or updates, by appending a version of) a named agent.
func (c *Client) CreateAgentVersion(ctx context.Context, agentName string, def PromptAgentDefinition) (*AgentVersion, error) {
	if agentName == "" {
		return nil, fmt.Errorf("foundry: agent name is required")
	}
	if def.Kind == "" {
		def.Kind = "prompt_agent"
	}

	if err := c.writeLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/agents/%s/versions?api-version=%s", c.endpoint, agentName, c.apiVersion)

	body, err := json.Marshal(createVersionRequest{Definition: def})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create version request: %w", err)
	}

	var version AgentVersion
	if err := c.do(ctx, http.MethodPost, url, identity.ScopeFoundry, body, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// ListAgentVersions returns the versions of an agent, newest first.
func (c *Client) ListAgentVersions(ctx context.Context, agentName string) ([]AgentVersion, error) {
	if agentName == "" {
		return nil, fmt.Errorf("foundry: agent name is required")
	}

	url := fmt.Sprintf("%s/agents/%s/versions?api-version=%s", c.endpoint, agentName, c.apiVersion)

	var out listVersionsResponse
	if err := c.do(ctx, http.MethodGet, url, identity.ScopeFoundry, nil, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// LatestAgentVersion resolves the most recent version of a named agent.
// An agent with no versions is an error: the caller referenced something
// that was never provisioned.
func (c *Client) LatestAgentVersion(ctx context.Context, agentName string) (*AgentVersion, error) {
	versions, err := c.ListAgentVersions(ctx, agentName)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("no versions found for agent: %s", agentName)
	}
	return &versions[0], nil
}

// GetConnection fetches a project connection by name.
func (c *Client) GetConnection(ctx context.Context, name string) (*Connection, error) {
	if name == "" {
		return nil, fmt.Errorf("foundry: connection name is required")
	}

	url := fmt.Sprintf("%s/connections/%s?api-version=%s", c.endpoint, name, c.apiVersion)

	var conn Connection
	if err := c.do(ctx, http.MethodGet, url, identity.ScopeFoundry, nil, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// GetAppInsightsConnectionString returns the project's Application Insights
// connection string, or "" when telemetry is not wired up on the project.
func (c *Client) GetAppInsightsConnectionString(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/telemetry/applicationInsightsConnectionString?api-version=%s", c.endpoint, c.apiVersion)

	token, err := c.tokens.Token(ctx, identity.ScopeFoundry)
	if err != nil {
		return "", fmt.Errorf("failed to acquire token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build telemetry request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call telemetry API: %w", err)
	}
	defer resp.Body.Close()

	// Absent telemetry configuration is not an error for callers.
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("telemetry API error %d: %s", resp.StatusCode, string(raw))
	}

	var out telemetryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode telemetry response: %w", err)
	}
	return out.ConnectionString, nil
}

// CreateARMConnection PUTs a project connection on the management plane.
// The raw status and body are returned for display; non-2xx is still an error.
func (c *Client) CreateARMConnection(ctx context.Context, resourceID, name string, req ARMConnectionRequest) (*ARMResult, error) {
	if resourceID == "" {
		return nil, fmt.Errorf("foundry: project resource id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("foundry: connection name is required")
	}

	if err := c.writeLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s%s/connections/%s?api-version=%s", c.armBase, resourceID, name, ARMAPIVersion)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal connection request: %w", err)
	}

	token, err := c.tokens.Token(ctx, identity.ScopeManagement)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build connection request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("x-ms-client-request-id", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call management API: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	result := &ARMResult{StatusCode: resp.StatusCode, Body: string(raw)}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return result, fmt.Errorf("management API error %d: %s", resp.StatusCode, string(raw))
	}
	return result, nil
}

// do issues a JSON request against the project API and decodes into out.
func (c *Client) do(ctx context.Context, method, url, scope string, body []byte, out any) error {
	token, err := c.tokens.Token(ctx, scope)
	if err != nil {
		return fmt.Errorf("failed to acquire token: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("x-ms-client-request-id", uuid.NewString())
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call foundry API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("foundry API error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode foundry response: %w", err)
		}
	}
	return nil
}

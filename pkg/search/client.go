package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"foundry-agent-toolkit/pkg/identity"
)

const (
	// DefaultAPIVersion targets the preview surface that carries
	// knowledge sources and knowledge bases.
	DefaultAPIVersion = "2025-08-01-preview"
)

// Client is the search service REST client. Every provisioning operation is
// an idempotent PUT against a named resource.
type Client struct {
	endpoint   string
	apiVersion string
	apiKey     string
	tokens     identity.TokenProvider
	httpClient *http.Client
}

// NewClient creates a search client. An API key wins over the token
// provider when both are configured; one of the two is required.
func NewClient(endpoint, apiKey string, tokens identity.TokenProvider) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("search: endpoint is required")
	}
	if apiKey == "" && tokens == nil {
		return nil, fmt.Errorf("search: an API key or token provider is required")
	}
	return &Client{
		endpoint:   endpoint,
		apiVersion: DefaultAPIVersion,
		apiKey:     apiKey,
		tokens:     tokens,
		httpClient: &http.Client{},
	}, nil
}

// WithAPIVersion overrides the API version.
func (c *Client) WithAPIVersion(v string) *Client {
	c.apiVersion = v
	return c
}

// CreateOrUpdateIndex PUTs a search index.
func (c *Client) CreateOrUpdateIndex(ctx context.Context, index Index) error {
	return c.put(ctx, "indexes", index.Name, index)
}

// CreateOrUpdateDataSource PUTs a data source connection.
func (c *Client) CreateOrUpdateDataSource(ctx context.Context, ds DataSource) error {
	return c.put(ctx, "datasources", ds.Name, ds)
}

// CreateOrUpdateSkillset PUTs a skillset.
func (c *Client) CreateOrUpdateSkillset(ctx context.Context, ss Skillset) error {
	return c.put(ctx, "skillsets", ss.Name, ss)
}

// CreateOrUpdateIndexer PUTs an indexer.
func (c *Client) CreateOrUpdateIndexer(ctx context.Context, ix Indexer) error {
	return c.put(ctx, "indexers", ix.Name, ix)
}

// CreateOrUpdateKnowledgeSource PUTs a knowledge source.
func (c *Client) CreateOrUpdateKnowledgeSource(ctx context.Context, ks KnowledgeSource) error {
	return c.put(ctx, "knowledgeSources", ks.Name, ks)
}

// CreateOrUpdateKnowledgeBase PUTs a knowledge base.
func (c *Client) CreateOrUpdateKnowledgeBase(ctx context.Context, kb KnowledgeBase) error {
	return c.put(ctx, "knowledgeBases", kb.Name, kb)
}

func (c *Client) put(ctx context.Context, collection, name string, payload any) error {
	if name == "" {
		return fmt.Errorf("search: resource name is required")
	}

	url := fmt.Sprintf("%s/%s/%s?api-version=%s", c.endpoint, collection, name, c.apiVersion)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", collection, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", collection, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	} else {
		token, err := c.tokens.Token(ctx, identity.ScopeSearch)
		if err != nil {
			return fmt.Errorf("failed to acquire token: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated &&
		resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("search API %s error %d: %s", collection, resp.StatusCode, string(raw))
	}
	return nil
}

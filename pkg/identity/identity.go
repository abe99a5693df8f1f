package identity

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenProvider yields a bearer token for a resource scope
// (e.g. "https://ai.azure.com/.default").
type TokenProvider interface {
	Token(ctx context.Context, scope string) (string, error)
}

// StaticProvider returns a fixed token for every scope. Used for local
// development where a token is pasted into the environment.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider around a pre-acquired token.
func NewStaticProvider(token string) (*StaticProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("identity: static token is required")
	}
	return &StaticProvider{token: token}, nil
}

func (p *StaticProvider) Token(_ context.Context, _ string) (string, error) {
	return p.token, nil
}

// ClientCredentialsProvider acquires tokens via the OAuth2 client
// credentials flow against the tenant token endpoint. Live tokens are
// cached per scope; tokens are re-checked for validity on every hit, so
// the cache TTL is only a floor.
type ClientCredentialsProvider struct {
	tenantID     string
	clientID     string
	clientSecret string
	tokenURL     string
	cache        *expirable.LRU[string, *oauth2.Token]
}

// Config holds the client credentials flow settings.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	TokenURL     string // override for tests; defaults to the tenant endpoint
}

// NewClientCredentialsProvider creates a provider for the given tenant.
func NewClientCredentialsProvider(cfg Config) (*ClientCredentialsProvider, error) {
	if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("identity: tenant id, client id and client secret are required")
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = fmt.Sprintf("%s/%s/oauth2/v2.0/token", DefaultAuthorityHost, cfg.TenantID)
	}
	return &ClientCredentialsProvider{
		tenantID:     cfg.TenantID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     tokenURL,
		cache:        expirable.NewLRU[string, *oauth2.Token](MaxCachedScopes, nil, TokenCacheTTL),
	}, nil
}

// Token returns a valid bearer token for the scope, from cache when possible.
func (p *ClientCredentialsProvider) Token(ctx context.Context, scope string) (string, error) {
	if scope == "" {
		return "", fmt.Errorf("identity: scope is required")
	}

	if tok, ok := p.cache.Get(scope); ok && tok.Valid() {
		return tok.AccessToken, nil
	}

	cc := clientcredentials.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		TokenURL:     p.tokenURL,
		Scopes:       []string{scope},
	}

	tok, err := cc.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to acquire token for scope %s: %w", scope, err)
	}

	p.cache.Add(scope, tok)
	return tok.AccessToken, nil
}

// FromSettings picks the provider: a static token wins over the OAuth2 flow.
func FromSettings(staticToken, tenantID, clientID, clientSecret string) (TokenProvider, error) {
	if staticToken != "" {
		return NewStaticProvider(staticToken)
	}
	return NewClientCredentialsProvider(Config{
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

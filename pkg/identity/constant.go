package identity

import "time"

const (
	// DefaultAuthorityHost is the Entra ID token authority.
	DefaultAuthorityHost = "https://login.microsoftonline.com"

	// ScopeFoundry is the resource scope for Foundry project APIs.
	ScopeFoundry = "https://ai.azure.com/.default"

	// ScopeManagement is the resource scope for the ARM management plane.
	ScopeManagement = "https://management.azure.com/.default"

	// ScopeSearch is the resource scope for the search service.
	ScopeSearch = "https://search.azure.com/.default"

	// MaxCachedScopes bounds the token cache; only a handful of scopes exist.
	MaxCachedScopes = 8

	// TokenCacheTTL evicts tokens well before the usual 60 minute expiry.
	TokenCacheTTL = 45 * time.Minute
)

package foundry

import "context"

// ControlPlane is the Foundry project control-plane surface the toolkit uses.
type ControlPlane interface {
	CreateAgentVersion(ctx context.Context, agentName string, def PromptAgentDefinition) (*AgentVersion, error)
	ListAgentVersions(ctx context.Context, agentName string) ([]AgentVersion, error)
	LatestAgentVersion(ctx context.Context, agentName string) (*AgentVersion, error)
	GetConnection(ctx context.Context, name string) (*Connection, error)
	GetAppInsightsConnectionString(ctx context.Context) (string, error)
	CreateARMConnection(ctx context.Context, resourceID, name string, req ARMConnectionRequest) (*ARMResult, error)
}

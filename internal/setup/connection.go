package setup

import (
	"context"
	"fmt"

	"foundry-agent-toolkit/pkg/foundry"
)

// CreateMCPConnection PUTs the knowledge-base MCP project connection on
// the management plane. The raw status and body are printed even on
// success so the operator can inspect the provisioned resource.
func (uc *UseCase) CreateMCPConnection(ctx context.Context, in ConnectionInput) error {
	if in.ProjectResourceID == "" {
		return fmt.Errorf("setup: project resource id is required")
	}
	if in.ConnectionName == "" {
		return fmt.Errorf("setup: connection name is required")
	}
	if in.MCPURL == "" {
		return fmt.Errorf("setup: knowledge base MCP URL is required")
	}

	fmt.Fprintf(uc.out, "Creating connection at: %s/connections/%s\n", in.ProjectResourceID, in.ConnectionName)

	req := foundry.ARMConnectionRequest{
		Properties: foundry.ARMConnectionProperties{
			AuthType:                    "CustomKeys",
			Category:                    "RemoteTool",
			Group:                       "GenericProtocol",
			Target:                      in.MCPURL,
			IsSharedToAll:               false,
			UseWorkspaceManagedIdentity: false,
			Credentials: foundry.ARMCredentials{
				Keys: map[string]string{"api-key": in.SearchAPIKey},
			},
			Metadata: map[string]string{"type": "knowledgeBase_MCP"},
		},
	}

	result, err := uc.cp.CreateARMConnection(ctx, in.ProjectResourceID, in.ConnectionName, req)
	if result != nil {
		fmt.Fprintf(uc.out, "Status Code: %d\n", result.StatusCode)
		fmt.Fprintf(uc.out, "Response: %s\n", result.Body)
	}
	if err != nil {
		fmt.Fprintf(uc.out, "\nFailed to create connection.\n")
		return fmt.Errorf("failed to create connection: %w", err)
	}

	fmt.Fprintf(uc.out, "\nConnection '%s' created or updated successfully.\n", in.ConnectionName)
	return nil
}

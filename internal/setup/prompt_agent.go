package setup

import (
	"context"
	"fmt"

	"foundry-agent-toolkit/pkg/foundry"
)

// CreatePromptAgent provisions a prompt agent whose retrieval tool is the
// knowledge-base MCP server.
func (uc *UseCase) CreatePromptAgent(ctx context.Context, in PromptAgentInput) error {
	if in.AgentName == "" {
		return fmt.Errorf("setup: agent name is required")
	}
	if in.Model == "" {
		return fmt.Errorf("setup: model deployment name is required")
	}
	if in.MCPURL == "" {
		return fmt.Errorf("setup: knowledge base MCP URL is required")
	}

	tool := foundry.MCPTool{
		Type:                "mcp",
		ServerLabel:         "knowledge-base",
		ServerURL:           in.MCPURL,
		RequireApproval:     "never",
		AllowedTools:        []string{"knowledge_base_retrieve"},
		ProjectConnectionID: in.ConnectionName,
	}

	version, err := uc.cp.CreateAgentVersion(ctx, in.AgentName, foundry.PromptAgentDefinition{
		Kind:         "prompt_agent",
		Model:        in.Model,
		Instructions: promptInstructions,
		Tools:        []any{tool},
	})
	if err != nil {
		return fmt.Errorf("failed to create prompt agent: %w", err)
	}

	uc.l.Infof(ctx, "prompt agent %s provisioned as version %s", version.Name, version.Version)
	fmt.Fprintf(uc.out, "Agent '%s' created or updated successfully.\n", in.AgentName)
	return nil
}

// CreateFabricAgent provisions a prompt agent bound to the Fabric data
// agent tool. The named project connection is resolved to its id first.
func (uc *UseCase) CreateFabricAgent(ctx context.Context, in FabricAgentInput) error {
	if in.AgentName == "" {
		return fmt.Errorf("setup: agent name is required")
	}
	if in.Model == "" {
		return fmt.Errorf("setup: model deployment name is required")
	}
	if in.ConnectionName == "" {
		return fmt.Errorf("setup: fabric connection name is required")
	}

	conn, err := uc.cp.GetConnection(ctx, in.ConnectionName)
	if err != nil {
		return fmt.Errorf("failed to resolve fabric connection: %w", err)
	}
	fmt.Fprintf(uc.out, "Fabric connection ID: %s\n", conn.ID)

	tool := foundry.FabricAgentTool{
		Type: "fabric_dataagent",
		FabricDataAgent: foundry.FabricDataAgentParameters{
			ProjectConnections: []foundry.ToolProjectConnection{
				{ProjectConnectionID: conn.ID},
			},
		},
	}

	version, err := uc.cp.CreateAgentVersion(ctx, in.AgentName, foundry.PromptAgentDefinition{
		Kind:         "prompt_agent",
		Model:        in.Model,
		Instructions: fabricInstructions,
		Tools:        []any{tool},
	})
	if err != nil {
		return fmt.Errorf("failed to create fabric agent: %w", err)
	}

	uc.l.Infof(ctx, "fabric agent %s provisioned as version %s", version.Name, version.Version)
	fmt.Fprintf(uc.out, "Agent '%s' created or updated successfully.\n", in.AgentName)
	fmt.Fprintf(uc.out, "  - Agent ID: %s\n", version.ID)
	fmt.Fprintf(uc.out, "  - Agent Version: %s\n", version.Version)
	return nil
}

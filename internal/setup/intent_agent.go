package setup

import (
	"context"
	"fmt"

	"foundry-agent-toolkit/internal/intent"
	"foundry-agent-toolkit/pkg/foundry"
)

// CreateIntentAgent provisions the intent-detection agent with strict
// structured output.
func (uc *UseCase) CreateIntentAgent(ctx context.Context, in IntentAgentInput) error {
	if in.AgentName == "" {
		return fmt.Errorf("setup: agent name is required")
	}
	if in.Model == "" {
		return fmt.Errorf("setup: model deployment name is required")
	}

	version, err := uc.cp.CreateAgentVersion(ctx, in.AgentName, foundry.PromptAgentDefinition{
		Kind:         "prompt_agent",
		Model:        in.Model,
		Instructions: intentInstructions,
		ResponseFormat: &foundry.ResponseFormat{
			Type: "json_schema",
			JSONSchema: foundry.JSONSchema{
				Name:   intent.SchemaName,
				Strict: true,
				Schema: intent.Schema(),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create intent agent: %w", err)
	}

	uc.l.Infof(ctx, "intent agent %s provisioned as version %s", version.Name, version.Version)

	fmt.Fprintf(uc.out, "Agent '%s' created successfully!\n", in.AgentName)
	fmt.Fprintf(uc.out, "  - Agent ID: %s\n", version.ID)
	fmt.Fprintf(uc.out, "  - Agent Name: %s\n", version.Name)
	fmt.Fprintf(uc.out, "  - Agent Version: %s\n", version.Version)
	fmt.Fprintf(uc.out, "  - Model: %s\n", in.Model)
	fmt.Fprintf(uc.out, "  - Response Format: JSON Schema (structured output)\n")
	return nil
}

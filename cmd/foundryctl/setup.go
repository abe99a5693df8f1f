package main

import (
	"os"

	"github.com/spf13/cobra"

	"foundry-agent-toolkit/internal/setup"
)

func (a *app) newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision agents, connections and the knowledge base",
	}
	cmd.AddCommand(
		a.newSetupIntentAgentCmd(),
		a.newSetupPromptAgentCmd(),
		a.newSetupFabricAgentCmd(),
		a.newSetupKnowledgeBaseCmd(),
		a.newSetupConnectionCmd(),
	)
	return cmd
}

func (a *app) newSetupIntentAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intent-agent",
		Short: "Create the intent-detection agent with its strict JSON schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireModel(); err != nil {
				return err
			}
			cp, err := a.controlPlane()
			if err != nil {
				return err
			}
			uc := setup.New(a.logger, cp, nil, os.Stdout)
			return uc.CreateIntentAgent(cmd.Context(), setup.IntentAgentInput{
				AgentName: a.cfg.Agents.IntentAgentName,
				Model:     a.cfg.Project.Model,
			})
		},
	}
}

func (a *app) newSetupPromptAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt-agent",
		Short: "Create the knowledge-base agent with its MCP tool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireModel(); err != nil {
				return err
			}
			cp, err := a.controlPlane()
			if err != nil {
				return err
			}
			uc := setup.New(a.logger, cp, nil, os.Stdout)
			return uc.CreatePromptAgent(cmd.Context(), setup.PromptAgentInput{
				AgentName:      a.cfg.Agents.PromptAgentName,
				Model:          a.cfg.Project.Model,
				MCPURL:         a.cfg.Knowledge.MCPURL,
				ConnectionName: a.cfg.Knowledge.ConnectionName,
			})
		},
	}
}

func (a *app) newSetupFabricAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fabric-agent",
		Short: "Create the Fabric data agent bound to its project connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireModel(); err != nil {
				return err
			}
			cp, err := a.controlPlane()
			if err != nil {
				return err
			}
			uc := setup.New(a.logger, cp, nil, os.Stdout)
			return uc.CreateFabricAgent(cmd.Context(), setup.FabricAgentInput{
				AgentName:      a.cfg.Agents.FabricAgentName,
				Model:          a.cfg.Project.Model,
				ConnectionName: a.cfg.Knowledge.FabricConnectionName,
			})
		},
	}
}

func (a *app) newSetupKnowledgeBaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "knowledge-base",
		Short: "Provision the search retrieval pipeline end to end",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := a.searchAdmin()
			if err != nil {
				return err
			}
			uc := setup.New(a.logger, nil, admin, os.Stdout)
			return uc.CreateKnowledgeBase(cmd.Context(), setup.KnowledgeBaseInput{
				IndexName:           a.cfg.Search.IndexName,
				KnowledgeSourceName: a.cfg.Search.KnowledgeSourceName,
				KnowledgeBaseName:   a.cfg.Search.KnowledgeBaseName,
				BlobResourceID:      a.cfg.Search.BlobResourceID,
				BlobContainerName:   a.cfg.Search.BlobContainerName,
				OpenAIEndpoint:      a.cfg.OpenAI.Endpoint,
				EmbeddingDeployment: a.cfg.OpenAI.EmbeddingDeployment,
				EmbeddingModel:      a.cfg.OpenAI.EmbeddingModel,
				EmbeddingDimensions: a.cfg.OpenAI.EmbeddingDimensions,
				ChatDeployment:      a.cfg.OpenAI.ChatDeployment,
			})
		},
	}
}

func (a *app) newSetupConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connection",
		Short: "Create the knowledge-base MCP project connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cp, err := a.controlPlane()
			if err != nil {
				return err
			}
			uc := setup.New(a.logger, cp, nil, os.Stdout)
			return uc.CreateMCPConnection(cmd.Context(), setup.ConnectionInput{
				ProjectResourceID: a.cfg.Project.ResourceID,
				ConnectionName:    a.cfg.Knowledge.ConnectionName,
				MCPURL:            a.cfg.Knowledge.MCPURL,
				SearchAPIKey:      a.cfg.Search.APIKey,
			})
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundry-agent-toolkit/internal/agentcall"
	"foundry-agent-toolkit/internal/session"
	"foundry-agent-toolkit/pkg/foundry"
	"foundry-agent-toolkit/pkg/responses"
)

func (a *app) newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Start an interactive session with a provisioned agent",
	}
	cmd.AddCommand(
		a.newCallPromptCmd(),
		a.newCallFabricCmd(),
		a.newCallIntentCmd(),
	)
	return cmd
}

func (a *app) newCallPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Chat with the knowledge-base agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStreamedSession(cmd.Context(), a.cfg.Agents.PromptAgentName,
				"prompt_agent_call", "", session.Banner{
					Title:    "Foundry IQ Knowledge Base Agent",
					Subtitle: "Ask questions answered from the document knowledge base.",
				})
		},
	}
}

func (a *app) newCallFabricCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fabric",
		Short: "Chat with the Fabric data agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStreamedSession(cmd.Context(), a.cfg.Agents.FabricAgentName,
				"fabric_agent_call", responses.ToolChoiceRequired, session.Banner{
					Title:    "Microsoft Fabric Data Agent",
					Subtitle: "Ask questions answered from Fabric data sources.",
				})
		},
	}
}

func (a *app) newCallIntentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intent",
		Short: "Classify messages with the intent-detection agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			uc, target, err := a.newAgentSession(ctx, a.cfg.Agents.IntentAgentName)
			if err != nil {
				return err
			}
			loop := session.New(os.Stdin, os.Stdout)
			return loop.Run(ctx, session.Banner{
				Title:    "Detect User Intent Agent",
				Subtitle: "Each message is classified into an intent and a next agent.",
			}, uc.IntentTurn(target))
		},
	}
}

func (a *app) runStreamedSession(ctx context.Context, agentName, spanName, toolChoice string, banner session.Banner) error {
	uc, target, err := a.newAgentSession(ctx, agentName)
	if err != nil {
		return err
	}
	loop := session.New(os.Stdin, os.Stdout)
	return loop.Run(ctx, banner, uc.StreamedTurn(target, spanName, toolChoice))
}

// newAgentSession resolves the latest version of the named agent and builds
// the call use case around it.
func (a *app) newAgentSession(ctx context.Context, agentName string) (*agentcall.UseCase, agentcall.Target, error) {
	if agentName == "" {
		return nil, agentcall.Target{}, fmt.Errorf("agent name is not configured")
	}
	cp, err := a.controlPlane()
	if err != nil {
		return nil, agentcall.Target{}, err
	}
	target, err := resolveTarget(ctx, cp, agentName)
	if err != nil {
		return nil, agentcall.Target{}, err
	}

	if cs, err := cp.GetAppInsightsConnectionString(ctx); err != nil {
		a.logger.Warnf(ctx, "Could not read the project telemetry settings: %v", err)
	} else if cs != "" && a.cfg.Telemetry.OTLPEndpoint == "" {
		a.logger.Info(ctx, "Application Insights is connected to this project; set the OTLP endpoint to export spans.")
	}

	inv, err := a.invoker()
	if err != nil {
		return nil, agentcall.Target{}, err
	}
	uc := agentcall.New(a.logger, inv, os.Stdout, a.cfg.Telemetry.ContentRecording)
	return uc, target, nil
}

func resolveTarget(ctx context.Context, cp foundry.ControlPlane, agentName string) (agentcall.Target, error) {
	v, err := cp.LatestAgentVersion(ctx, agentName)
	if err != nil {
		return agentcall.Target{}, err
	}
	fmt.Printf("Using agent: %s, version: %s, id: %s\n", v.Name, v.Version, v.ID)
	return agentcall.Target{Name: v.Name, Version: v.Version, ID: v.ID}, nil
}

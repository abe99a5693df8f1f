package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"foundry-agent-toolkit/config"
	"foundry-agent-toolkit/internal/telemetry"
	"foundry-agent-toolkit/pkg/foundry"
	"foundry-agent-toolkit/pkg/identity"
	"foundry-agent-toolkit/pkg/log"
	"foundry-agent-toolkit/pkg/responses"
	"foundry-agent-toolkit/pkg/search"
)

// app carries the shared wiring every subcommand builds on.
type app struct {
	cfg    *config.Config
	logger log.Logger
	tokens identity.TokenProvider
}

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		OTLPEndpoint:     cfg.Telemetry.OTLPEndpoint,
		Debug:            cfg.Telemetry.Debug,
		ContentRecording: cfg.Telemetry.ContentRecording,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to set up telemetry: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warnf(context.Background(), "Telemetry shutdown: %v", err)
		}
	}()

	// 4. Identity
	tokens, err := identity.FromSettings(
		cfg.Identity.StaticToken,
		cfg.Identity.TenantID,
		cfg.Identity.ClientID,
		cfg.Identity.ClientSecret,
	)
	if err != nil {
		logger.Errorf(ctx, "Failed to configure credentials: %v", err)
		os.Exit(1)
	}

	a := &app{cfg: cfg, logger: logger, tokens: tokens}

	root := &cobra.Command{
		Use:           "foundryctl",
		Short:         "Provision and talk to AI Foundry agents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(a.newSetupCmd(), a.newCallCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) controlPlane() (*foundry.Client, error) {
	if err := a.cfg.RequireProject(); err != nil {
		return nil, err
	}
	var opts []foundry.Option
	if v := a.cfg.Project.APIVersion; v != "" {
		opts = append(opts, foundry.WithAPIVersion(v))
	}
	return foundry.NewClient(a.cfg.Project.Endpoint, a.tokens, opts...)
}

func (a *app) invoker() (*responses.Client, error) {
	if err := a.cfg.RequireProject(); err != nil {
		return nil, err
	}
	return responses.NewClient(a.cfg.Project.Endpoint, a.tokens)
}

func (a *app) searchAdmin() (*search.Client, error) {
	if err := a.cfg.RequireSearch(); err != nil {
		return nil, err
	}
	c, err := search.NewClient(a.cfg.Search.Endpoint, a.cfg.Search.APIKey, a.tokens)
	if err != nil {
		return nil, err
	}
	if v := a.cfg.Search.APIVersion; v != "" {
		c = c.WithAPIVersion(v)
	}
	return c, nil
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/internal/gateway"
	"github.com/nebenzu/skillsafe/internal/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local analysis API and skill watcher",
	Long: `Starts the skillsafe daemon:
  - POST /api/analyze  analyzes a skill and returns the report
  - GET  /api/health   daemon status
  - GET  /api/watch    latest scores for watched skills

Skills listed under watch.skills in the config are re-analysed on the
watch.expr cron schedule; alerts go to the configured notify channels.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	providers := make(map[string]provider.MetadataProvider)
	gh, err := provider.New("github", cfg)
	if err != nil {
		return fmt.Errorf("configuring GitHub provider: %w", err)
	}
	providers["github"] = gh

	if len(cfg.Git.GitLab) > 0 {
		gl, err := provider.New("gitlab", cfg)
		if err != nil {
			return fmt.Errorf("configuring GitLab provider: %w", err)
		}
		providers["gitlab"] = gl
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting skillsafe gateway", "port", cfg.Gateway.Port)
	return gateway.New(cfg, providers).Start(ctx)
}

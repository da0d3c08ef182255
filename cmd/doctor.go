package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/internal/provider"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify configuration and provider access",
	Long: `Checks that the config loads, that each configured provider is
reachable, and reports whether requests run authenticated or anonymous.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path, _ := config.Path(cfgFile)
	fmt.Printf("Config:   %s\n", path)
	fmt.Printf("Doc file: %s\n\n", cfg.Analyze.DocFile)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// GitHub is always available, with or without a token.
	ghAuth := "anonymous (60 req/h)"
	if len(cfg.Git.GitHub) > 0 && cfg.Git.GitHub[0].Token != "" {
		ghAuth = "token configured"
	}
	fmt.Printf("[github] %s\n", ghAuth)
	checkProvider(ctx, cfg, "github")

	if len(cfg.Git.GitLab) > 0 {
		fmt.Printf("[gitlab] token configured\n")
		checkProvider(ctx, cfg, "gitlab")
	} else {
		fmt.Printf("[gitlab] not configured (optional)\n")
	}

	return nil
}

// checkProvider fetches a well-known public repository to prove API access.
func checkProvider(ctx context.Context, cfg *config.Config, name string) {
	p, err := provider.New(name, cfg)
	if err != nil {
		fmt.Printf("         FAIL: %v\n", err)
		return
	}

	owner, repo := "octocat", "Hello-World"
	if name == "gitlab" {
		owner, repo = "gitlab-org", "gitlab"
	}

	meta, err := p.GetRepository(ctx, owner, repo)
	if err != nil {
		fmt.Printf("         FAIL: %v\n", err)
		return
	}
	fmt.Printf("         OK: reached API (%s/%s has %d stars)\n", owner, repo, meta.StarCount)
}

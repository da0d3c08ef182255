package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nebenzu/skillsafe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the skillsafe configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (tokens redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		for i := range cfg.Git.GitHub {
			cfg.Git.GitHub[i].Token = redact(cfg.Git.GitHub[i].Token)
		}
		for i := range cfg.Git.GitLab {
			cfg.Git.GitLab[i].Token = redact(cfg.Git.GitLab[i].Token)
		}
		cfg.Notify.Webhook.Secret = redact(cfg.Notify.Webhook.Secret)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path(cfgFile)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

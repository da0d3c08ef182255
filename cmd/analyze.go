package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/nebenzu/skillsafe/internal/analyzer"
	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/internal/locator"
	"github.com/nebenzu/skillsafe/internal/provider"
	"github.com/nebenzu/skillsafe/internal/tui"
)

var (
	analyzeOutputFmt   string
	analyzeProvider    string
	analyzeDocFile     string
	analyzeInteractive bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <locator>",
	Short: "Analyze a skill repository and print its trust report",
	Long: `Resolves the locator, fetches repository and author metadata plus the
skill's documentation, and prints the trust report.

Accepted locator forms:
  https://github.com/owner/repo
  https://clawhub.com/skills/owner/repo
  owner/repo

Examples:
  skillsafe analyze example/weather-skill
  skillsafe analyze https://github.com/example/weather-skill --output json
  skillsafe analyze example/weather-skill --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutputFmt, "output", "o", "table", "Output format: table|json|yaml")
	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "", "Hosting provider: github|gitlab (default: detected from locator)")
	analyzeCmd.Flags().StringVar(&analyzeDocFile, "doc", "", "Documentation file to scan (default: SKILL.md)")
	analyzeCmd.Flags().BoolVarP(&analyzeInteractive, "interactive", "i", false, "Browse the report interactively")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rawLocator := args[0]

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if analyzeDocFile != "" {
		cfg.Analyze.DocFile = analyzeDocFile
	}

	loc, err := locator.Parse(rawLocator)
	if err != nil {
		return err
	}

	var p provider.MetadataProvider
	if analyzeProvider != "" {
		p, err = provider.New(analyzeProvider, cfg)
	} else {
		p, err = provider.ForHost(loc.Host, cfg)
	}
	if err != nil {
		return err
	}

	slog.Debug("Starting analysis", "skill", loc.String(), "provider", p.Name(), "doc", cfg.Analyze.DocFile)

	a := analyzer.New(p, analyzer.WithDocFile(cfg.Analyze.DocFile))
	report, err := a.Analyze(ctx, rawLocator)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", loc.String(), err)
	}

	if analyzeInteractive {
		return tui.NewApp(report).Run()
	}

	switch analyzeOutputFmt {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(report)
	default:
		fmt.Println(tui.RenderReport(report))
		return nil
	}
}

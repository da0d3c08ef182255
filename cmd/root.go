package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "skillsafe",
	Short: "Trust analysis for third-party skills before you install them",
	Long: `skillsafe inspects a skill repository before you run its code: it scans
the skill's documentation for dangerous patterns, infers the system
capabilities it requires, weighs the author's reputation, and produces
a 0-100 trust score with a plain-language summary.

Get started:
  skillsafe onboard              Interactive setup wizard
  skillsafe analyze owner/repo   Analyze a skill
  skillsafe serve                Start the local API daemon with skill watcher
  skillsafe doctor               Verify configuration and provider access`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.skillsafe/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		analyzeCmd,
		serveCmd,
		onboardCmd,
		configCmd,
		doctorCmd,
	)
}

func initLogging() {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nebenzu/skillsafe/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Interactive setup wizard for skillsafe",
	Long: `Walks you through configuring skillsafe:
  - GitHub credentials (optional, anonymous access works with low rate limits)
  - GitLab credentials (optional)
  - Gateway port and watched skills

Tokens only need read access; skillsafe never writes to repositories.`,
	RunE: runOnboard,
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#14B8A6")).
	MarginBottom(1)

var onboardDimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6B7280"))

func runOnboard(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println(headerStyle.Render("  skillsafe · trust analysis for third-party skills"))
	fmt.Println(onboardDimStyle.Render("  Know what a skill can do to your system before you install it.\n"))

	// Load existing config or start fresh.
	cfg, err := config.Load(cfgFile)
	if err != nil {
		cfg = &config.Config{}
	}

	// --- Step 1: GitHub ---
	fmt.Println(headerStyle.Render("  Step 1/3 · GitHub"))
	fmt.Println(onboardDimStyle.Render("  A token raises the API rate limit from 60 to 5000 requests/hour."))
	fmt.Println(onboardDimStyle.Render("  Leave blank to analyze public skills anonymously.\n"))

	var githubToken, githubHost string
	if len(cfg.Git.GitHub) > 0 {
		githubToken = cfg.Git.GitHub[0].Token
		githubHost = cfg.Git.GitHub[0].Host
	}
	if githubHost == "" {
		githubHost = "github.com"
	}

	ghForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub Personal Access Token (optional)").
				Description("Create a classic token at https://github.com/settings/tokens/new with read-only scopes.").
				Placeholder("ghp_...  (optional)").
				EchoMode(huh.EchoModePassword).
				Value(&githubToken),
			huh.NewInput().
				Title("GitHub host").
				Description("Use 'github.com' for public GitHub or your enterprise hostname").
				Value(&githubHost),
		),
	)
	if err := ghForm.Run(); err != nil {
		return err
	}
	cfg.Git.GitHub = []config.GitHubConfig{{Token: githubToken, Host: githubHost}}

	// --- Step 2: GitLab (optional) ---
	fmt.Println(headerStyle.Render("  Step 2/3 · GitLab (optional)"))

	var useGitLab bool
	if len(cfg.Git.GitLab) > 0 {
		useGitLab = true
	}
	if err := huh.NewConfirm().
		Title("Analyze skills hosted on GitLab too?").
		Value(&useGitLab).
		Run(); err != nil {
		return err
	}

	if useGitLab {
		var gitlabToken, gitlabHost string
		if len(cfg.Git.GitLab) > 0 {
			gitlabToken = cfg.Git.GitLab[0].Token
			gitlabHost = cfg.Git.GitLab[0].Host
		}
		if gitlabHost == "" {
			gitlabHost = "gitlab.com"
		}
		glForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("GitLab Personal Access Token").
					Description("Create one under Preferences → Access Tokens with read_api scope.").
					Placeholder("glpat-...").
					EchoMode(huh.EchoModePassword).
					Value(&gitlabToken),
				huh.NewInput().
					Title("GitLab host").
					Value(&gitlabHost),
			),
		)
		if err := glForm.Run(); err != nil {
			return err
		}
		cfg.Git.GitLab = []config.GitLabConfig{{Token: gitlabToken, Host: gitlabHost}}
	} else {
		cfg.Git.GitLab = nil
	}

	// --- Step 3: Gateway & watchlist ---
	fmt.Println(headerStyle.Render("  Step 3/3 · Gateway"))

	port := cfg.Gateway.Port
	if port == 0 {
		port = 6810
	}
	portStr := strconv.Itoa(port)
	watchlist := strings.Join(cfg.Watch.Skills, ", ")

	gwForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gateway port").
				Description("Local port for 'skillsafe serve'").
				Value(&portStr).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("port must be a number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Watched skills (optional)").
				Description("Comma-separated owner/repo locators re-analysed on a schedule").
				Placeholder("example/weather-skill, example/mail-skill").
				Value(&watchlist),
		),
	)
	if err := gwForm.Run(); err != nil {
		return err
	}

	cfg.Gateway.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))
	cfg.Watch.Skills = nil
	for _, s := range strings.Split(watchlist, ",") {
		if s = strings.TrimSpace(s); s != "" {
			cfg.Watch.Skills = append(cfg.Watch.Skills, s)
		}
	}

	if err := config.Save(cfg, cfgFile); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	path, _ := config.Path(cfgFile)
	fmt.Println()
	fmt.Println(onboardDimStyle.Render("  Config written to " + path))
	fmt.Println("  Try: skillsafe analyze owner/repo")
	return nil
}

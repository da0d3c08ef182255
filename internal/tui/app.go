package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nebenzu/skillsafe/internal/scoring"
	"github.com/nebenzu/skillsafe/models"
)

// Tab represents a report browser tab.
type Tab int

const (
	TabOverview Tab = iota
	TabThreats
	TabCapabilities
)

var tabNames = []string{"Overview", "Threats", "Capabilities"}

// App is the interactive report browser.
type App struct {
	report    *models.AnalysisReport
	width     int
	activeTab Tab
}

// NewApp creates a report browser for the given report.
func NewApp(report *models.AnalysisReport) *App {
	return &App{report: report}
}

// Run starts the bubbletea program.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "1":
			a.activeTab = TabOverview
		case "2":
			a.activeTab = TabThreats
		case "3":
			a.activeTab = TabCapabilities
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % Tab(len(tabNames))
		case "shift+tab", "left", "h":
			a.activeTab--
			if a.activeTab < 0 {
				a.activeTab = Tab(len(tabNames) - 1)
			}
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("skillsafe · %s/%s", a.report.Owner, a.report.Repo)))
	b.WriteString("\n\n")

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == a.activeTab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch a.activeTab {
	case TabThreats:
		b.WriteString(a.viewThreats())
	case TabCapabilities:
		b.WriteString(a.viewCapabilities())
	default:
		b.WriteString(a.viewOverview())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab/1-3 switch · q quit"))
	return b.String()
}

func (a *App) viewOverview() string {
	r := a.report
	rating := scoring.Rating(r.TrustScore)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		labelStyle.Render("Trust score:"),
		ratingStyle(rating).Render(fmt.Sprintf("%d/100", r.TrustScore)),
		dimStyle.Render("("+rating+")"),
	))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Summary:"), r.Summary))
	b.WriteString(fmt.Sprintf("%s %d threats, %d capabilities\n",
		labelStyle.Render("Findings:"), len(r.Threats), len(r.Capabilities)))
	b.WriteString(fmt.Sprintf("%s %s, account age %d days, %d repos, %d followers\n",
		labelStyle.Render("Author:"),
		r.Author.Username, r.Author.AccountAgeDays, r.Author.TotalRepos, r.Author.Followers))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Analyzed:"), r.AnalyzedAt.Format("2006-01-02 15:04:05")))
	return b.String()
}

func (a *App) viewThreats() string {
	if len(a.report.Threats) == 0 {
		return dimStyle.Render("No threats detected.") + "\n"
	}
	var b strings.Builder
	for _, t := range a.report.Threats {
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			severityStyle(t.Severity).Render(strings.ToUpper(t.Severity.String())),
			t.Category,
			dimStyle.Render(t.Description),
		))
	}
	return b.String()
}

func (a *App) viewCapabilities() string {
	if len(a.report.Capabilities) == 0 {
		return dimStyle.Render("No capabilities detected.") + "\n"
	}
	var b strings.Builder
	for _, c := range a.report.Capabilities {
		b.WriteString("- " + c + "\n")
	}
	return b.String()
}

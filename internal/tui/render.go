// Package tui renders analysis reports for the terminal, either as a
// static styled block or an interactive browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nebenzu/skillsafe/internal/scoring"
	"github.com/nebenzu/skillsafe/models"
)

// RenderReport formats a report as a styled block for plain CLI output.
func RenderReport(r *models.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s/%s", r.Owner, r.Repo)))
	b.WriteString("\n\n")

	rating := scoring.Rating(r.TrustScore)
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		labelStyle.Render("Trust score:"),
		ratingStyle(rating).Render(fmt.Sprintf("%d/100", r.TrustScore)),
		dimStyle.Render("("+rating+")"),
	))
	b.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render("Summary:"), r.Summary))

	b.WriteString(sectionStyle.Render("Threats"))
	b.WriteString("\n")
	if len(r.Threats) == 0 {
		b.WriteString(dimStyle.Render("  none detected") + "\n")
	}
	for _, t := range r.Threats {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			severityStyle(t.Severity).Render(strings.ToUpper(t.Severity.String())),
			t.Category,
			dimStyle.Render(t.Description),
		))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Capabilities"))
	b.WriteString("\n")
	if len(r.Capabilities) == 0 {
		b.WriteString(dimStyle.Render("  none detected") + "\n")
	}
	for _, c := range r.Capabilities {
		b.WriteString("  - " + c + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Author"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s, account age %d days, %d repos, %d followers\n",
		r.Author.Username, r.Author.AccountAgeDays, r.Author.TotalRepos, r.Author.Followers))

	return b.String()
}

func ratingStyle(rating string) lipgloss.Style {
	switch rating {
	case "safe":
		return safeStyle
	case "caution":
		return cautionStyle
	default:
		return riskyStyle
	}
}

func severityStyle(s models.Severity) lipgloss.Style {
	switch s {
	case models.SeverityCritical:
		return criticalStyle
	case models.SeverityHigh:
		return highStyle
	case models.SeverityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}

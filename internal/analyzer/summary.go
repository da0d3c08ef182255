package analyzer

import (
	"fmt"
	"strings"

	"github.com/nebenzu/skillsafe/models"
)

const summaryMaxLen = 200

// Summarize produces the one-line human explanation of a scan. Missing
// documentation and critical/high findings take priority over the
// skill's own description.
func Summarize(content string, threats []models.ThreatFinding) string {
	if content == "" {
		return "This skill has no SKILL.md documentation, making it impossible to verify its purpose."
	}

	critical, high := 0, 0
	for _, t := range threats {
		switch t.Severity {
		case models.SeverityCritical:
			critical++
		case models.SeverityHigh:
			high++
		}
	}

	if critical > 0 {
		return fmt.Sprintf("⚠️ DANGER: This skill contains %d critical security issue(s). Do not install without thorough review.", critical)
	}
	if high > 0 {
		return fmt.Sprintf("⚠️ WARNING: This skill contains %d high-severity concern(s). Review carefully before installing.", high)
	}

	return firstParagraph(content)
}

// firstParagraph extracts the text up to the first blank line, drops a
// single leading heading line, and truncates to summaryMaxLen runes.
func firstParagraph(content string) string {
	para, _, _ := strings.Cut(content, "\n\n")
	if strings.HasPrefix(para, "#") {
		if _, rest, found := strings.Cut(para, "\n"); found {
			para = rest
		}
	}
	para = strings.TrimSpace(para)

	runes := []rune(para)
	if len(runes) > summaryMaxLen {
		return string(runes[:summaryMaxLen]) + "..."
	}
	return para
}

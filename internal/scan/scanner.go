// Package scan applies the signature catalogs to skill documentation.
package scan

import (
	"strings"

	"github.com/nebenzu/skillsafe/internal/catalog"
	"github.com/nebenzu/skillsafe/models"
)

// Documentation shorter than this is flagged as missing/minimal.
const minDocLength = 50

// Result holds everything the scanner extracted from one content blob.
type Result struct {
	Threats []models.ThreatFinding
	// Capabilities is duplicate-free and follows catalog order.
	Capabilities []string
}

// Scan tests every threat and permission rule against content, then runs
// two structural checks that are independent of the catalogs. A catalog
// rule contributes at most one finding no matter how often its pattern
// occurs. Pure function of its input.
func Scan(content string) Result {
	var res Result

	for _, rule := range catalog.Threats() {
		if rule.Pattern.MatchString(content) {
			res.Threats = append(res.Threats, models.ThreatFinding{
				Severity:    rule.Severity,
				Category:    rule.Category,
				Description: rule.Description,
			})
		}
	}

	if len(content) < minDocLength {
		res.Threats = append(res.Threats, models.ThreatFinding{
			Severity:    models.SeverityHigh,
			Category:    "missing_docs",
			Description: "Missing or minimal SKILL.md documentation",
		})
	}

	if content != "" && !strings.Contains(content, "##") {
		res.Threats = append(res.Threats, models.ThreatFinding{
			Severity:    models.SeverityMedium,
			Category:    "poor_structure",
			Description: "SKILL.md lacks proper structure/sections",
		})
	}

	seen := make(map[string]struct{})
	for _, rule := range catalog.Permissions() {
		if !rule.Pattern.MatchString(content) {
			continue
		}
		if _, ok := seen[rule.Capability]; ok {
			continue
		}
		seen[rule.Capability] = struct{}{}
		res.Capabilities = append(res.Capabilities, rule.Capability)
	}

	return res
}

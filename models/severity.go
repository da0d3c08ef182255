package models

// Severity represents the severity of a threat finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityUnknown  Severity = "unknown"
)

// Weight returns a numeric weight for sorting (higher = more severe).
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity normalises free-form severity strings to Severity.
func ParseSeverity(raw string) Severity {
	switch raw {
	case "critical", "CRITICAL":
		return SeverityCritical
	case "high", "HIGH", "error", "ERROR":
		return SeverityHigh
	case "medium", "MEDIUM", "moderate", "MODERATE", "warning", "WARNING":
		return SeverityMedium
	case "low", "LOW", "info", "INFO":
		return SeverityLow
	default:
		return SeverityUnknown
	}
}

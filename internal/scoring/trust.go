// Package scoring quantifies install-safety as a bounded trust score.
package scoring

import "github.com/nebenzu/skillsafe/models"

// Factors are the inputs to the trust score. All contributions are
// independent and additive; none short-circuits another.
type Factors struct {
	AuthorAgeDays     int
	RepoStars         int
	RepoForks         int
	HasContent        bool
	ContentLength     int
	Threats           []models.ThreatFinding
	AuthorFollowers   int
	AuthorPublicRepos int
}

// Severity penalties applied per finding. Multiple findings of the same
// severity stack.
var threatPenalty = map[models.Severity]int{
	models.SeverityCritical: 30,
	models.SeverityHigh:     15,
	models.SeverityMedium:   5,
	models.SeverityLow:      2,
}

// Score computes the trust score from a neutral baseline of 50,
// saturating at 0 and 100. Deterministic and side-effect free; the rest
// of the system treats its output as the single source of "trust".
func Score(f Factors) int {
	score := 50

	// Author account age (max +10).
	switch {
	case f.AuthorAgeDays > 365:
		score += 10
	case f.AuthorAgeDays > 180:
		score += 5
	case f.AuthorAgeDays < 30:
		score -= 15
	}

	// Repo popularity (max +15). Stars and forks bonuses both apply.
	if f.RepoStars > 100 {
		score += 10
	} else if f.RepoStars > 10 {
		score += 5
	}
	if f.RepoForks > 20 {
		score += 5
	}

	// Documentation (max +15).
	switch {
	case f.HasContent && f.ContentLength > 500:
		score += 15
	case f.HasContent && f.ContentLength > 200:
		score += 10
	case !f.HasContent:
		score -= 20
	}

	// Author reputation (max +10).
	if f.AuthorFollowers > 100 {
		score += 5
	}
	if f.AuthorPublicRepos > 20 {
		score += 5
	}

	for _, t := range f.Threats {
		score -= threatPenalty[t.Severity]
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Rating buckets a score for presentation. The engine itself never
// branches on these thresholds.
func Rating(score int) string {
	switch {
	case score >= 70:
		return "safe"
	case score >= 40:
		return "caution"
	default:
		return "risky"
	}
}

package models

import "time"

// ThreatFinding is a single detected risk indicator tied to a catalog rule.
type ThreatFinding struct {
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Line        int      `json:"line,omitempty"`
}

// AuthorInfo summarises the reputation signals of a skill's author.
type AuthorInfo struct {
	Username       string `json:"username"`
	AccountAgeDays int    `json:"accountAgeDays"`
	TotalRepos     int    `json:"totalRepos"`
	TotalSkills    int    `json:"totalSkills"`
	Followers      int    `json:"followers"`
}

// RepoMetadata is the repository information supplied by a hosting provider.
type RepoMetadata struct {
	StarCount int `json:"starCount"`
	ForkCount int `json:"forkCount"`
}

// UserMetadata is the account information supplied by a hosting provider.
type UserMetadata struct {
	AccountCreatedAt time.Time `json:"accountCreatedAt"`
	PublicRepoCount  int       `json:"publicRepoCount"`
	FollowerCount    int       `json:"followerCount"`
}

// AnalysisReport is the terminal artifact of a skill analysis. It is
// constructed once per analysis and never mutated afterwards.
type AnalysisReport struct {
	Locator      string          `json:"locator"`
	Owner        string          `json:"owner"`
	Repo         string          `json:"repo"`
	TrustScore   int             `json:"trustScore"`
	Summary      string          `json:"summary"`
	Capabilities []string        `json:"capabilities"`
	Threats      []ThreatFinding `json:"threats"`
	Author       AuthorInfo      `json:"author"`
	RawContent   string          `json:"rawContent"`
	AnalyzedAt   time.Time       `json:"analyzedAt"`
}

// CountBySeverity returns how many threat findings carry the given severity.
func (r *AnalysisReport) CountBySeverity(s Severity) int {
	n := 0
	for _, t := range r.Threats {
		if t.Severity == s {
			n++
		}
	}
	return n
}

// Package notify fans skill alerts out to configured channels.
package notify

import "context"

// Event represents a watcher alert about an analysed skill.
type Event struct {
	Type     string // "skill_risky" | "score_dropped"
	Title    string
	Body     string
	Skill    string // "owner/repo"
	Score    int
	Severity string // "critical" | "high" | "medium" | "low" | ""
}

// Channel is implemented by each notification provider.
type Channel interface {
	Name() string
	IsConfigured() bool
	Send(ctx context.Context, evt Event) error
}

package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/nebenzu/skillsafe/internal/analyzer"
	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/internal/locator"
	"github.com/nebenzu/skillsafe/internal/notify"
	"github.com/nebenzu/skillsafe/internal/scoring"
	"github.com/nebenzu/skillsafe/models"
)

// Watcher re-analyses the configured skills on a cron schedule, keeping
// only the latest report per skill in memory. It alerts when a skill
// turns risky or its trust score drops between runs.
type Watcher struct {
	cfg        *config.Config
	analyzerFn func(locator.Locator) (*analyzer.Analyzer, error)
	dispatcher *notify.Dispatcher
	cron       *cron.Cron

	mu      sync.RWMutex
	reports map[string]*models.AnalysisReport // locator → latest report
}

func newWatcher(cfg *config.Config, analyzerFn func(locator.Locator) (*analyzer.Analyzer, error), dispatcher *notify.Dispatcher) *Watcher {
	return &Watcher{
		cfg:        cfg,
		analyzerFn: analyzerFn,
		dispatcher: dispatcher,
		cron:       cron.New(),
		reports:    make(map[string]*models.AnalysisReport),
	}
}

// Start registers the watch schedule and starts the cron runner. A
// gateway with no watched skills starts nothing and is valid.
func (w *Watcher) Start(ctx context.Context) error {
	if len(w.cfg.Watch.Skills) == 0 {
		return nil
	}

	expr := w.cfg.Watch.Expr
	if expr == "" {
		expr = "@hourly"
	}
	if _, err := w.cron.AddFunc(expr, func() { w.sweep(ctx) }); err != nil {
		return fmt.Errorf("invalid watch cron expression %q: %w", expr, err)
	}

	w.cron.Start()
	slog.Info("skill watcher started", "skills", len(w.cfg.Watch.Skills), "expr", expr)
	return nil
}

// Stop halts the cron runner gracefully.
func (w *Watcher) Stop() { w.cron.Stop() }

// LastReport returns the most recent report for the given locator, or
// nil when the skill has not been analysed yet.
func (w *Watcher) LastReport(rawLocator string) *models.AnalysisReport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.reports[rawLocator]
}

// sweep re-analyses every watched skill once.
func (w *Watcher) sweep(ctx context.Context) {
	for _, raw := range w.cfg.Watch.Skills {
		if ctx.Err() != nil {
			return
		}
		if err := w.analyzeOne(ctx, raw); err != nil {
			slog.Warn("watcher: skill analysis failed", "skill", raw, "error", err)
		}
	}
}

func (w *Watcher) analyzeOne(ctx context.Context, raw string) error {
	loc, err := locator.Parse(raw)
	if err != nil {
		return err
	}
	a, err := w.analyzerFn(loc)
	if err != nil {
		return err
	}
	report, err := a.Analyze(ctx, raw)
	if err != nil {
		return err
	}

	w.mu.Lock()
	prev := w.reports[raw]
	w.reports[raw] = report
	w.mu.Unlock()

	slog.Info("watcher: skill analysed",
		"skill", loc.String(),
		"score", report.TrustScore,
		"rating", scoring.Rating(report.TrustScore),
		"threats", len(report.Threats),
	)

	w.alert(ctx, loc, prev, report)
	return nil
}

// alert dispatches notifications for newly risky skills and score drops.
func (w *Watcher) alert(ctx context.Context, loc locator.Locator, prev, cur *models.AnalysisReport) {
	if !w.dispatcher.IsAnyConfigured() {
		return
	}

	severity := ""
	if cur.CountBySeverity(models.SeverityCritical) > 0 {
		severity = "critical"
	} else if cur.CountBySeverity(models.SeverityHigh) > 0 {
		severity = "high"
	}

	if scoring.Rating(cur.TrustScore) == "risky" && (prev == nil || scoring.Rating(prev.TrustScore) != "risky") {
		w.dispatcher.Notify(ctx, notify.Event{
			Type:     "skill_risky",
			Title:    fmt.Sprintf("Skill %s is rated risky (score %d)", loc.String(), cur.TrustScore),
			Body:     cur.Summary,
			Skill:    loc.String(),
			Score:    cur.TrustScore,
			Severity: severity,
		})
		return
	}

	if prev != nil && cur.TrustScore < prev.TrustScore {
		w.dispatcher.Notify(ctx, notify.Event{
			Type:     "score_dropped",
			Title:    fmt.Sprintf("Skill %s trust score dropped from %d to %d", loc.String(), prev.TrustScore, cur.TrustScore),
			Body:     cur.Summary,
			Skill:    loc.String(),
			Score:    cur.TrustScore,
			Severity: severity,
		})
	}
}

package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nebenzu/skillsafe/internal/locator"
	"github.com/nebenzu/skillsafe/internal/provider"
	"github.com/nebenzu/skillsafe/internal/scoring"
)

func buildHandler(gw *Gateway) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", gw.handleHealth)
	mux.HandleFunc("POST /api/analyze", gw.handleAnalyze)
	mux.HandleFunc("GET /api/watch", gw.handleWatchStatus)

	return mux
}

func (gw *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(gw.providers))
	for name := range gw.providers {
		names = append(names, name)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(gw.startedAt).Round(time.Second).String(),
		"providers": names,
	})
}

type analyzeRequest struct {
	URL string `json:"url"`
}

func (gw *Gateway) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	loc, err := locator.Parse(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := gw.analyzerFor(loc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	report, err := a.Analyze(r.Context(), req.URL)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, report)
	case errors.Is(err, provider.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusBadGateway, "failed to analyze skill")
	}
}

// watchEntry is the API view of one watched skill.
type watchEntry struct {
	Locator    string     `json:"locator"`
	TrustScore int        `json:"trustScore"`
	Rating     string     `json:"rating"`
	AnalyzedAt *time.Time `json:"analyzedAt,omitempty"`
}

func (gw *Gateway) handleWatchStatus(w http.ResponseWriter, r *http.Request) {
	entries := make([]watchEntry, 0, len(gw.cfg.Watch.Skills))
	for _, skill := range gw.cfg.Watch.Skills {
		entry := watchEntry{Locator: skill}
		if report := gw.watcher.LastReport(skill); report != nil {
			entry.TrustScore = report.TrustScore
			entry.Rating = scoring.Rating(report.TrustScore)
			at := report.AnalyzedAt
			entry.AnalyzedAt = &at
		}
		entries = append(entries, entry)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expr":   gw.cfg.Watch.Expr,
		"skills": entries,
	})
}

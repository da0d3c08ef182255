// Package gateway exposes the analysis engine over a local HTTP API and
// runs the periodic skill watcher.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nebenzu/skillsafe/internal/analyzer"
	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/internal/locator"
	"github.com/nebenzu/skillsafe/internal/notify"
	"github.com/nebenzu/skillsafe/internal/provider"
)

// Gateway is the long-running daemon that combines:
//   - the analysis engine behind POST /api/analyze
//   - a cron Watcher re-analysing configured skills
type Gateway struct {
	cfg       *config.Config
	providers map[string]provider.MetadataProvider
	watcher   *Watcher
	startedAt time.Time
}

// New creates a Gateway. Call Start() to begin serving.
func New(cfg *config.Config, providers map[string]provider.MetadataProvider) *Gateway {
	gw := &Gateway{
		cfg:       cfg,
		providers: providers,
		startedAt: time.Now(),
	}
	gw.watcher = newWatcher(cfg, gw.analyzerFor, notify.NewDispatcher(cfg.Notify))
	return gw
}

// analyzerFor builds an Analyzer for the provider matching loc's host.
func (gw *Gateway) analyzerFor(loc locator.Locator) (*analyzer.Analyzer, error) {
	name := gw.cfg.Analyze.Provider
	switch {
	case loc.Host == "":
	case loc.Host == "gitlab.com":
		name = "gitlab"
	default:
		name = "github"
	}
	p, ok := gw.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", name)
	}
	return analyzer.New(p, analyzer.WithDocFile(gw.cfg.Analyze.DocFile)), nil
}

// Start runs the gateway until ctx is cancelled. It starts the watcher
// and binds the HTTP server, blocking until shutdown.
func (gw *Gateway) Start(ctx context.Context) error {
	port := gw.cfg.Gateway.Port
	if port == 0 {
		port = 6810
	}
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	if err := gw.watcher.Start(ctx); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: buildHandler(gw),
	}

	go func() {
		<-ctx.Done()
		gw.watcher.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("gateway listening", "addr", addr, "watched_skills", len(gw.cfg.Watch.Skills))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("gateway server: %w", err)
	}
	return nil
}

// Package analyzer is the skill analysis engine: it resolves a locator,
// gathers repository, author, and documentation data through a
// MetadataProvider, and produces an AnalysisReport.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nebenzu/skillsafe/internal/locator"
	"github.com/nebenzu/skillsafe/internal/provider"
	"github.com/nebenzu/skillsafe/internal/scan"
	"github.com/nebenzu/skillsafe/internal/scoring"
	"github.com/nebenzu/skillsafe/models"
)

// Analyzer runs skill analyses against a single metadata provider.
// It holds no mutable state: concurrent Analyze calls are independent.
type Analyzer struct {
	provider provider.MetadataProvider
	docFile  string
	now      func() time.Time
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithDocFile overrides the documentation file fetched from the
// repository root (default: SKILL.md).
func WithDocFile(path string) Option {
	return func(a *Analyzer) {
		if path != "" {
			a.docFile = path
		}
	}
}

// WithClock overrides the time source; used by tests to pin analyzedAt
// and account ages.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New creates an Analyzer backed by p.
func New(p provider.MetadataProvider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: p,
		docFile:  "SKILL.md",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze resolves rawLocator and produces a full report. It fails with
// locator.ErrInvalidLocator on unparseable input and propagates
// repository/author fetch failures; a missing documentation file is not
// an error, absence itself becomes a scored red flag.
func (a *Analyzer) Analyze(ctx context.Context, rawLocator string) (*models.AnalysisReport, error) {
	loc, err := locator.Parse(rawLocator)
	if err != nil {
		return nil, err
	}

	slog.Debug("analyzing skill", "owner", loc.Owner, "repo", loc.Repo, "provider", a.provider.Name())

	// The three fetches are independent; join before scoring.
	var (
		wg      sync.WaitGroup
		repo    *models.RepoMetadata
		user    *models.UserMetadata
		content string

		repoErr, userErr, contentErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		repo, repoErr = a.provider.GetRepository(ctx, loc.Owner, loc.Repo)
	}()
	go func() {
		defer wg.Done()
		user, userErr = a.provider.GetUser(ctx, loc.Owner)
	}()
	go func() {
		defer wg.Done()
		content, contentErr = a.provider.GetFileContent(ctx, loc.Owner, loc.Repo, a.docFile)
	}()
	wg.Wait()

	if repoErr != nil {
		return nil, fmt.Errorf("fetching repository metadata: %w", repoErr)
	}
	if userErr != nil {
		return nil, fmt.Errorf("fetching author metadata: %w", userErr)
	}
	if contentErr != nil {
		if !errors.Is(contentErr, provider.ErrNotFound) {
			return nil, fmt.Errorf("fetching documentation: %w", contentErr)
		}
		// No documentation file; scored as a red flag downstream.
		content = ""
		slog.Debug("documentation file missing", "skill", loc.String(), "file", a.docFile)
	}

	authorAge := int(a.now().Sub(user.AccountCreatedAt).Hours() / 24)
	if authorAge < 0 {
		authorAge = 0
	}

	result := scan.Scan(content)

	score := scoring.Score(scoring.Factors{
		AuthorAgeDays:     authorAge,
		RepoStars:         repo.StarCount,
		RepoForks:         repo.ForkCount,
		HasContent:        len(content) > 0,
		ContentLength:     len(content),
		Threats:           result.Threats,
		AuthorFollowers:   user.FollowerCount,
		AuthorPublicRepos: user.PublicRepoCount,
	})

	return &models.AnalysisReport{
		Locator:      rawLocator,
		Owner:        loc.Owner,
		Repo:         loc.Repo,
		TrustScore:   score,
		Summary:      Summarize(content, result.Threats),
		Capabilities: result.Capabilities,
		Threats:      result.Threats,
		Author: models.AuthorInfo{
			Username:       loc.Owner,
			AccountAgeDays: authorAge,
			TotalRepos:     user.PublicRepoCount,
			// Counting true skills would mean scanning every repo the
			// author owns; reported as zero.
			TotalSkills: 0,
			Followers:   user.FollowerCount,
		},
		RawContent: content,
		AnalyzedAt: a.now(),
	}, nil
}

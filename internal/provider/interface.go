// Package provider abstracts the hosting platforms that supply
// repository metadata, author metadata, and raw documentation content.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/models"
)

// ErrNotFound marks a repository, file, or user that does not exist (or
// is not visible with the current credentials). Implementations wrap it
// so callers can distinguish absence from transport failures.
var ErrNotFound = errors.New("not found")

// MetadataProvider abstracts read operations against a Git hosting
// platform. Implementations: GitHub, GitLab.
type MetadataProvider interface {
	// Name identifies the provider (e.g. "github", "gitlab").
	Name() string

	// GetRepository returns star/fork metadata for owner/repo.
	GetRepository(ctx context.Context, owner, repo string) (*models.RepoMetadata, error)

	// GetFileContent returns the decoded content of path at the
	// repository root of the default branch.
	GetFileContent(ctx context.Context, owner, repo, path string) (string, error)

	// GetUser returns account metadata for username.
	GetUser(ctx context.Context, username string) (*models.UserMetadata, error)
}

// New returns the MetadataProvider for the given platform name.
func New(name string, cfg *config.Config) (MetadataProvider, error) {
	switch name {
	case "github", "":
		gh := config.GitHubConfig{}
		if len(cfg.Git.GitHub) > 0 {
			gh = cfg.Git.GitHub[0]
		}
		return NewGitHub(gh)
	case "gitlab":
		if len(cfg.Git.GitLab) == 0 {
			return nil, fmt.Errorf("no GitLab credentials configured; run 'skillsafe onboard'")
		}
		return NewGitLab(cfg.Git.GitLab[0])
	default:
		return nil, fmt.Errorf("unsupported provider %q (supported: github, gitlab)", name)
	}
}

// ForHost maps a locator host to a provider name, falling back to the
// configured default when the locator named no host.
func ForHost(host string, cfg *config.Config) (MetadataProvider, error) {
	switch {
	case strings.Contains(host, "gitlab"):
		return New("gitlab", cfg)
	case strings.Contains(host, "github"):
		return New("github", cfg)
	default:
		return New(cfg.Analyze.Provider, cfg)
	}
}

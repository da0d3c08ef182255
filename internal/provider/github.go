package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/models"
	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// GitHubProvider implements MetadataProvider for GitHub and GitHub
// Enterprise. Without a token it runs unauthenticated, subject to
// GitHub's anonymous rate limits.
type GitHubProvider struct {
	client *gogithub.Client
	host   string
}

// NewGitHub creates a GitHubProvider from the given configuration.
func NewGitHub(cfg config.GitHubConfig) (*GitHubProvider, error) {
	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	client := gogithub.NewClient(httpClient)

	// Support GitHub Enterprise by overriding the base URL.
	if cfg.Host != "" && cfg.Host != "github.com" {
		base := fmt.Sprintf("https://%s/api/v3/", cfg.Host)
		upload := fmt.Sprintf("https://%s/api/uploads/", cfg.Host)
		var err error
		client, err = client.WithEnterpriseURLs(base, upload)
		if err != nil {
			return nil, fmt.Errorf("configuring GitHub enterprise URLs: %w", err)
		}
	}

	return &GitHubProvider{client: client, host: cfg.Host}, nil
}

func (g *GitHubProvider) Name() string { return "github" }

func (g *GitHubProvider) GetRepository(ctx context.Context, owner, repo string) (*models.RepoMetadata, error) {
	r, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if isGitHubNotFound(err) {
			return nil, fmt.Errorf("repository %s/%s: %w", owner, repo, ErrNotFound)
		}
		return nil, fmt.Errorf("getting GitHub repo %s/%s: %w", owner, repo, err)
	}
	return &models.RepoMetadata{
		StarCount: r.GetStargazersCount(),
		ForkCount: r.GetForksCount(),
	}, nil
}

func (g *GitHubProvider) GetFileContent(ctx context.Context, owner, repo, path string) (string, error) {
	file, _, _, err := g.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isGitHubNotFound(err) {
			return "", fmt.Errorf("file %s in %s/%s: %w", path, owner, repo, ErrNotFound)
		}
		return "", fmt.Errorf("getting %s from %s/%s: %w", path, owner, repo, err)
	}
	if file == nil {
		// Path resolved to a directory listing.
		return "", fmt.Errorf("file %s in %s/%s: %w", path, owner, repo, ErrNotFound)
	}
	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding %s from %s/%s: %w", path, owner, repo, err)
	}
	return content, nil
}

func (g *GitHubProvider) GetUser(ctx context.Context, username string) (*models.UserMetadata, error) {
	u, _, err := g.client.Users.Get(ctx, username)
	if err != nil {
		if isGitHubNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("getting GitHub user %s: %w", username, err)
	}
	return &models.UserMetadata{
		AccountCreatedAt: u.GetCreatedAt().Time,
		PublicRepoCount:  u.GetPublicRepos(),
		FollowerCount:    u.GetFollowers(),
	}, nil
}

func isGitHubNotFound(err error) bool {
	var ghErr *gogithub.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}

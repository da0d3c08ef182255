package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nebenzu/skillsafe/internal/config"
	"github.com/nebenzu/skillsafe/models"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// GitLabProvider implements MetadataProvider for GitLab (cloud and
// self-hosted).
type GitLabProvider struct {
	client *gitlab.Client
	host   string
}

// NewGitLab creates a GitLabProvider from the given configuration.
func NewGitLab(cfg config.GitLabConfig) (*GitLabProvider, error) {
	opts := []gitlab.ClientOptionFunc{}
	if cfg.Host != "" && cfg.Host != "gitlab.com" {
		base := fmt.Sprintf("https://%s/api/v4/", cfg.Host)
		opts = append(opts, gitlab.WithBaseURL(base))
	}

	client, err := gitlab.NewClient(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating GitLab client: %w", err)
	}

	return &GitLabProvider{client: client, host: cfg.Host}, nil
}

func (g *GitLabProvider) Name() string { return "gitlab" }

func (g *GitLabProvider) GetRepository(ctx context.Context, owner, repo string) (*models.RepoMetadata, error) {
	nameWithNS := owner + "/" + repo
	proj, resp, err := g.client.Projects.GetProject(nameWithNS, nil, gitlab.WithContext(ctx))
	if err != nil {
		if isGitLabNotFound(resp) {
			return nil, fmt.Errorf("repository %s: %w", nameWithNS, ErrNotFound)
		}
		return nil, fmt.Errorf("getting GitLab project %s: %w", nameWithNS, err)
	}
	return &models.RepoMetadata{
		StarCount: int(proj.StarCount),
		ForkCount: int(proj.ForksCount),
	}, nil
}

func (g *GitLabProvider) GetFileContent(ctx context.Context, owner, repo, path string) (string, error) {
	nameWithNS := owner + "/" + repo
	raw, resp, err := g.client.RepositoryFiles.GetRawFile(nameWithNS, path, &gitlab.GetRawFileOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		if isGitLabNotFound(resp) {
			return "", fmt.Errorf("file %s in %s: %w", path, nameWithNS, ErrNotFound)
		}
		return "", fmt.Errorf("getting %s from %s: %w", path, nameWithNS, err)
	}
	return string(raw), nil
}

func (g *GitLabProvider) GetUser(ctx context.Context, username string) (*models.UserMetadata, error) {
	users, _, err := g.client.Users.ListUsers(&gitlab.ListUsersOptions{Username: &username}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("looking up GitLab user %s: %w", username, err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	u := users[0]

	created := time.Now()
	if u.CreatedAt != nil {
		created = *u.CreatedAt
	}

	// Project count stands in for public repos; GitLab's user object
	// exposes no follower count, so it is reported as zero.
	publicRepos := 0
	if projects, resp, err := g.client.Projects.ListUserProjects(u.ID, &gitlab.ListProjectsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	}, gitlab.WithContext(ctx)); err == nil {
		publicRepos = len(projects)
		if resp != nil && int(resp.TotalItems) > publicRepos {
			publicRepos = int(resp.TotalItems)
		}
	}

	return &models.UserMetadata{
		AccountCreatedAt: created,
		PublicRepoCount:  publicRepos,
		FollowerCount:    0,
	}, nil
}

func isGitLabNotFound(resp *gitlab.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

package github

import (
	"context"
	"fmt"
	"os"

	"github.com/mlanglet/coretrack/pkg/httputil"
)

// Client provides access to the GitHub releases API.
type Client struct {
	*httputil.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits; private repositories unavailable).
func NewClient(token string) *Client {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  httputil.NewClient(headers),
		baseURL: "https://api.github.com",
	}
}

// NewEnterpriseClient creates a client against a non-default API base URL,
// for GitHub Enterprise installations.
func NewEnterpriseClient(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// TokenFromEnv returns the ambient GitHub token from the environment.
// GITHUB_TOKEN wins; CORETRACK_GITHUB_TOKEN is the fallback.
func TokenFromEnv() string {
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return os.Getenv("CORETRACK_GITHUB_TOKEN")
}

// ListReleases fetches the releases of a repository, most recent first (the
// API's natural order).
func (c *Client) ListReleases(ctx context.Context, owner, repo string) ([]Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=100", c.baseURL, owner, repo)

	var releases []Release
	if err := c.GetJSON(ctx, url, &releases); err != nil {
		return nil, fmt.Errorf("list releases %s/%s: %w", owner, repo, err)
	}
	return releases, nil
}

// DownloadAsset streams the binary content of a release asset to dest.
// The url must be the asset's API URL (Asset.URL).
func (c *Client) DownloadAsset(ctx context.Context, url, dest string) error {
	headers := map[string]string{"Accept": "application/octet-stream"}
	if err := c.Download(ctx, url, headers, dest); err != nil {
		return fmt.Errorf("download asset %s: %w", url, err)
	}
	return nil
}

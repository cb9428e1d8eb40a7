package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultGitHubAPI = "https://api.github.com"

// ReleaseClient looks up the latest published release tag for a repository.
type ReleaseClient struct {
	BaseURL string
	Client  *http.Client
}

// NewReleaseClient returns a client against the public GitHub API.
func NewReleaseClient() *ReleaseClient {
	return &ReleaseClient{
		BaseURL: defaultGitHubAPI,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestTag returns the tag name of the latest release, or "" when the
// repository has no releases.
func (r *ReleaseClient) LatestTag(ctx context.Context, owner, name string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", r.BaseURL, owner, name)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	// Repos that tag without publishing releases return 404.
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching latest release: status %d", resp.StatusCode)
	}

	var body struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("parsing release response: %w", err)
	}
	return body.TagName, nil
}

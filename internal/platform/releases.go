package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// Project URLs
const (
	LatestReleaseURL = "https://api.github.com/repos/jeanslack/FFcuesplitter-GUI/releases/latest"
	ReleasesPageURL  = "https://github.com/jeanslack/FFcuesplitter-GUI/releases"
)

// ReleaseCheckTimeout bounds the new-release request
const ReleaseCheckTimeout = 10 * time.Second

// Release is the subset of the GitHub release document the app uses
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// LatestRelease fetches the latest published release from url
func LatestRelease(ctx context.Context, client *http.Client, url string) (Release, error) {
	if client == nil {
		client = &http.Client{Timeout: ReleaseCheckTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Release{}, fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("response error: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Release{}, fmt.Errorf("response error: %w", err)
	}
	if rel.TagName == "" {
		return Release{}, fmt.Errorf("response error: missing tag_name")
	}
	return rel, nil
}

// CompareVersions returns -1, 0 or +1 like semver.Compare, and false when
// either version cannot be parsed. Both may be written as "1.2.3", "v1.2.3" or "v.1.2.3".
func CompareVersions(a, b string) (int, bool) {
	ca, cb := canonicalVersion(a), canonicalVersion(b)
	if !semver.IsValid(ca) || !semver.IsValid(cb) {
		return 0, false
	}
	return semver.Compare(ca, cb), true
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	v = strings.TrimPrefix(v, ".")
	return "v" + v
}

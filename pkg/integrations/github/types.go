package github

import "time"

// Release represents one release of a repository as returned by the
// list-releases endpoint. The numeric ID is assigned by GitHub at creation
// time and increases monotonically, which the resolver relies on to compare
// a prerelease against the latest stable release.
type Release struct {
	ID          int64     `json:"id"`
	TagName     string    `json:"tag_name"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
	Assets      []Asset   `json:"assets"`
}

// Asset is a single file uploaded to a release.
type Asset struct {
	Name string `json:"name"`
	// URL is the API endpoint for the asset; requesting it with
	// Accept: application/octet-stream yields the binary content.
	URL                string `json:"url"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

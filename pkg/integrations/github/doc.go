// Package github provides the GitHub API client used by the catalog
// generator.
//
// It deliberately models only the release+asset shape the generator needs:
// listing releases for a repository and downloading a release asset as a
// binary stream. It is not a general GitHub client.
//
// Authentication uses a bearer token read from the process environment
// (GITHUB_TOKEN, falling back to CORETRACK_GITHUB_TOKEN). The token is
// ambient configuration, never a parameter threaded through the pipeline.
package github

package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlanglet/coretrack/pkg/archive"
	"github.com/mlanglet/coretrack/pkg/errors"
	"github.com/mlanglet/coretrack/pkg/integrations/github"
)

const archiveExt = ".zip"

// acquire downloads and extracts a release asset into the working
// directory, returning the extraction directory.
//
// The directory is keyed by the archive base name. If it already exists the
// prior extraction is reused and no network call happens; the directory's
// presence alone marks it valid, so a corrupted or partial prior extraction
// is never repaired automatically. Clearing the working directory is the
// recovery path.
func (g *Generator) acquire(ctx context.Context, a github.Asset) (string, error) {
	dir := filepath.Join(g.workdir, strings.TrimSuffix(a.Name, archiveExt))

	if _, err := os.Stat(dir); err == nil {
		g.logger.Debug("Reusing extracted asset", "dir", dir)
		return dir, nil
	}

	archivePath := filepath.Join(g.workdir, a.Name)
	g.logger.Debug("Downloading asset", "name", a.Name, "url", a.URL)
	if err := g.source.DownloadAsset(ctx, a.URL, archivePath); err != nil {
		return "", errors.Wrap(errors.ErrCodeDownloadFailed, err, "download %s", a.Name)
	}

	if err := archive.ExtractZip(archivePath, dir); err != nil {
		return "", errors.Wrap(errors.ErrCodeExtractFailed, err, "extract %s", a.Name)
	}
	return dir, nil
}

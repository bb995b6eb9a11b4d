// Package generator implements the per-core catalog record pipeline:
// release selection, freshness comparison, asset acquisition, and
// descriptor transformation.
//
// A run is single-threaded and sequential. Acquisition caches extracted
// assets in the working directory keyed by archive base name; concurrent
// runs against the same working directory are unsafe and must be serialized
// by the caller.
package generator

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/mlanglet/coretrack/pkg/catalog"
	"github.com/mlanglet/coretrack/pkg/errors"
	"github.com/mlanglet/coretrack/pkg/integrations/github"
)

// Source lists releases and downloads release assets. *github.Client
// satisfies it.
type Source interface {
	ListReleases(ctx context.Context, owner, repo string) ([]github.Release, error)
	DownloadAsset(ctx context.Context, url, dest string) error
}

// Target identifies one core to generate a record for. DisplayName is the
// catalog identity; it is deliberately separate from the repository name.
type Target struct {
	Owner       string
	Repo        string
	DisplayName string
}

// Options configures a Generator.
type Options struct {
	// Workdir is where archives are written and extracted. Defaults to the
	// current working directory.
	Workdir string

	// AssetOverrides maps display names to the asset index to pick within a
	// release. Entries are merged over DefaultAssetOverrides.
	AssetOverrides map[string]int

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Generator produces catalog records for cores.
type Generator struct {
	source    Source
	workdir   string
	overrides map[string]int
	logger    *log.Logger
}

// New creates a Generator reading releases and assets from src.
func New(src Source, opts Options) *Generator {
	workdir := opts.Workdir
	if workdir == "" {
		workdir = "."
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	overrides := make(map[string]int, len(DefaultAssetOverrides)+len(opts.AssetOverrides))
	for k, v := range DefaultAssetOverrides {
		overrides[k] = v
	}
	for k, v := range opts.AssetOverrides {
		overrides[k] = v
	}

	return &Generator{
		source:    src,
		workdir:   workdir,
		overrides: overrides,
		logger:    logger,
	}
}

// Run generates the catalog record for one core.
//
// It walks the candidate channels in resolver order. For each channel: a
// freshness hit short-circuits the whole run and returns cached unmodified;
// otherwise the asset is acquired and a record fragment built. The first
// valid fragment is returned immediately as a new record. An asset that is
// not a core bundle skips to the next channel. If every channel is
// exhausted, Run returns (nil, nil).
//
// Fatal conditions (listing failure, download, extraction, malformed
// descriptors) abort the run with an error.
func (g *Generator) Run(ctx context.Context, t Target, cached *catalog.Record) (*catalog.Record, error) {
	releases, err := g.source.ListReleases(ctx, t.Owner, t.Repo)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "list releases for %s/%s", t.Owner, t.Repo)
	}

	idx := g.assetIndex(t.DisplayName)

	for _, cand := range selectReleases(releases) {
		logger := g.logger.With("core", t.DisplayName, "channel", cand.channel, "tag", cand.release.TagName)

		if !updateNeeded(cached, cand.channel, cand.release.TagName) {
			logger.Info("Cached record is current")
			return cached, nil
		}

		asset, ok := pickAsset(cand.release, idx)
		if !ok {
			logger.Warn("Release has no asset at index", "index", idx)
			continue
		}

		dir, err := g.acquire(ctx, asset)
		if err != nil {
			return nil, err
		}

		frag, id, err := buildFragment(dir, cand)
		if errors.Is(err, errors.ErrCodeNotACore) {
			logger.Debug("Asset is not a core bundle, skipping channel", "reason", err)
			continue
		}
		if err != nil {
			return nil, err
		}

		logger.Info("Built record", "identifier", id.identifier, "platform", id.platformName)
		rec := &catalog.Record{
			DisplayName: t.DisplayName,
			Identifier:  id.identifier,
			Platform:    id.platformName,
			Repository:  t.Repo,
		}
		rec.SetChannel(cand.channel, frag)
		return rec, nil
	}

	g.logger.Debug("No channel yielded a usable core", "core", t.DisplayName)
	return nil, nil
}

// updateNeeded reports whether tag differs from the cached tag for ch.
// A missing cached record, or a record with no entry for the channel, both
// count as different. Comparison is string equality only.
func updateNeeded(cached *catalog.Record, ch catalog.Channel, tag string) bool {
	cr := cached.Channel(ch)
	return cr == nil || cr.TagName != tag
}

package generator

import (
	"github.com/mlanglet/coretrack/pkg/catalog"
	"github.com/mlanglet/coretrack/pkg/integrations/github"
)

// DefaultAssetOverrides maps display names of dual-purpose repositories to
// the asset index to pick within their releases. Most releases carry one
// asset, so the default index is 0; repositories publishing two cores from
// one release attach both archives and split identity by display name.
//
// Keeping this declarative means new overrides are data, not selection
// logic.
var DefaultAssetOverrides = map[string]int{
	"Spiritualized GBA": 1,
}

// candidate is one release selected for a channel.
type candidate struct {
	channel catalog.Channel
	release github.Release
}

// selectReleases picks the release(s) worth considering from the API's
// most-recent-first list.
//
// The list is partitioned into the first prerelease and the first stable
// release; later releases of the same kind are superseded and ignored. When
// both exist, their numeric IDs decide: a prerelease with a higher ID than
// the stable is newer than the last stable build and must be checked too,
// so both are returned with the prerelease first. A prerelease with a lower
// or equal ID is already superseded by the stable and is dropped.
func selectReleases(releases []github.Release) []candidate {
	var pre, stable *github.Release
	for i := range releases {
		r := &releases[i]
		switch {
		case r.Prerelease && pre == nil:
			pre = r
		case !r.Prerelease && stable == nil:
			stable = r
		}
		if pre != nil && stable != nil {
			break
		}
	}

	switch {
	case pre == nil && stable == nil:
		return nil
	case stable == nil:
		return []candidate{{catalog.ChannelPrerelease, *pre}}
	case pre == nil:
		return []candidate{{catalog.ChannelStable, *stable}}
	case pre.ID > stable.ID:
		return []candidate{
			{catalog.ChannelPrerelease, *pre},
			{catalog.ChannelStable, *stable},
		}
	default:
		return []candidate{{catalog.ChannelStable, *stable}}
	}
}

// pickAsset returns the release asset at idx, or ok=false when the release
// carries no asset at that position.
func pickAsset(r github.Release, idx int) (github.Asset, bool) {
	if idx < 0 || idx >= len(r.Assets) {
		return github.Asset{}, false
	}
	return r.Assets[idx], true
}

// assetIndex resolves the asset index for a display name through the
// override table.
func (g *Generator) assetIndex(displayName string) int {
	if idx, ok := g.overrides[displayName]; ok {
		return idx
	}
	return 0
}

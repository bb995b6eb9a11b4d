package generator

import (
	"time"

	"github.com/mlanglet/coretrack/pkg/bitfield"
	"github.com/mlanglet/coretrack/pkg/catalog"
	"github.com/mlanglet/coretrack/pkg/descriptor"
	"github.com/mlanglet/coretrack/pkg/errors"
)

// identity is the top-level record data derived from the descriptors.
type identity struct {
	identifier   string // "author.shortname"
	platformName string
}

// buildFragment reads the descriptors in an extraction directory and
// produces the channel fragment for cand, or a NOT_A_CORE error when the
// asset carries no usable core descriptor.
func buildFragment(dir string, cand candidate) (*catalog.ChannelRecord, identity, error) {
	core, err := descriptor.ReadCore(dir)
	if err != nil {
		return nil, identity{}, err
	}

	ids := core.Core.Metadata.PlatformIDs
	if len(ids) == 0 {
		return nil, identity{}, errors.New(errors.ErrCodeNotACore, "core descriptor lists no platform ids")
	}
	// Only the first platform id is honored. Cores targeting several
	// platforms are a known limitation; no published core exercises more
	// than one id.
	platformID := ids[0]

	platform, err := descriptor.ReadPlatform(dir, platformID)
	if err != nil {
		return nil, identity{}, err
	}

	assets, err := buildAssets(dir, platformID)
	if err != nil {
		return nil, identity{}, err
	}

	frag := &catalog.ChannelRecord{
		TagName:     cand.release.TagName,
		ReleaseDate: cand.release.PublishedAt.UTC().Format(time.DateOnly),
		Platform:    map[string]any(platform),
		Assets:      assets,
	}
	return frag, identity{identifier: core.Identifier(), platformName: platform.Name()}, nil
}

// buildAssets derives the asset manifest from the data-slot descriptor.
// Only slots marked required are kept. Slots whose decoded parameter flags
// include instance_json are synthesized by the emulation host at runtime
// and are dropped even when required. A missing data-slot descriptor means
// the core declares no slots.
func buildAssets(dir, platformID string) ([]map[string]any, error) {
	slots, err := descriptor.ReadDataSlots(dir)
	if errors.Is(err, errors.ErrCodeNotACore) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var assets []map[string]any
	for _, s := range slots.Data.Slots {
		if !s.Required {
			continue
		}
		flags := s.Parameters.Decode()
		if flags[bitfield.InstanceJSON] {
			continue
		}

		entry := map[string]any{"platform": platformID}
		if s.Filename != "" {
			entry["filename"] = s.Filename
		}
		if len(s.Extensions) > 0 {
			entry["extensions"] = s.Extensions
		}
		for name := range flags {
			entry[name] = true
		}
		assets = append(assets, entry)
	}
	return assets, nil
}

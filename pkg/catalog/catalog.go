// Package catalog defines the curated core catalog: the records coretrack
// generates and the YAML file they persist to.
//
// Cached records are looked up by display name, never by repository name.
// Two repositories can share one underlying catalog identity split by
// channel semantics, so a repository-name fallback would resolve to the
// wrong entry.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Channel classifies a hosted release as stable or prerelease. The values
// double as the per-channel keys in catalog records.
type Channel string

const (
	ChannelStable     Channel = "release"
	ChannelPrerelease Channel = "prerelease"
)

// Catalog is the ordered sequence of per-owner core groups persisted to the
// catalog file.
type Catalog []Owner

// Owner groups the catalog records of one repository owner.
type Owner struct {
	Username string   `yaml:"username"`
	Cores    []Record `yaml:"cores"`
}

// Record is the catalog entry for one core. A record carries at most one
// entry per channel; channels not rebuilt in a run keep whatever the cached
// record held.
type Record struct {
	DisplayName string         `yaml:"display_name"`
	Identifier  string         `yaml:"identifier,omitempty"`
	Platform    string         `yaml:"platform,omitempty"`
	Repository  string         `yaml:"repository,omitempty"`
	Release     *ChannelRecord `yaml:"release,omitempty"`
	Prerelease  *ChannelRecord `yaml:"prerelease,omitempty"`
}

// ChannelRecord is the per-channel fragment of a record.
type ChannelRecord struct {
	TagName     string           `yaml:"tag_name"`
	ReleaseDate string           `yaml:"release_date"`
	Platform    map[string]any   `yaml:"platform,omitempty"`
	Assets      []map[string]any `yaml:"assets,omitempty"`
}

// Channel returns the record's fragment for ch, or nil if absent. A nil
// receiver yields nil, so callers can chain through a failed lookup.
func (r *Record) Channel(ch Channel) *ChannelRecord {
	if r == nil {
		return nil
	}
	switch ch {
	case ChannelPrerelease:
		return r.Prerelease
	default:
		return r.Release
	}
}

// SetChannel stores the fragment for ch on the record.
func (r *Record) SetChannel(ch Channel, cr *ChannelRecord) {
	if ch == ChannelPrerelease {
		r.Prerelease = cr
		return
	}
	r.Release = cr
}

// Find returns the record with the given display name, or nil. Lookup is by
// display name only.
func (c Catalog) Find(displayName string) *Record {
	for i := range c {
		for j := range c[i].Cores {
			if c[i].Cores[j].DisplayName == displayName {
				return &c[i].Cores[j]
			}
		}
	}
	return nil
}

// Load reads the catalog YAML file at path. A missing file is not an error;
// it loads as an empty catalog (first run).
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Save writes the catalog to path as YAML, preserving order.
func Save(c Catalog, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

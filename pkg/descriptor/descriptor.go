// Package descriptor locates and parses the JSON descriptor files bundled
// inside an extracted openFPGA core asset.
//
// A core bundle carries three kinds of descriptors: the core descriptor
// (identity and target platforms), one platform descriptor per platform id,
// and the data-slot descriptor listing storage slots. Files are located by
// name anywhere under a known subdirectory of the extraction root, because
// authors nest them at varying depths.
package descriptor

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mlanglet/coretrack/pkg/bitfield"
	"github.com/mlanglet/coretrack/pkg/errors"
)

// Subdirectory roots searched for descriptor files inside an extracted
// asset.
const (
	CoresRoot     = "Cores"
	PlatformsRoot = "Platforms"
)

// Descriptor file names within the cores root.
const (
	CoreFile     = "core.json"
	DataSlotFile = "data.json"
)

// Core is the parsed core descriptor.
type Core struct {
	Core struct {
		Metadata struct {
			Author      string   `json:"author"`
			Shortname   string   `json:"shortname"`
			PlatformIDs []string `json:"platform_ids"`
		} `json:"metadata"`
	} `json:"core"`
}

// Identifier composes the catalog identifier as "author.shortname".
func (c *Core) Identifier() string {
	m := c.Core.Metadata
	return m.Author + "." + m.Shortname
}

// Platform is a parsed platform descriptor. All fields pass through to the
// catalog record untouched, so it stays a generic document.
type Platform map[string]any

// Name returns the platform display name, or "" if absent.
func (p Platform) Name() string {
	s, _ := p["name"].(string)
	return s
}

// DataSlots is the parsed data-slot descriptor.
type DataSlots struct {
	Data struct {
		Slots []DataSlot `json:"data_slots"`
	} `json:"data"`
}

// DataSlot describes one storage slot. Every field is optional in the wild.
type DataSlot struct {
	Name       string        `json:"name,omitempty"`
	Required   bool          `json:"required,omitempty"`
	Parameters bitfield.Mask `json:"parameters,omitempty"`
	Filename   string        `json:"filename,omitempty"`
	Extensions []string      `json:"extensions,omitempty"`
}

// Find searches recursively under root/subdir for the first file named name
// at any depth. Absence yields a NOT_A_CORE error: some releases attach
// unrelated files, and the caller abandons that channel gracefully instead
// of aborting the run.
//
// Multiple files with the same name are possible; Find takes the first in
// lexical walk order, which is deterministic for a given tree.
func Find(root, subdir, name string) (string, error) {
	var found string
	base := filepath.Join(root, subdir)

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	if found == "" {
		return "", errors.New(errors.ErrCodeNotACore, "no %s under %s", name, base)
	}
	return found, nil
}

// ReadCore locates and parses the core descriptor under root.
func ReadCore(root string) (*Core, error) {
	var c Core
	if err := read(root, CoresRoot, CoreFile, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadPlatform locates and parses the platform descriptor for platformID
// under root. The file is named "<platformID>.json" and its contents are
// nested under a top-level "platform" key.
func ReadPlatform(root, platformID string) (Platform, error) {
	var doc struct {
		Platform Platform `json:"platform"`
	}
	if err := read(root, PlatformsRoot, platformID+".json", &doc); err != nil {
		return nil, err
	}
	return doc.Platform, nil
}

// ReadDataSlots locates and parses the data-slot descriptor under root.
func ReadDataSlots(root string) (*DataSlots, error) {
	var d DataSlots
	if err := read(root, CoresRoot, DataSlotFile, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func read(root, subdir, name string, v any) error {
	path, err := Find(root, subdir, name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedDescriptor, err, "parse %s", path)
	}
	return nil
}

package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleCatalog() Catalog {
	return Catalog{
		{
			Username: "budude2",
			Cores: []Record{
				{
					DisplayName: "GBA for Pocket",
					Identifier:  "budude2.GBA",
					Platform:    "Game Boy Advance",
					Repository:  "openfpga-GBA",
					Release: &ChannelRecord{
						TagName:     "1.2",
						ReleaseDate: "2023-04-01T00:00:00Z",
						Platform:    map[string]any{"name": "Game Boy Advance"},
						Assets:      []map[string]any{{"platform": "gba"}},
					},
				},
			},
		},
		{
			Username: "spiritualized1997",
			Cores: []Record{
				// Two repos sharing infrastructure resolve to independent
				// catalog identities by display name.
				{DisplayName: "Spiritualized GB", Repository: "openFPGA-GB-GBC"},
				{DisplayName: "Spiritualized GBA", Repository: "openFPGA-GB-GBC"},
			},
		},
	}
}

func TestFindByDisplayName(t *testing.T) {
	c := sampleCatalog()

	rec := c.Find("Spiritualized GBA")
	if rec == nil {
		t.Fatal("Find returned nil for existing display name")
	}
	if rec.DisplayName != "Spiritualized GBA" {
		t.Errorf("found wrong record: %s", rec.DisplayName)
	}

	// Lookup must never fall back to the repository name.
	if c.Find("openFPGA-GB-GBC") != nil {
		t.Error("Find must not resolve by repository name")
	}
	if c.Find("missing") != nil {
		t.Error("Find should return nil for unknown display name")
	}
}

func TestChannelAccess(t *testing.T) {
	c := sampleCatalog()
	rec := c.Find("GBA for Pocket")

	if got := rec.Channel(ChannelStable); got == nil || got.TagName != "1.2" {
		t.Errorf("stable channel = %+v", got)
	}
	if rec.Channel(ChannelPrerelease) != nil {
		t.Error("prerelease channel should be absent")
	}

	var nilRec *Record
	if nilRec.Channel(ChannelStable) != nil {
		t.Error("nil record should yield nil channel")
	}
}

func TestSetChannel(t *testing.T) {
	var rec Record
	cr := &ChannelRecord{TagName: "0.9.0-beta"}
	rec.SetChannel(ChannelPrerelease, cr)

	if rec.Prerelease != cr {
		t.Error("SetChannel did not assign prerelease")
	}
	if rec.Release != nil {
		t.Error("SetChannel touched the wrong channel")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cores.yml")
	orig := sampleCatalog()

	if err := Save(orig, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, orig)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if c != nil {
		t.Errorf("expected empty catalog, got %+v", c)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed catalog")
	}
}

package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writeZip creates a zip archive at path containing the given name->content
// entries.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "core.zip")
	writeZip(t, src, map[string]string{
		"Cores/author.Core/core.json": `{"core":{}}`,
		"Platforms/gb.json":           `{"platform":{}}`,
		"README.md":                   "hello",
	})

	dest := filepath.Join(dir, "core")
	if err := ExtractZip(src, dest); err != nil {
		t.Fatalf("ExtractZip failed: %v", err)
	}

	for _, rel := range []string{
		"Cores/author.Core/core.json",
		"Platforms/gb.json",
		"README.md",
	} {
		if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
			t.Errorf("missing extracted file %s: %v", rel, err)
		}
	}

	got, err := os.ReadFile(filepath.Join(dest, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("extracted content = %q, want hello", got)
	}
}

func TestExtractZipRejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "evil.zip")
	writeZip(t, src, map[string]string{
		"../escape.txt": "nope",
	})

	dest := filepath.Join(dir, "out")
	if err := ExtractZip(src, dest); err == nil {
		t.Fatal("expected error for path escaping the destination")
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); !os.IsNotExist(err) {
		t.Error("entry escaped the destination directory")
	}
}

func TestExtractZipBadArchive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "corrupt.zip")
	if err := os.WriteFile(src, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ExtractZip(src, filepath.Join(dir, "out")); err == nil {
		t.Fatal("expected error for corrupt archive")
	}
}

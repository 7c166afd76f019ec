package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesLayout(t *testing.T) {
	base := t.TempDir()

	layout, err := New(base)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dirs := []string{
		layout.DataDir(),
		layout.DownloadsDir(),
		layout.ProgramsDir(),
		layout.ShortcutsDir(),
		layout.LogsDir(),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("Expected directory %s to exist, got %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Expected %s to be a directory", dir)
		}
	}
}

func TestNewIsIdempotent(t *testing.T) {
	base := t.TempDir()

	if _, err := New(base); err != nil {
		t.Fatalf("Expected no error on first call, got %v", err)
	}
	if _, err := New(base); err != nil {
		t.Fatalf("Expected no error on second call, got %v", err)
	}
}

func TestCatalogFile(t *testing.T) {
	base := t.TempDir()

	layout, err := New(base)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := filepath.Join(base, DataDirName, CatalogFileName)
	if layout.CatalogFile() != want {
		t.Errorf("Expected catalog file %s, got %s", want, layout.CatalogFile())
	}
}

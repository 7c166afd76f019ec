package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLaunchDetachedMissingFile(t *testing.T) {
	err := LaunchDetached(filepath.Join(t.TempDir(), "missing.exe"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory to exist, got %v", err)
	}

	// Second call is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error on existing directory, got %v", err)
	}
}

func TestUnavailableShortcutWriter(t *testing.T) {
	writer := NewShortcutWriter()

	if writer.Available() {
		t.Error("Default shortcut writer should report unavailable")
	}
	err := writer.Create("/tmp/x.lnk", "/tmp/x.exe")
	if !errors.Is(err, ErrShortcutsUnavailable) {
		t.Errorf("Expected ErrShortcutsUnavailable, got %v", err)
	}
}

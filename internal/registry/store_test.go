package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fiscotools/integrador/internal/logging"
	"github.com/fiscotools/integrador/internal/model"
)

func testLogger() *logging.Logger {
	return logging.New(logging.Config{Level: "error"})
}

func TestLoadBootstrapsDefaultCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	store := NewStore(path, testLogger())

	catalog := store.Load()
	if len(catalog) == 0 {
		t.Fatal("Expected default catalog, got empty map")
	}
	if !reflect.DeepEqual(catalog, DefaultCatalog()) {
		t.Error("Expected loaded catalog to equal the default catalog")
	}

	// The bootstrap must persist the same entries; verify by re-loading.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected catalog file to be written, got %v", err)
	}
	var persisted map[string]model.ProgramDescriptor
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("Expected valid JSON on disk, got %v", err)
	}
	if !reflect.DeepEqual(persisted, catalog) {
		t.Error("Expected persisted catalog to match the returned one")
	}

	reloaded := store.Load()
	if !reflect.DeepEqual(reloaded, catalog) {
		t.Error("Expected reload to return the same entries")
	}
}

func TestLoadCorruptFileFailsSoft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, testLogger())
	catalog := store.Load()
	if catalog == nil {
		t.Fatal("Expected empty map, got nil")
	}
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog for corrupt file, got %d entries", len(catalog))
	}
}

func TestLoadDefaultsMissingVersionToSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	raw := `{"X": {"nome": "Programa X", "url_download": "http://h/f.zip", "nome_arquivo": "f.zip"}}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, testLogger())
	desc, ok := store.Get("X")
	if !ok {
		t.Fatal("Expected descriptor X to exist")
	}
	if desc.AvailableVersion != model.VersionUnknown {
		t.Errorf("Expected sentinel version %q, got %q", model.VersionUnknown, desc.AvailableVersion)
	}
}

func TestGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	store := NewStore(path, testLogger())
	store.Load() // bootstrap defaults

	if _, ok := store.Get("IRPF2025"); !ok {
		t.Error("Expected IRPF2025 in default catalog")
	}
	if _, ok := store.Get("missing"); ok {
		t.Error("Expected lookup miss for unknown id")
	}
}

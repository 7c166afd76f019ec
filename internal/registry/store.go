package registry

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/fiscotools/integrador/internal/logging"
	"github.com/fiscotools/integrador/internal/model"
)

// Store reads the persisted catalog of program descriptors. The catalog is
// read-only configuration from the application's perspective; the only
// write is the default-catalog bootstrap on first run.
type Store struct {
	path string
	log  *logging.Logger
}

// NewStore creates a catalog store backed by the file at path.
func NewStore(path string, log *logging.Logger) *Store {
	return &Store{path: path, log: log.WithComponent("registry")}
}

// Load reads the catalog file. When the file does not exist the hardcoded
// default catalog is persisted and returned. Read and parse errors are
// logged and yield an empty catalog rather than an error: the persisted
// file is the sole source of truth and a corrupt one must not take the
// application down.
func (s *Store) Load() map[string]model.ProgramDescriptor {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.bootstrap()
	}
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to read catalog file")
		return map[string]model.ProgramDescriptor{}
	}

	var catalog map[string]model.ProgramDescriptor
	if err := json.Unmarshal(data, &catalog); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to parse catalog file")
		return map[string]model.ProgramDescriptor{}
	}

	for id, desc := range catalog {
		if desc.AvailableVersion == "" {
			desc.AvailableVersion = model.VersionUnknown
			catalog[id] = desc
		}
	}

	s.log.Info().Int("programs", len(catalog)).Msg("catalog loaded")
	return catalog
}

// Get returns the descriptor for a single program id.
func (s *Store) Get(id string) (model.ProgramDescriptor, bool) {
	desc, ok := s.Load()[id]
	return desc, ok
}

// bootstrap persists the default catalog and returns it. A persist failure
// is logged but the defaults are still served for this run.
func (s *Store) bootstrap() map[string]model.ProgramDescriptor {
	catalog := DefaultCatalog()

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode default catalog")
		return catalog
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to persist default catalog")
		return catalog
	}

	s.log.Info().Int("programs", len(catalog)).Str("path", s.path).
		Msg("default catalog materialized")
	return catalog
}

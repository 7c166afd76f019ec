package registry

import (
	"sort"

	"github.com/fiscotools/integrador/internal/model"
)

// ProgramList assembles the display rows for the UI table: catalog data
// plus computed status and local version, sorted by program id for stable
// rendering.
func (s *Store) ProgramList(prober *Prober) []model.ProgramRow {
	catalog := s.Load()

	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]model.ProgramRow, 0, len(catalog))
	for _, id := range ids {
		desc := catalog[id]
		rows = append(rows, model.ProgramRow{
			ID:               id,
			Name:             desc.Name,
			Status:           prober.Status(id, desc),
			LocalVersion:     prober.LocalVersion(id, desc),
			AvailableVersion: desc.AvailableVersion,
			DownloadURL:      desc.DownloadURL,
			FileName:         desc.FileName,
			ShortcutName:     desc.ShortcutFileName(id),
			Description:      desc.Description,
		})
	}
	return rows
}

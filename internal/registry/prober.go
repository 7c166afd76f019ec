package registry

import (
	"os"
	"path/filepath"

	"github.com/fiscotools/integrador/internal/logging"
	"github.com/fiscotools/integrador/internal/model"
)

// Prober classifies a program as installed or not by checking two
// file-system locations in priority order. Existence only; no content
// validation is performed and results are never cached.
type Prober struct {
	shortcutsDir string
	programsDir  string
	log          *logging.Logger
}

// NewProber creates a prober over the shortcuts and programs directories.
func NewProber(shortcutsDir, programsDir string, log *logging.Logger) *Prober {
	return &Prober{
		shortcutsDir: shortcutsDir,
		programsDir:  programsDir,
		log:          log.WithComponent("prober"),
	}
}

// Status probes the program's installation state. A shortcut file wins;
// otherwise a non-empty FileName present in the programs directory counts
// as installed. A downloaded installer sitting in the downloads directory
// does not.
func (p *Prober) Status(id string, desc model.ProgramDescriptor) model.InstallStatus {
	shortcut := filepath.Join(p.shortcutsDir, desc.ShortcutFileName(id))
	if fileExists(shortcut) {
		p.log.Info().Str("program", id).Str("shortcut", shortcut).
			Msg("installed: shortcut found")
		return model.StatusInstalled
	}

	if desc.FileName != "" {
		exe := filepath.Join(p.programsDir, desc.FileName)
		if fileExists(exe) {
			p.log.Info().Str("program", id).Str("executable", exe).
				Msg("installed: executable found")
			return model.StatusInstalled
		}
	}

	p.log.Info().Str("program", id).Msg("not installed")
	return model.StatusNotInstalled
}

// LocalVersion derives the installed version: the catalog's available
// version when the program is installed, the unknown sentinel otherwise.
func (p *Prober) LocalVersion(id string, desc model.ProgramDescriptor) string {
	if !p.Status(id, desc).IsInstalled() {
		return model.VersionUnknown
	}
	if desc.AvailableVersion == "" {
		return model.VersionUnknown
	}
	return desc.AvailableVersion
}

// ShortcutPath returns the full path of the program's installation marker.
func (p *Prober) ShortcutPath(id string, desc model.ProgramDescriptor) string {
	return filepath.Join(p.shortcutsDir, desc.ShortcutFileName(id))
}

// ExecutablePath returns the full path of the installed executable, or ""
// when the catalog declares no file name.
func (p *Prober) ExecutablePath(desc model.ProgramDescriptor) string {
	if desc.FileName == "" {
		return ""
	}
	return filepath.Join(p.programsDir, desc.FileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

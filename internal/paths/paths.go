// Package paths resolves the application directory layout relative to a
// base directory and creates it idempotently on first use.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory and file names under the application base directory.
const (
	DataDirName      = "data"
	DownloadsDirName = "Instaladores"
	ProgramsDirName  = "Programas"
	ShortcutsDirName = "Atalhos"
	LogsDirName      = "logs"
	CatalogFileName  = "versions.json"

	DefaultDirPermissions = 0755
)

// Layout resolves the directories used by the application. All directories
// exist once New returns.
type Layout struct {
	base string
}

// New builds a Layout rooted at baseDir and creates every directory it
// resolves. An empty baseDir falls back to the executable's directory.
func New(baseDir string) (*Layout, error) {
	if baseDir == "" {
		detected, err := DetectBaseDir()
		if err != nil {
			return nil, err
		}
		baseDir = detected
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	l := &Layout{base: abs}
	for _, dir := range []string{
		l.DataDir(), l.DownloadsDir(), l.ProgramsDir(), l.ShortcutsDir(), l.LogsDir(),
	} {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return l, nil
}

// DetectBaseDir returns the directory containing the running executable,
// which keeps the layout portable next to the binary.
func DetectBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// BaseDir returns the application base directory.
func (l *Layout) BaseDir() string { return l.base }

// DataDir holds the persisted catalog file.
func (l *Layout) DataDir() string { return filepath.Join(l.base, DataDirName) }

// DownloadsDir holds fetched installer files.
func (l *Layout) DownloadsDir() string { return filepath.Join(l.base, DownloadsDirName) }

// ProgramsDir holds installed executables.
func (l *Layout) ProgramsDir() string { return filepath.Join(l.base, ProgramsDirName) }

// ShortcutsDir holds installation-marker shortcut files.
func (l *Layout) ShortcutsDir() string { return filepath.Join(l.base, ShortcutsDirName) }

// LogsDir holds application log files.
func (l *Layout) LogsDir() string { return filepath.Join(l.base, LogsDirName) }

// CatalogFile returns the full path of the persisted catalog.
func (l *Layout) CatalogFile() string { return filepath.Join(l.DataDir(), CatalogFileName) }

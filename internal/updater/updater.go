package updater

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goversion "github.com/hashicorp/go-version"

	"github.com/fiscotools/integrador/internal/download"
	"github.com/fiscotools/integrador/internal/logging"
	"github.com/fiscotools/integrador/internal/model"
	"github.com/fiscotools/integrador/internal/platform"
	"github.com/fiscotools/integrador/internal/registry"
)

// Fetcher is the transfer collaborator; satisfied by *download.Downloader.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string, onProgress download.ProgressFunc) error
}

// BatchProgressFunc receives the count-based overall percent of a batch
// update pass.
type BatchProgressFunc func(percent int)

// Coordinator drives checks, downloads and installer launches over the
// catalog. It owns the single transient download session; a second
// download attempt while one is in flight is rejected, not queued.
// Construct one per caller and share it by reference.
type Coordinator struct {
	store        *registry.Store
	prober       *registry.Prober
	fetcher      Fetcher
	downloadsDir string
	log          *logging.Logger

	launch    func(path string) error
	shortcuts platform.ShortcutWriter

	mu      sync.Mutex
	session model.DownloadSession
	cancel  context.CancelFunc
}

// NewCoordinator wires the coordinator with its collaborators. The
// downloads directory is the destination for fetched installers.
func NewCoordinator(store *registry.Store, prober *registry.Prober, fetcher Fetcher, downloadsDir string, log *logging.Logger) *Coordinator {
	return &Coordinator{
		store:        store,
		prober:       prober,
		fetcher:      fetcher,
		downloadsDir: downloadsDir,
		log:          log.WithComponent("updater"),
		launch:       platform.LaunchDetached,
		shortcuts:    platform.NewShortcutWriter(),
	}
}

// SetLauncher replaces the process-launch facility.
func (c *Coordinator) SetLauncher(launch func(path string) error) {
	c.launch = launch
}

// SetShortcutWriter replaces the shortcut creation capability.
func (c *Coordinator) SetShortcutWriter(w platform.ShortcutWriter) {
	c.shortcuts = w
}

// Session returns a snapshot of the current download session.
func (c *Coordinator) Session() model.DownloadSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// IsDownloading reports whether a download session is in flight.
func (c *Coordinator) IsDownloading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Active
}

// CancelDownload requests cooperative cancellation of the active session.
func (c *Coordinator) CancelDownload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// CheckForUpdates flags every program whose local version ranks behind the
// available one. An unknown local version always flags update-needed.
func (c *Coordinator) CheckForUpdates() map[string]bool {
	catalog := c.store.Load()
	updates := make(map[string]bool, len(catalog))

	for id, desc := range catalog {
		local := c.prober.LocalVersion(id, desc)
		updates[id] = local == model.VersionUnknown ||
			CompareVersions(local, desc.AvailableVersion) < 0
	}

	pending := 0
	for _, needs := range updates {
		if needs {
			pending++
		}
	}
	c.log.Info().Int("pending", pending).Int("programs", len(updates)).
		Msg("update check finished")
	return updates
}

// CompareVersions orders two version strings: -1, 0 or 1. Dotted-numeric
// comparison when both parse; lexical ordering otherwise. The unknown
// sentinel ranks behind everything.
func CompareVersions(v1, v2 string) int {
	if v1 == model.VersionUnknown {
		return -1
	}
	if v2 == model.VersionUnknown {
		return 1
	}

	parsed1, err1 := goversion.NewVersion(v1)
	parsed2, err2 := goversion.NewVersion(v2)
	if err1 == nil && err2 == nil {
		return parsed1.Compare(parsed2)
	}
	return strings.Compare(v1, v2)
}

// InstallerPath returns the destination path of the program's installer
// inside the downloads directory, or "" when the catalog declares no file
// name.
func (c *Coordinator) InstallerPath(desc model.ProgramDescriptor) string {
	if desc.FileName == "" {
		return ""
	}
	return filepath.Join(c.downloadsDir, desc.FileName)
}

// DownloadProgram fetches the program's installer into the downloads
// directory, feeding onProgress and the shared session counters as chunks
// arrive. Fails without a network call for unknown ids, empty URLs, and
// missing file names; fails with a distinct log message when another
// download is already in flight, leaving that session untouched.
func (c *Coordinator) DownloadProgram(id string, onProgress download.ProgressFunc) bool {
	desc, ok := c.store.Get(id)
	if !ok {
		c.log.Error().Str("program", id).Msg("program not found in catalog")
		return false
	}
	if desc.DownloadURL == "" {
		c.log.Error().Str("program", id).Msg("no download URL for program")
		return false
	}
	dest := c.InstallerPath(desc)
	if dest == "" {
		c.log.Error().Str("program", id).Msg("no installer file name for program")
		return false
	}

	c.mu.Lock()
	if c.session.Active {
		c.log.Warn().Str("program", id).Str("active", c.session.ProgramID).
			Msg("download rejected: another download is in flight")
		c.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	sessionID := uuid.NewString()
	c.session = model.DownloadSession{
		ID:        sessionID,
		ProgramID: id,
		Active:    true,
		StartedAt: time.Now(),
	}
	c.mu.Unlock()
	defer cancel()

	err := c.fetcher.Fetch(ctx, desc.DownloadURL, dest,
		func(percent int, downloaded, total int64, startedAt time.Time) {
			c.mu.Lock()
			if c.session.ID == sessionID {
				c.session.Percent = percent
				c.session.Downloaded = downloaded
				c.session.Total = total
			}
			c.mu.Unlock()
			if onProgress != nil {
				onProgress(percent, downloaded, total, startedAt)
			}
		})

	c.mu.Lock()
	c.session = model.DownloadSession{}
	c.cancel = nil
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Str("program", id).Msg("download failed")
		return false
	}
	c.log.Info().Str("program", id).Str("dest", dest).Msg("download completed")
	return true
}

// InstallProgram launches the downloaded installer as a detached OS
// process. Fails when the installer file is absent.
func (c *Coordinator) InstallProgram(id string) bool {
	desc, ok := c.store.Get(id)
	if !ok {
		c.log.Error().Str("program", id).Msg("program not found in catalog")
		return false
	}

	installer := c.InstallerPath(desc)
	if installer == "" {
		c.log.Error().Str("program", id).Msg("no installer file name for program")
		return false
	}
	if _, err := os.Stat(installer); err != nil {
		c.log.Error().Err(err).Str("program", id).Str("installer", installer).
			Msg("installer not found")
		return false
	}

	if err := c.launch(installer); err != nil {
		c.log.Error().Err(err).Str("program", id).Msg("failed to launch installer")
		return false
	}
	c.log.Info().Str("program", id).Str("installer", installer).Msg("installer launched")
	return true
}

// RunProgram launches an installed program, preferring its shortcut and
// falling back to the executable in the programs directory.
func (c *Coordinator) RunProgram(id string) bool {
	desc, ok := c.store.Get(id)
	if !ok {
		c.log.Error().Str("program", id).Msg("program not found in catalog")
		return false
	}

	shortcut := c.prober.ShortcutPath(id, desc)
	if _, err := os.Stat(shortcut); err == nil {
		if err := c.launch(shortcut); err == nil {
			c.log.Info().Str("program", id).Str("shortcut", shortcut).Msg("launched via shortcut")
			return true
		}
	}

	exe := c.prober.ExecutablePath(desc)
	if exe != "" {
		if _, err := os.Stat(exe); err == nil {
			if err := c.launch(exe); err == nil {
				c.log.Info().Str("program", id).Str("executable", exe).Msg("launched via executable")
				return true
			}
		}
	}

	c.log.Warn().Str("program", id).Msg("could not locate program to run")
	return false
}

// CreateShortcut writes the program's installation marker when the
// shortcut capability is available; otherwise it degrades to a logged
// warning and a failure return for this operation only.
func (c *Coordinator) CreateShortcut(id string) bool {
	if !c.shortcuts.Available() {
		c.log.Warn().Str("program", id).Msg("shortcut creation unavailable")
		return false
	}

	desc, ok := c.store.Get(id)
	if !ok {
		c.log.Error().Str("program", id).Msg("program not found in catalog")
		return false
	}

	target := c.InstallerPath(desc)
	shortcut := c.prober.ShortcutPath(id, desc)
	if err := c.shortcuts.Create(shortcut, target); err != nil {
		c.log.Error().Err(err).Str("program", id).Msg("failed to create shortcut")
		return false
	}
	c.log.Info().Str("program", id).Str("shortcut", shortcut).Msg("shortcut created")
	return true
}

// UpdateAllPrograms downloads every program flagged by CheckForUpdates,
// isolating per-item failures so one program's failure does not abort the
// rest. onBatch receives the count-based overall percent.
func (c *Coordinator) UpdateAllPrograms(onBatch BatchProgressFunc) map[string]model.UpdateOutcome {
	updates := c.CheckForUpdates()
	results := make(map[string]model.UpdateOutcome, len(updates))

	ids := make([]string, 0, len(updates))
	total := 0
	for id, needs := range updates {
		ids = append(ids, id)
		if needs {
			total++
		}
	}
	sort.Strings(ids)

	processed := 0
	for _, id := range ids {
		if !updates[id] {
			results[id] = model.OutcomeSkipped
			continue
		}

		processed++
		c.log.Info().Str("program", id).Int("current", processed).Int("total", total).
			Msg("processing batch update")

		if c.DownloadProgram(id, nil) {
			results[id] = model.OutcomeDownloadOK
		} else {
			results[id] = model.OutcomeDownloadFailed
		}

		if onBatch != nil && total > 0 {
			onBatch(processed * 100 / total)
		}
	}
	return results
}

// DownloadAndInstall is the convenience composition used by the UI: it
// short-circuits when the program is already installed, otherwise
// downloads and then launches the installer. Any unexpected fault is
// recovered and reported as a generic failure.
func (c *Coordinator) DownloadAndInstall(id string, onProgress download.ProgressFunc) (ok bool, message string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Str("program", id).
				Msg("unexpected fault during download and install")
			ok = false
			message = fmt.Sprintf("unexpected failure processing %s", id)
		}
	}()

	desc, found := c.store.Get(id)
	if !found {
		return false, fmt.Sprintf("%s not found in catalog", id)
	}

	if c.prober.Status(id, desc).IsInstalled() {
		return true, fmt.Sprintf("%s is already installed", id)
	}

	if !c.DownloadProgram(id, onProgress) {
		return false, fmt.Sprintf("download failed for %s", id)
	}
	if !c.InstallProgram(id) {
		return false, fmt.Sprintf("%s downloaded, but the installer could not be launched", id)
	}
	return true, fmt.Sprintf("%s downloaded and installer launched", id)
}

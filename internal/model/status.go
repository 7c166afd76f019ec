package model

// InstallStatus classifies a program as installed or not, recomputed on
// demand by probing the file system and never persisted.
type InstallStatus string

const (
	// StatusInstalled means an installation marker or executable was found
	StatusInstalled InstallStatus = "Installed"

	// StatusNotInstalled means neither probe location had a match
	StatusNotInstalled InstallStatus = "NotInstalled"
)

// String returns the string representation of InstallStatus
func (is InstallStatus) String() string {
	return string(is)
}

// IsInstalled returns true for StatusInstalled
func (is InstallStatus) IsInstalled() bool {
	return is == StatusInstalled
}

// UpdateOutcome records the per-program result of a batch update pass.
type UpdateOutcome string

const (
	// OutcomeSkipped means the program did not need an update
	OutcomeSkipped UpdateOutcome = "skipped"

	// OutcomeDownloadOK means the installer was fetched successfully
	OutcomeDownloadOK UpdateOutcome = "download_ok"

	// OutcomeDownloadFailed means the download attempt failed
	OutcomeDownloadFailed UpdateOutcome = "download_failed"
)

// String returns the string representation of UpdateOutcome
func (uo UpdateOutcome) String() string {
	return string(uo)
}

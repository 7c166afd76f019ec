package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBaseDir         = "base_directory"
	KeyProgressStep    = "progress_step_percent"
	KeyAutoInstall     = "auto_install_after_download"
	KeyLogLevel        = "log_level"
	KeyConfirmDownload = "confirm_before_download"
)

// Default values
const (
	DefaultProgressStep    = 5
	DefaultAutoInstall     = true
	DefaultLogLevel        = "info"
	DefaultConfirmDownload = true

	MinProgressStep = 1
	MaxProgressStep = 25
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the configured application base directory, or
// "" when the layout should be resolved next to the executable.
func (s *Settings) GetBaseDirectory() string {
	return s.app.Preferences().String(KeyBaseDir)
}

// SetBaseDirectory overrides the application base directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDir, dir)
}

// GetProgressStep returns the percent interval between progress callbacks
func (s *Settings) GetProgressStep() int {
	value := s.app.Preferences().Int(KeyProgressStep)
	if value <= 0 {
		s.SetProgressStep(DefaultProgressStep)
		return DefaultProgressStep
	}
	return value
}

// SetProgressStep sets the percent interval, clamped to a sane range
func (s *Settings) SetProgressStep(step int) {
	if step < MinProgressStep {
		step = MinProgressStep
	}
	if step > MaxProgressStep {
		step = MaxProgressStep
	}
	s.app.Preferences().SetInt(KeyProgressStep, step)
}

// GetAutoInstall returns whether installers launch right after download
func (s *Settings) GetAutoInstall() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoInstall, DefaultAutoInstall)
}

// SetAutoInstall sets whether installers launch right after download
func (s *Settings) SetAutoInstall(auto bool) {
	s.app.Preferences().SetBool(KeyAutoInstall, auto)
}

// GetConfirmDownload returns whether downloads ask for confirmation first
func (s *Settings) GetConfirmDownload() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDownload, DefaultConfirmDownload)
}

// SetConfirmDownload sets whether downloads ask for confirmation first
func (s *Settings) SetConfirmDownload(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDownload, confirm)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

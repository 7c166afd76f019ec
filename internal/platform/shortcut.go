package platform

import "errors"

// ErrShortcutsUnavailable reports that shortcut creation is not supported
// in the current runtime environment.
var ErrShortcutsUnavailable = errors.New("shortcut creation unavailable on this platform")

// ShortcutWriter is the capability for creating installation-marker
// shortcut files. Implementations are injected into the coordinator; the
// default is the explicit unavailable variant, so callers check
// Available once at startup instead of recovering from a failed call.
type ShortcutWriter interface {
	// Available reports whether shortcuts can be created at all.
	Available() bool

	// Create writes a shortcut at shortcutPath pointing to targetPath.
	Create(shortcutPath, targetPath string) error
}

// unavailableShortcuts is the default ShortcutWriter: every Create fails
// with ErrShortcutsUnavailable.
type unavailableShortcuts struct{}

func (unavailableShortcuts) Available() bool { return false }

func (unavailableShortcuts) Create(_, _ string) error {
	return ErrShortcutsUnavailable
}

// NewShortcutWriter returns the shortcut capability for this platform.
// No platform currently bundles a shortcut backend, so the unavailable
// variant is returned everywhere; callers degrade to a logged warning.
func NewShortcutWriter() ShortcutWriter {
	return unavailableShortcuts{}
}

// Package platform contains OS integration glue: launching installers and
// shortcuts as detached processes, directory helpers, and the shortcut
// creation capability with its explicit unavailable variant.
package platform

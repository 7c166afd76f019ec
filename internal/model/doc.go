// Package model defines domain data structures used across the app: program
// descriptors from the catalog, install-status and update-outcome enums, and
// the transient download session snapshot rendered by the UI.
package model

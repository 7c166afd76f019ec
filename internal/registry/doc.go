// Package registry loads the persisted program catalog, materializes the
// default entries on first run, and probes the file system to classify each
// program as installed or not.
package registry

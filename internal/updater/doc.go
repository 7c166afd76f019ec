// Package updater coordinates the per-program update flow: version
// comparison over the catalog, the single active download session,
// installer launching, and the batch update pass. Every public operation
// reports success as a boolean (plus a message where the UI needs one);
// failures are logged in detail and never escape as panics.
package updater

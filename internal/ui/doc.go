// Package ui is the Fyne host surface: the program table with computed
// status and versions, per-program actions, the batch update action, and
// the download progress dialog fed by the coordinator's callbacks.
package ui

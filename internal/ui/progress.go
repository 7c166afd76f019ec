package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ProgressDialog shows one download's progress: percent bar, transferred
// bytes, throughput and elapsed time. Updates must arrive through Update,
// which marshals onto the UI thread.
type ProgressDialog struct {
	dialog *dialog.CustomDialog
	bar    *widget.ProgressBar
	status *widget.Label
	speed  *widget.Label
}

// NewProgressDialog builds the modal progress dialog for a program name.
func NewProgressDialog(window fyne.Window, programName string, onCancel func()) *ProgressDialog {
	p := &ProgressDialog{
		bar:    widget.NewProgressBar(),
		status: widget.NewLabel("Starting download..."),
		speed:  widget.NewLabel(""),
	}

	cancelBtn := widget.NewButton("Cancel", func() {
		if onCancel != nil {
			onCancel()
		}
	})

	content := container.NewVBox(
		widget.NewLabel(programName),
		p.bar,
		p.status,
		p.speed,
		cancelBtn,
	)
	p.dialog = dialog.NewCustomWithoutButtons("Downloading", content, window)
	p.dialog.Resize(fyne.NewSize(420, 200))
	return p
}

// Show displays the dialog.
func (p *ProgressDialog) Show() { p.dialog.Show() }

// Hide dismisses the dialog.
func (p *ProgressDialog) Hide() { fyne.Do(p.dialog.Hide) }

// Update renders one progress callback.
func (p *ProgressDialog) Update(percent int, downloaded, total int64, startedAt time.Time) {
	fyne.Do(func() {
		p.bar.SetValue(float64(percent) / 100)
		if total > 0 {
			p.status.SetText(fmt.Sprintf("%s of %s (%d%%)",
				formatBytes(downloaded), formatBytes(total), percent))
		} else {
			p.status.SetText(formatBytes(downloaded))
		}

		elapsed := time.Since(startedAt)
		if elapsed.Seconds() > 0 {
			rate := float64(downloaded) / elapsed.Seconds()
			p.speed.SetText(fmt.Sprintf("%s/s, %s elapsed",
				formatBytes(int64(rate)), elapsed.Round(time.Second)))
		}
	})
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fiscotools/integrador/internal/envcheck"
	"github.com/fiscotools/integrador/internal/logging"
	"github.com/fiscotools/integrador/internal/model"
	"github.com/fiscotools/integrador/internal/registry"
	"github.com/fiscotools/integrador/internal/updater"
)

// Table layout
const (
	ColProgram = iota
	ColStatus
	ColLocalVersion
	ColAvailableVersion
	colCount
)

var columnHeaders = [colCount]string{"Program", "Status", "Local Version", "Available Version"}

var columnWidths = [colCount]float32{280, 130, 130, 140}

// RootUI represents the main UI structure
type RootUI struct {
	window    fyne.Window
	store     *registry.Store
	prober    *registry.Prober
	coord     *updater.Coordinator
	validator *envcheck.Validator
	log       *logging.Logger

	table *widget.Table
	rows  []model.ProgramRow
}

// NewRootUI creates and initializes the main window content.
func NewRootUI(window fyne.Window, store *registry.Store, prober *registry.Prober, coord *updater.Coordinator, validator *envcheck.Validator, log *logging.Logger) *RootUI {
	ui := &RootUI{
		window:    window,
		store:     store,
		prober:    prober,
		coord:     coord,
		validator: validator,
		log:       log.WithComponent("ui"),
	}

	ui.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(ui.rows), colCount },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row >= len(ui.rows) {
				label.SetText("")
				return
			}
			row := ui.rows[id.Row]
			switch id.Col {
			case ColProgram:
				label.SetText(row.Name)
			case ColStatus:
				label.SetText(statusLabel(row.Status))
			case ColLocalVersion:
				label.SetText(row.LocalVersion)
			case ColAvailableVersion:
				label.SetText(row.AvailableVersion)
			}
		},
	)
	ui.table.CreateHeader = func() fyne.CanvasObject { return widget.NewLabel("") }
	ui.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		if id.Row == -1 && id.Col >= 0 && id.Col < colCount {
			label.SetText(columnHeaders[id.Col])
			return
		}
		label.SetText("")
	}
	for col, width := range columnWidths {
		ui.table.SetColumnWidth(col, width)
	}
	ui.table.OnSelected = func(id widget.TableCellID) {
		ui.table.UnselectAll()
		if id.Row >= 0 && id.Row < len(ui.rows) {
			ui.showActions(ui.rows[id.Row])
		}
	}

	toolbar := container.NewHBox(
		widget.NewButton("Refresh", ui.Refresh),
		widget.NewButton("Update All", ui.updateAll),
		widget.NewButton("Environment", ui.showEnvironmentReport),
	)

	window.SetContent(container.NewBorder(toolbar, nil, nil, nil, ui.table))
	ui.Refresh()
	return ui
}

// Refresh recomputes the table rows from the catalog and probes.
func (ui *RootUI) Refresh() {
	ui.rows = ui.store.ProgramList(ui.prober)
	ui.table.Refresh()
	ui.log.Info().Int("programs", len(ui.rows)).Msg("table refreshed")
}

// showActions opens the per-program action dialog.
func (ui *RootUI) showActions(row model.ProgramRow) {
	var actions *dialog.CustomDialog

	downloadBtn := widget.NewButton("Download and Install", func() {
		actions.Hide()
		ui.downloadAndInstall(row)
	})
	runBtn := widget.NewButton("Run", func() {
		actions.Hide()
		if !ui.coord.RunProgram(row.ID) {
			dialog.ShowInformation("Run", fmt.Sprintf("Could not locate %s.", row.Name), ui.window)
		}
	})
	if !row.Status.IsInstalled() {
		runBtn.Disable()
	}

	content := container.NewVBox(
		widget.NewLabel(row.Description),
		downloadBtn,
		runBtn,
	)
	actions = dialog.NewCustom(row.Name, "Close", content, ui.window)
	actions.Show()
}

// downloadAndInstall runs the convenience flow on a worker goroutine so
// the UI thread never blocks on network I/O.
func (ui *RootUI) downloadAndInstall(row model.ProgramRow) {
	progress := NewProgressDialog(ui.window, row.Name, ui.coord.CancelDownload)
	progress.Show()

	go func() {
		ok, msg := ui.coord.DownloadAndInstall(row.ID,
			func(percent int, downloaded, total int64, startedAt time.Time) {
				progress.Update(percent, downloaded, total, startedAt)
			})
		progress.Hide()

		fyne.Do(func() {
			if ok {
				dialog.ShowInformation(row.Name, msg, ui.window)
			} else {
				dialog.ShowError(fmt.Errorf("%s", msg), ui.window)
			}
			ui.Refresh()
		})
	}()
}

// updateAll downloads every flagged program on a worker goroutine.
func (ui *RootUI) updateAll() {
	go func() {
		results := ui.coord.UpdateAllPrograms(nil)

		downloaded, failed := 0, 0
		for _, outcome := range results {
			switch outcome {
			case model.OutcomeDownloadOK:
				downloaded++
			case model.OutcomeDownloadFailed:
				failed++
			}
		}

		fyne.Do(func() {
			dialog.ShowInformation("Update All",
				fmt.Sprintf("%d downloaded, %d failed, %d up to date.",
					downloaded, failed, len(results)-downloaded-failed),
				ui.window)
			ui.Refresh()
		})
	}()
}

// showEnvironmentReport runs the validators off-thread and shows the text.
func (ui *RootUI) showEnvironmentReport() {
	go func() {
		report := ui.validator.Report()
		fyne.Do(func() {
			label := widget.NewLabel(report)
			dialog.ShowCustom("Environment", "Close", label, ui.window)
		})
	}()
}

// statusLabel renders an install status for the table.
func statusLabel(status model.InstallStatus) string {
	if status.IsInstalled() {
		return "Installed"
	}
	return "Not installed"
}

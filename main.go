package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fiscotools/integrador/internal/config"
	"github.com/fiscotools/integrador/internal/download"
	"github.com/fiscotools/integrador/internal/envcheck"
	"github.com/fiscotools/integrador/internal/logging"
	"github.com/fiscotools/integrador/internal/paths"
	"github.com/fiscotools/integrador/internal/registry"
	"github.com/fiscotools/integrador/internal/ui"
	"github.com/fiscotools/integrador/internal/updater"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fiscotools.integrador"
	AppName = "Integrador Receita"

	WindowWidth  = 900
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	layout, err := paths.New(settings.GetBaseDirectory())
	if err != nil {
		fmt.Printf("failed to prepare directory layout: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level: settings.GetLogLevel(),
		Dir:   layout.LogsDir(),
	})
	defer log.Close()

	log.Info().
		Str("version", version).
		Str("base", layout.BaseDir()).
		Msg("application starting")

	// Wire the core: catalog store, prober, downloader, coordinator.
	store := registry.NewStore(layout.CatalogFile(), log)
	prober := registry.NewProber(layout.ShortcutsDir(), layout.ProgramsDir(), log)
	downloader := download.NewDownloader(log, settings.GetProgressStep())
	coord := updater.NewCoordinator(store, prober, downloader, layout.DownloadsDir(), log)
	validator := envcheck.NewValidator(layout.BaseDir(), log)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, store, prober, coord, validator, log)

	myWindow.ShowAndRun()

	log.Info().Msg("application stopped")
}

package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	streamapp "github.com/ytget/stream-grabber/internal/app"
	"github.com/ytget/stream-grabber/internal/config"
	"github.com/ytget/stream-grabber/internal/platform"
	"github.com/ytget/stream-grabber/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.stream-grabber"
	AppName = "Stream Grabber"

	WindowWidth  = 750
	WindowHeight = 500
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIcon())
	myApp.Settings().SetTheme(ui.NewTerminalTheme())

	settings := config.NewSettings(myApp)
	if err := streamapp.SetupLogger(settings.GetLogLevel(), config.DefaultLogFile); err != nil {
		fmt.Printf("failed to set up logger: %v\n", err)
	}
	slog.Info("starting", "app", AppName, "version", version)

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		slog.Warn("failed to ensure downloads dir", "dir", downloadsDir, "error", err)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewControlPanel(myWindow, myApp, func(opts config.Options) ui.Worker {
		return streamapp.NewMonitor(opts)
	}, settings)

	myWindow.ShowAndRun()
	slog.Info("exiting")
}

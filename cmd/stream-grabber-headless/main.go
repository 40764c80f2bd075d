package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/stream-grabber/internal/app"
	"github.com/ytget/stream-grabber/internal/config"
	"github.com/ytget/stream-grabber/internal/model"
	"github.com/ytget/stream-grabber/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	opts := config.LoadEnv()

	if err := app.SetupLogger(opts.LogLevel, opts.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		os.Exit(1)
	}
	slog.Info("starting headless monitor", "version", version, "download_dir", opts.DownloadDir, "poll_interval", opts.PollInterval)

	if err := platform.CreateDirectoryIfNotExists(opts.DownloadDir); err != nil {
		slog.Error("failed to create downloads dir", "dir", opts.DownloadDir, "error", err)
		os.Exit(1)
	}

	m := app.NewMonitor(opts)
	m.SetTrackCallback(func(url string) {
		fmt.Println(url)
	})
	m.SetStatusCallback(func(t *model.Track) {
		if t.Status.IsFinished() {
			slog.Info("track finished", "url", t.URL, "status", t.Status, "output", t.OutputPath, "error", t.LastError)
		}
	})
	slog.Info("monitor session", "id", m.ID())
	m.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		m.StopAndWait()
		printSummary(os.Stdout, m.Tracks())
	case <-m.Done():
		slog.Warn("monitor exited on its own")
		printSummary(os.Stdout, m.Tracks())
		os.Exit(1)
	}
}

// printSummary reports what this session downloaded
func printSummary(w io.Writer, tracks []*model.Track) {
	completed, failed, unfinished := 0, 0, 0
	for _, t := range tracks {
		switch {
		case !t.Status.IsFinished():
			unfinished++
		case t.Status == model.TrackStatusCompleted:
			completed++
			fmt.Fprintf(w, "downloaded: %s\n", t.OutputPath)
		default:
			failed++
			fmt.Fprintf(w, "failed:     %s (%s)\n", t.URL, t.LastError)
		}
	}
	fmt.Fprintf(w, "%d tracks: %d downloaded, %d failed, %d unfinished\n", len(tracks), completed, failed, unfinished)
}

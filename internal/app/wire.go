package app

import (
	"context"

	"github.com/ytget/stream-grabber/internal/browser"
	"github.com/ytget/stream-grabber/internal/config"
	"github.com/ytget/stream-grabber/internal/download"
	"github.com/ytget/stream-grabber/internal/monitor"
)

// NewMonitor builds an idle monitor backed by Chrome and yt-dlp
func NewMonitor(opts config.Options) *monitor.Monitor {
	cfg := BrowserConfig(opts)
	opener := monitor.SessionOpenerFunc(func(ctx context.Context) (monitor.Session, error) {
		s, err := browser.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	})

	return newMonitor(opts, opener, download.NewService(DownloadOptions(opts)))
}

// newMonitor connects the download service's per-track updates to the monitor
func newMonitor(opts config.Options, opener monitor.SessionOpener, dl *download.Service) *monitor.Monitor {
	m := monitor.New(opener, dl, monitor.Options{
		StartURL:     opts.StartURL,
		PollInterval: opts.PollInterval,
	})
	dl.SetUpdateCallback(m.UpdateTrack)
	return m
}

// BrowserConfig maps runtime options onto browser launch settings
func BrowserConfig(opts config.Options) browser.Config {
	return browser.Config{
		BrowserPath: opts.BrowserPath,
		ProfileDir:  opts.ProfileDir,
		ProfileName: opts.ProfileName,
		StartURL:    opts.StartURL,
		Headless:    opts.Headless,
	}
}

// DownloadOptions maps runtime options onto download settings
func DownloadOptions(opts config.Options) download.Options {
	return download.Options{
		Dir:          opts.DownloadDir,
		Format:       config.DefaultAudioSelector,
		AudioFormat:  config.DefaultAudioFormat,
		AudioQuality: opts.AudioQuality,
		EmbedTags:    opts.EmbedTags,
	}
}

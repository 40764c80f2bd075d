package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	opts := LoadEnv()

	if opts.DownloadDir != DefaultDownloadDir {
		t.Errorf("Expected DownloadDir %s, got %s", DefaultDownloadDir, opts.DownloadDir)
	}
	if opts.PollInterval != DefaultPollInterval {
		t.Errorf("Expected PollInterval %s, got %s", DefaultPollInterval, opts.PollInterval)
	}
	if opts.AudioQuality != DefaultAudioQuality {
		t.Errorf("Expected AudioQuality %s, got %s", DefaultAudioQuality, opts.AudioQuality)
	}
	if opts.StartURL != DefaultStartURL {
		t.Errorf("Expected StartURL %s, got %s", DefaultStartURL, opts.StartURL)
	}
	if opts.ProfileDir == "" {
		t.Error("Expected a default profile directory")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STREAM_GRABBER_DOWNLOAD_DIR", "/data/music")
	t.Setenv("STREAM_GRABBER_POLL_INTERVAL", "15s")
	t.Setenv("STREAM_GRABBER_AUDIO_QUALITY", "192K")
	t.Setenv("STREAM_GRABBER_HEADLESS", "true")
	t.Setenv("STREAM_GRABBER_EMBED_TAGS", "false")

	opts := LoadEnv()

	if opts.DownloadDir != "/data/music" {
		t.Errorf("Expected DownloadDir /data/music, got %s", opts.DownloadDir)
	}
	if opts.PollInterval != 15*time.Second {
		t.Errorf("Expected PollInterval 15s, got %s", opts.PollInterval)
	}
	if opts.AudioQuality != "192K" {
		t.Errorf("Expected AudioQuality 192K, got %s", opts.AudioQuality)
	}
	if !opts.Headless {
		t.Error("Expected Headless to be true")
	}
	if opts.EmbedTags {
		t.Error("Expected EmbedTags to be false")
	}
}

func TestLoadEnvInvalidValues(t *testing.T) {
	t.Setenv("STREAM_GRABBER_POLL_INTERVAL", "1")
	t.Setenv("STREAM_GRABBER_AUDIO_QUALITY", "lossless")
	t.Setenv("STREAM_GRABBER_HEADLESS", "maybe")

	opts := LoadEnv()

	if opts.PollInterval != MinPollInterval {
		t.Errorf("Expected PollInterval clamped to %s, got %s", MinPollInterval, opts.PollInterval)
	}
	if opts.AudioQuality != DefaultAudioQuality {
		t.Errorf("Expected AudioQuality %s, got %s", DefaultAudioQuality, opts.AudioQuality)
	}
	if opts.Headless {
		t.Error("Unparseable bool should fall back to false")
	}
}

func TestClampPollInterval(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected time.Duration
	}{
		{0, MinPollInterval},
		{time.Second, MinPollInterval},
		{10 * time.Second, 10 * time.Second},
		{time.Hour, MaxPollInterval},
	}

	for _, test := range tests {
		if got := ClampPollInterval(test.in); got != test.expected {
			t.Errorf("ClampPollInterval(%s) = %s, expected %s", test.in, got, test.expected)
		}
	}
}

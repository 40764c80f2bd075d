package config

import "time"

// Default values shared by the GUI settings and the headless environment loader
const (
	DefaultDownloadDir   = "downloads"
	DefaultPollInterval  = 10 * time.Second
	DefaultAudioFormat   = "mp3"
	DefaultAudioQuality  = "320K"
	DefaultAudioSelector = "bestaudio/best"
	DefaultStartURL      = "https://soundcloud.com/stream"
	DefaultProfileName   = "Default"
	DefaultEmbedTags     = true
	DefaultLanguage      = "system"
	DefaultLogLevel      = "info"
	DefaultLogFile       = "logs/stream-grabber.log"
)

// Poll interval bounds
const (
	MinPollInterval = 2 * time.Second
	MaxPollInterval = 120 * time.Second
)

// AudioQualityOptions lists the transcode bitrates offered in settings
var AudioQualityOptions = []string{"128K", "192K", "256K", "320K"}

// Options is the resolved runtime configuration for one monitoring session
type Options struct {
	DownloadDir  string
	PollInterval time.Duration
	AudioQuality string
	StartURL     string

	BrowserPath string
	ProfileDir  string
	ProfileName string
	Headless    bool

	EmbedTags bool

	LogLevel string
	LogFile  string
}

// ClampPollInterval keeps the poll interval within [MinPollInterval, MaxPollInterval]
func ClampPollInterval(d time.Duration) time.Duration {
	if d < MinPollInterval {
		return MinPollInterval
	}
	if d > MaxPollInterval {
		return MaxPollInterval
	}
	return d
}

// IsValidAudioQuality reports whether q is one of AudioQualityOptions
func IsValidAudioQuality(q string) bool {
	for _, opt := range AudioQualityOptions {
		if opt == q {
			return true
		}
	}
	return false
}

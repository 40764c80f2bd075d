package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/stream-grabber/internal/platform"
)

// LoadEnv reads options from environment variables and an optional .env file.
// It backs the headless command, which has no Fyne preferences store.
func LoadEnv() Options {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	quality := getEnvOrDefault("STREAM_GRABBER_AUDIO_QUALITY", DefaultAudioQuality)
	if !IsValidAudioQuality(quality) {
		slog.Warn("unsupported audio quality, using default", "value", quality, "default", DefaultAudioQuality)
		quality = DefaultAudioQuality
	}

	return Options{
		DownloadDir:  getEnvOrDefault("STREAM_GRABBER_DOWNLOAD_DIR", DefaultDownloadDir),
		PollInterval: ClampPollInterval(getEnvDurationOrDefault("STREAM_GRABBER_POLL_INTERVAL", DefaultPollInterval)),
		AudioQuality: quality,
		StartURL:     getEnvOrDefault("STREAM_GRABBER_START_URL", DefaultStartURL),
		BrowserPath:  getEnvOrDefault("STREAM_GRABBER_BROWSER_PATH", ""),
		ProfileDir:   getEnvOrDefault("STREAM_GRABBER_PROFILE_DIR", platform.DefaultProfileDir()),
		ProfileName:  getEnvOrDefault("STREAM_GRABBER_PROFILE_NAME", DefaultProfileName),
		Headless:     getEnvBoolOrDefault("STREAM_GRABBER_HEADLESS", false),
		EmbedTags:    getEnvBoolOrDefault("STREAM_GRABBER_EMBED_TAGS", DefaultEmbedTags),
		LogLevel:     getEnvOrDefault("STREAM_GRABBER_LOG_LEVEL", DefaultLogLevel),
		LogFile:      getEnvOrDefault("STREAM_GRABBER_LOG_FILE", DefaultLogFile),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvDurationOrDefault accepts Go durations ("15s") or plain seconds ("15")
func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

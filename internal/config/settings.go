package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/stream-grabber/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir  = "download_directory"
	KeyPollInterval = "poll_interval_seconds"
	KeyAudioQuality = "audio_quality"
	KeyStartURL     = "start_url"
	KeyBrowserPath  = "browser_path"
	KeyProfileDir   = "profile_directory"
	KeyEmbedTags    = "embed_id3_tags"
	KeyLanguage     = "app_language"
	KeyLogLevel     = "log_level"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		s.SetDownloadDirectory(DefaultDownloadDir)
		return DefaultDownloadDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetPollInterval returns the delay between two player polls
func (s *Settings) GetPollInterval() time.Duration {
	seconds := s.app.Preferences().Int(KeyPollInterval)
	if seconds <= 0 {
		s.SetPollInterval(DefaultPollInterval)
		return DefaultPollInterval
	}
	return ClampPollInterval(time.Duration(seconds) * time.Second)
}

// SetPollInterval sets the poll interval, clamped to the supported range
func (s *Settings) SetPollInterval(d time.Duration) {
	d = ClampPollInterval(d)
	s.app.Preferences().SetInt(KeyPollInterval, int(d/time.Second))
}

// GetAudioQuality returns the transcode bitrate passed to the extractor
func (s *Settings) GetAudioQuality() string {
	q := s.app.Preferences().String(KeyAudioQuality)
	if !IsValidAudioQuality(q) {
		s.SetAudioQuality(DefaultAudioQuality)
		return DefaultAudioQuality
	}
	return q
}

// SetAudioQuality sets the transcode bitrate; unknown values fall back to the default
func (s *Settings) SetAudioQuality(q string) {
	if !IsValidAudioQuality(q) {
		q = DefaultAudioQuality
	}
	s.app.Preferences().SetString(KeyAudioQuality, q)
}

// GetStartURL returns the page opened after the browser launches
func (s *Settings) GetStartURL() string {
	return s.app.Preferences().StringWithFallback(KeyStartURL, DefaultStartURL)
}

// SetStartURL sets the page opened after the browser launches
func (s *Settings) SetStartURL(url string) {
	if url == "" {
		url = DefaultStartURL
	}
	s.app.Preferences().SetString(KeyStartURL, url)
}

// GetBrowserPath returns the Chrome binary; empty means auto-detect
func (s *Settings) GetBrowserPath() string {
	return s.app.Preferences().String(KeyBrowserPath)
}

// SetBrowserPath sets the Chrome binary path
func (s *Settings) SetBrowserPath(path string) {
	s.app.Preferences().SetString(KeyBrowserPath, path)
}

// GetProfileDirectory returns the persistent Chrome user-data directory
func (s *Settings) GetProfileDirectory() string {
	dir := s.app.Preferences().String(KeyProfileDir)
	if dir == "" {
		dir = platform.DefaultProfileDir()
		s.SetProfileDirectory(dir)
	}
	return dir
}

// SetProfileDirectory sets the persistent Chrome user-data directory
func (s *Settings) SetProfileDirectory(dir string) {
	s.app.Preferences().SetString(KeyProfileDir, dir)
}

// GetEmbedTags returns whether artist/title are written into the MP3 file
func (s *Settings) GetEmbedTags() bool {
	return s.app.Preferences().BoolWithFallback(KeyEmbedTags, DefaultEmbedTags)
}

// SetEmbedTags sets whether artist/title are written into the MP3 file
func (s *Settings) SetEmbedTags(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedTags, embed)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the slog level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options snapshots the current preferences for a new monitoring session
func (s *Settings) Options() Options {
	return Options{
		DownloadDir:  s.GetDownloadDirectory(),
		PollInterval: s.GetPollInterval(),
		AudioQuality: s.GetAudioQuality(),
		StartURL:     s.GetStartURL(),
		BrowserPath:  s.GetBrowserPath(),
		ProfileDir:   s.GetProfileDirectory(),
		ProfileName:  DefaultProfileName,
		EmbedTags:    s.GetEmbedTags(),
		LogLevel:     s.GetLogLevel(),
		LogFile:      DefaultLogFile,
	}
}

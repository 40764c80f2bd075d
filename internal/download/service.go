package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ytget/stream-grabber/internal/model"
	"github.com/ytget/stream-grabber/internal/platform"
)

// Fallbacks used when the extractor does not report a title or uploader
const (
	UnknownTitle  = "UnknownTitle"
	UnknownArtist = "UnknownArtist"
)

// Options configures output location and transcode settings
type Options struct {
	Dir          string
	Format       string // yt-dlp format selector
	AudioFormat  string // transcode target, also the file extension
	AudioQuality string // transcode bitrate, e.g. "320K"
	EmbedTags    bool
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "downloads"
	}
	if o.Format == "" {
		o.Format = "bestaudio/best"
	}
	if o.AudioFormat == "" {
		o.AudioFormat = "mp3"
	}
	if o.AudioQuality == "" {
		o.AudioQuality = "320K"
	}
	return o
}

// Service handles download operations. Downloads are one-shot: a failure is
// reported to the caller and never retried.
type Service struct {
	opts      Options
	extractor Extractor

	mu       sync.Mutex
	onUpdate func(*model.Track) // callback for UI updates
}

// NewService creates a download service backed by yt-dlp
func NewService(opts Options) *Service {
	opts = opts.withDefaults()
	return NewServiceWithExtractor(opts, NewYTDLPExtractor(opts.Format, opts.AudioFormat, opts.AudioQuality))
}

// NewServiceWithExtractor creates a download service with a custom extractor
func NewServiceWithExtractor(opts Options, extractor Extractor) *Service {
	return &Service{
		opts:      opts.withDefaults(),
		extractor: extractor,
	}
}

// SetUpdateCallback sets the callback function for track updates
func (s *Service) SetUpdateCallback(callback func(*model.Track)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Download looks up metadata for url, names the file "<artist> - <title>" and
// fetches the transcoded audio into the output directory.
func (s *Service) Download(ctx context.Context, url string) (*model.Track, error) {
	track := model.NewTrack(url)
	track.Status = model.TrackStatusDownloading
	s.notifyUpdate(track)

	if err := platform.CreateDirectoryIfNotExists(s.opts.Dir); err != nil {
		return s.fail(track, fmt.Errorf("create output dir: %w", err))
	}

	meta, err := s.extractor.Lookup(ctx, url)
	if err != nil {
		return s.fail(track, fmt.Errorf("lookup metadata: %w", err))
	}

	track.Title = fallback(meta.Title, UnknownTitle)
	track.Artist = fallback(meta.Uploader, UnknownArtist)
	track.FileName = BuildFileName(track.Artist, track.Title)
	track.OutputPath = filepath.Join(s.opts.Dir, track.FileName+"."+s.opts.AudioFormat)
	s.notifyUpdate(track)

	slog.Info("fetching track", "url", url, "output", track.OutputPath)
	if err := s.extractor.Fetch(ctx, url, s.outputTemplate(track.FileName)); err != nil {
		return s.fail(track, fmt.Errorf("fetch audio: %w", err))
	}

	if s.opts.EmbedTags && s.opts.AudioFormat == "mp3" {
		if err := embedID3Tags(track.OutputPath, track.Title, track.Artist); err != nil {
			slog.Warn("id3 tagging failed", "path", track.OutputPath, "error", err)
		}
	}

	track.Status = model.TrackStatusCompleted
	track.FinishedAt = time.Now()
	s.notifyUpdate(track)

	return track, nil
}

// BuildFileName returns the sanitized "<artist> - <title>" base name
func BuildFileName(artist, title string) string {
	return platform.SanitizeFilename(fmt.Sprintf("%s - %s", artist, title))
}

// outputTemplate is a yt-dlp output template; a literal % in the name must be
// doubled so yt-dlp does not treat it as a field reference.
func (s *Service) outputTemplate(fileName string) string {
	escaped := strings.ReplaceAll(fileName, "%", "%%")
	return filepath.Join(s.opts.Dir, escaped+".%(ext)s")
}

func (s *Service) fail(track *model.Track, err error) (*model.Track, error) {
	track.Status = model.TrackStatusError
	track.LastError = err.Error()
	track.FinishedAt = time.Now()
	if errors.Is(err, context.Canceled) {
		slog.Info("download cancelled", "url", track.URL)
	} else {
		slog.Error("download failed", "url", track.URL, "error", err)
	}
	s.notifyUpdate(track)
	return track, err
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(track *model.Track) {
	s.mu.Lock()
	cb := s.onUpdate
	s.mu.Unlock()

	if cb != nil {
		cb(track.Clone())
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

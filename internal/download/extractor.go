package download

import (
	"context"
	"errors"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
)

// YTDLPExtractor runs yt-dlp for probing and fetching.
type YTDLPExtractor struct {
	format       string
	audioFormat  string
	audioQuality string
}

// NewYTDLPExtractor creates an extractor that fetches format and transcodes
// it to audioFormat at audioQuality (e.g. "bestaudio/best", "mp3", "320K").
func NewYTDLPExtractor(format, audioFormat, audioQuality string) *YTDLPExtractor {
	return &YTDLPExtractor{
		format:       format,
		audioFormat:  audioFormat,
		audioQuality: audioQuality,
	}
}

// Lookup asks yt-dlp for a single JSON document describing url without downloading
func (e *YTDLPExtractor) Lookup(ctx context.Context, url string) (*Metadata, error) {
	result, err := ytdlp.New().
		NoPlaylist().
		SkipDownload().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, err
	}

	return metadataFromResult(result)
}

// Fetch downloads the best audio stream and lets yt-dlp's ffmpeg postprocessor
// transcode it
func (e *YTDLPExtractor) Fetch(ctx context.Context, url, outputTemplate string) error {
	_, err := ytdlp.New().
		NoPlaylist().
		ForceOverwrites().
		Format(e.format).
		ExtractAudio().
		AudioFormat(e.audioFormat).
		AudioQuality(e.audioQuality).
		Output(outputTemplate).
		Run(ctx, url)
	return err
}

// metadataFromResult reads title and uploader from the extracted info yt-dlp printed
func metadataFromResult(result *ytdlp.Result) (*Metadata, error) {
	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if len(info) == 0 {
		return nil, errors.New("no metadata in yt-dlp output")
	}

	return &Metadata{
		Title:    deref(info[0].Title),
		Uploader: deref(info[0].Uploader),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

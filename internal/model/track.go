package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Track represents one playable item picked up from the player widget.
// URL is the identity; everything else is filled in by the download service.
type Track struct {
	URL          string
	Title        string      // title reported by the extractor
	Artist       string      // uploader reported by the extractor
	FileName     string      // sanitized "<artist> - <title>" without extension
	OutputPath   string      // path to the transcoded audio file
	Status       TrackStatus
	LastError    string      // last error message if any
	DiscoveredAt time.Time
	FinishedAt   time.Time
}

// NewTrack creates a track record for a freshly discovered URL
func NewTrack(url string) *Track {
	return &Track{
		URL:          url,
		Status:       TrackStatusDiscovered,
		DiscoveredAt: time.Now(),
	}
}

// DisplayName returns "Artist - Title", the output file name, or the URL in order of preference
func (t *Track) DisplayName() string {
	if t.Title != "" && t.Artist != "" {
		return t.Artist + " - " + t.Title
	}
	if t.Title != "" {
		return t.Title
	}

	if t.OutputPath != "" {
		name := filepath.Base(t.OutputPath)
		return strings.TrimSuffix(name, filepath.Ext(name))
	}

	return t.URL
}

// Clone returns a copy that is safe to hand to another goroutine
func (t *Track) Clone() *Track {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

package model

import (
	"testing"
	"time"
)

func TestTrack_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		track    Track
		expected string
	}{
		{"artist and title", Track{Title: "Night Drive", Artist: "Kavinsky", URL: "https://soundcloud.com/a/b"}, "Kavinsky - Night Drive"},
		{"title only", Track{Title: "Night Drive", URL: "https://soundcloud.com/a/b"}, "Night Drive"},
		{"output path", Track{OutputPath: "/tmp/downloads/Kavinsky - Nightcall.mp3", URL: "https://soundcloud.com/a/b"}, "Kavinsky - Nightcall"},
		{"url fallback", Track{URL: "https://soundcloud.com/a/b"}, "https://soundcloud.com/a/b"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.track.DisplayName(); got != test.expected {
				t.Errorf("DisplayName() = '%s', expected '%s'", got, test.expected)
			}
		})
	}
}

func TestNewTrack(t *testing.T) {
	before := time.Now()
	track := NewTrack("https://soundcloud.com/artist/song")

	if track.URL != "https://soundcloud.com/artist/song" {
		t.Errorf("Expected URL to be set, got '%s'", track.URL)
	}
	if track.Status != TrackStatusDiscovered {
		t.Errorf("Expected status %s, got %s", TrackStatusDiscovered, track.Status)
	}
	if track.DiscoveredAt.Before(before) {
		t.Errorf("Expected DiscoveredAt to be set to now, got %v", track.DiscoveredAt)
	}
}

func TestTrack_Clone(t *testing.T) {
	original := &Track{URL: "https://soundcloud.com/a/b", Title: "Song"}
	clone := original.Clone()

	clone.Title = "Changed"
	if original.Title != "Song" {
		t.Errorf("Clone shares state with original: title is '%s'", original.Title)
	}

	var nilTrack *Track
	if nilTrack.Clone() != nil {
		t.Error("Expected nil clone for nil track")
	}
}

package browser

import (
	"strings"
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	if cfg.TrackSelector != DefaultTrackSelector {
		t.Errorf("TrackSelector = %q; want %q", cfg.TrackSelector, DefaultTrackSelector)
	}
	if cfg.ProfileName != "Default" {
		t.Errorf("ProfileName = %q; want Default", cfg.ProfileName)
	}
	if cfg.ProfileDir == "" {
		t.Error("ProfileDir should default to the home profile directory")
	}
	if cfg.WindowWidth != DefaultWindowWidth || cfg.WindowHeight != DefaultWindowHeight {
		t.Errorf("window = %dx%d; want %dx%d", cfg.WindowWidth, cfg.WindowHeight, DefaultWindowWidth, DefaultWindowHeight)
	}
	if cfg.LookupTimeout != DefaultLookupTimeout {
		t.Errorf("LookupTimeout = %s; want %s", cfg.LookupTimeout, DefaultLookupTimeout)
	}
}

func TestConfigWithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		ProfileDir:    "/tmp/profile",
		ProfileName:   "Profile 2",
		TrackSelector: "a.custom",
		WindowWidth:   800,
		WindowHeight:  600,
		LookupTimeout: time.Second,
	}.withDefaults()

	if cfg.ProfileDir != "/tmp/profile" || cfg.ProfileName != "Profile 2" || cfg.TrackSelector != "a.custom" {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
	if cfg.WindowWidth != 800 || cfg.WindowHeight != 600 || cfg.LookupTimeout != time.Second {
		t.Fatalf("explicit sizes overwritten: %+v", cfg)
	}
}

func TestTrackLookupJS(t *testing.T) {
	js := trackLookupJS(DefaultTrackSelector)

	if !strings.Contains(js, `document.querySelector("a.playbackSoundBadge__titleLink")`) {
		t.Fatalf("lookup expression does not query the player link: %s", js)
	}
	if !strings.Contains(js, `return "";`) {
		t.Fatalf("lookup expression must fall back to empty string: %s", js)
	}
}

func TestTrackLookupJSEscapesSelector(t *testing.T) {
	js := trackLookupJS(`a[title="x"]`)

	if !strings.Contains(js, `"a[title=\"x\"]"`) {
		t.Fatalf("selector quotes not escaped: %s", js)
	}
}

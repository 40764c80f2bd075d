package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/stream-grabber/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(a)
	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()

	if sd.pollIntervalEntry.Text != "10" {
		t.Errorf("Expected poll interval 10, got %q", sd.pollIntervalEntry.Text)
	}
	if sd.qualitySelect.Selected != config.DefaultAudioQuality {
		t.Errorf("Expected quality %s, got %s", config.DefaultAudioQuality, sd.qualitySelect.Selected)
	}

	sd.downloadDirEntry.SetText("/tmp/music")
	sd.pollIntervalEntry.SetText("500")
	sd.qualitySelect.SetSelected("192K")
	sd.browserPathEntry.SetText("  ")
	sd.embedTagsCheck.SetChecked(false)
	sd.languageSelect.SetSelected("pt")
	sd.save()

	if got := settings.GetDownloadDirectory(); got != "/tmp/music" {
		t.Errorf("Expected download dir /tmp/music, got %s", got)
	}
	if got := settings.GetPollInterval(); got != config.MaxPollInterval {
		t.Errorf("Expected poll interval clamped to %v, got %v", config.MaxPollInterval, got)
	}
	if got := settings.GetAudioQuality(); got != "192K" {
		t.Errorf("Expected quality 192K, got %s", got)
	}
	if got := settings.GetBrowserPath(); got != "" {
		t.Errorf("Expected empty browser path, got %q", got)
	}
	if settings.GetEmbedTags() {
		t.Error("Expected ID3 tagging disabled")
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected language pt, got %s", got)
	}
}

func TestSettingsDialog_InvalidPollIntervalKeepsValue(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(a)
	settings.SetPollInterval(30 * time.Second)

	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()
	sd.pollIntervalEntry.SetText("soon")
	sd.save()

	if got := settings.GetPollInterval(); got != 30*time.Second {
		t.Errorf("Expected poll interval unchanged at 30s, got %v", got)
	}
}

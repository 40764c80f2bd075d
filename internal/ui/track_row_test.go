package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/stream-grabber/internal/model"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		status     model.TrackStatus
		icon       string
		importance widget.Importance
	}{
		{model.TrackStatusDiscovered, IconPending, widget.MediumImportance},
		{model.TrackStatusDownloading, IconDownloading, widget.HighImportance},
		{model.TrackStatusCompleted, IconDone, widget.SuccessImportance},
		{model.TrackStatusError, IconError, widget.DangerImportance},
	}

	for _, tt := range tests {
		icon, importance := statusText(tt.status)
		if icon != tt.icon || importance != tt.importance {
			t.Errorf("statusText(%s) = %s/%v, expected %s/%v", tt.status, icon, importance, tt.icon, tt.importance)
		}
	}
}

func TestTrackRow_SetTrack(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	row := NewTrackRow()
	track := model.NewTrack("https://soundcloud.com/a/1")
	row.SetTrack(track)

	if row.textLabel.Text != "https://soundcloud.com/a/1" {
		t.Errorf("Expected URL only before metadata, got %q", row.textLabel.Text)
	}
	if row.statusLabel.Text != IconPending {
		t.Errorf("Expected pending icon, got %q", row.statusLabel.Text)
	}

	row.SetTrack(nil)
	if row.textLabel.Text != "" {
		t.Errorf("Expected empty row for nil track, got %q", row.textLabel.Text)
	}
}

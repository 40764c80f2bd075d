package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/stream-grabber/internal/model"
)

// TrackRow shows one discovered track: its status and URL, plus the
// "Artist - Title" name once the extractor reported it.
type TrackRow struct {
	widget.BaseWidget

	track *model.Track

	statusLabel *widget.Label
	textLabel   *widget.Label
}

// NewTrackRow creates an empty row for list templates
func NewTrackRow() *TrackRow {
	tr := &TrackRow{
		statusLabel: widget.NewLabel(""),
		textLabel:   widget.NewLabel(""),
	}
	tr.textLabel.Truncation = fyne.TextTruncateEllipsis
	tr.ExtendBaseWidget(tr)
	return tr
}

// SetTrack renders t into the row
func (tr *TrackRow) SetTrack(t *model.Track) {
	tr.track = t
	if t == nil {
		tr.statusLabel.SetText("")
		tr.textLabel.SetText("")
		return
	}

	text, importance := statusText(t.Status)
	tr.statusLabel.Importance = importance
	tr.statusLabel.SetText(text)
	tr.textLabel.SetText(trackRowText(t))
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, tr.statusLabel, nil, tr.textLabel))
}

func statusText(status model.TrackStatus) (string, widget.Importance) {
	switch {
	case status.IsActive():
		return IconDownloading, widget.HighImportance
	case status == model.TrackStatusCompleted:
		return IconDone, widget.SuccessImportance
	case status == model.TrackStatusError:
		return IconError, widget.DangerImportance
	default:
		return IconPending, widget.MediumImportance
	}
}

// trackRowText is the URL, followed by the track name once known
func trackRowText(t *model.Track) string {
	if t.Title == "" {
		return t.URL
	}
	return t.URL + MiddleDotSeparator + t.DisplayName()
}

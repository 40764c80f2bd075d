package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/stream-grabber/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry  *widget.Entry
	pollIntervalEntry *widget.Entry
	qualitySelect     *widget.Select
	startURLEntry     *widget.Entry
	profileDirEntry   *widget.Entry
	browserPathEntry  *widget.Entry
	embedTagsCheck    *widget.Check
	languageSelect    *widget.Select
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), func() { sd.browseInto(sd.downloadDirEntry) })
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.pollIntervalEntry = widget.NewEntry()
	sd.pollIntervalEntry.SetPlaceHolder(strconv.Itoa(int(config.MinPollInterval.Seconds())) + "-" +
		strconv.Itoa(int(config.MaxPollInterval.Seconds())))

	sd.qualitySelect = widget.NewSelect(config.AudioQualityOptions, nil)

	sd.startURLEntry = widget.NewEntry()
	sd.startURLEntry.SetPlaceHolder(config.DefaultStartURL)

	sd.profileDirEntry = widget.NewEntry()
	browseProfileBtn := widget.NewButton(l.GetText(KeyBrowse), func() { sd.browseInto(sd.profileDirEntry) })
	profileDirRow := container.NewBorder(nil, nil, nil, browseProfileBtn, sd.profileDirEntry)

	sd.browserPathEntry = widget.NewEntry()
	sd.browserPathEntry.SetPlaceHolder(l.GetText(KeyAutoDetect))

	sd.embedTagsCheck = widget.NewCheck(l.GetText(KeyEmbedTags), nil)

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(l.GetText(KeyPollInterval)+":"),
		sd.pollIntervalEntry,

		widget.NewLabel(l.GetText(KeyAudioQuality)+":"),
		sd.qualitySelect,
		sd.embedTagsCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyStartURL)+":"),
		sd.startURLEntry,

		widget.NewLabel(l.GetText(KeyProfileDirectory)+":"),
		profileDirRow,

		widget.NewLabel(l.GetText(KeyBrowserPath)+":"),
		sd.browserPathEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.pollIntervalEntry.SetText(strconv.Itoa(int(sd.settings.GetPollInterval().Seconds())))
	sd.qualitySelect.SetSelected(sd.settings.GetAudioQuality())
	sd.startURLEntry.SetText(sd.settings.GetStartURL())
	sd.profileDirEntry.SetText(sd.settings.GetProfileDirectory())
	sd.browserPathEntry.SetText(sd.settings.GetBrowserPath())
	sd.embedTagsCheck.SetChecked(sd.settings.GetEmbedTags())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) browseInto(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the form values; empty or unparsable fields keep the stored value
func (sd *SettingsDialog) save() {
	if dir := strings.TrimSpace(sd.downloadDirEntry.Text); dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if secs, err := strconv.Atoi(strings.TrimSpace(sd.pollIntervalEntry.Text)); err == nil {
		sd.settings.SetPollInterval(time.Duration(secs) * time.Second)
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetAudioQuality(sd.qualitySelect.Selected)
	}

	if u := strings.TrimSpace(sd.startURLEntry.Text); u != "" {
		sd.settings.SetStartURL(u)
	}

	if dir := strings.TrimSpace(sd.profileDirEntry.Text); dir != "" {
		sd.settings.SetProfileDirectory(dir)
	}

	// Empty browser path means auto-detect
	sd.settings.SetBrowserPath(strings.TrimSpace(sd.browserPathEntry.Text))

	sd.settings.SetEmbedTags(sd.embedTagsCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

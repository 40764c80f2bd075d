package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/stream-grabber/internal/config"
	"github.com/ytget/stream-grabber/internal/model"
	"github.com/ytget/stream-grabber/internal/platform"
)

// Worker is the monitor lifecycle the panel drives
type Worker interface {
	SetTrackCallback(func(url string))
	SetLogCallback(func(msg string))
	SetStatusCallback(func(*model.Track))
	Start()
	Skip()
	StopAndWait()
}

// MonitorFactory creates a fresh worker for one monitoring session
type MonitorFactory func(opts config.Options) Worker

// ControlPanel is the main window content. Button state and the worker handle
// are owned by the panel and only touched from UI event handlers.
type ControlPanel struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	newWorker    MonitorFactory

	worker Worker

	statusLabel *widget.Label
	tracksTitle *widget.Label
	logTitle    *widget.Label
	tracks      []*model.Track // discovery order
	trackIndex  map[string]int
	trackList   *widget.List
	logLines    binding.StringList
	logList     *widget.List

	startBtn  *widget.Button
	stopBtn   *widget.Button
	skipBtn   *widget.Button
	folderBtn *widget.Button
}

// NewControlPanel builds the panel and installs it as the window content
func NewControlPanel(window fyne.Window, app fyne.App, newWorker MonitorFactory, settings *config.Settings) *ControlPanel {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	p := &ControlPanel{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		newWorker:    newWorker,
		trackIndex:   make(map[string]int),
		logLines:     binding.NewStringList(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	p.setupUI()

	window.SetCloseIntercept(func() {
		p.Shutdown()
		window.Close()
	})
	return p
}

func (p *ControlPanel) setupUI() {
	l := p.localization
	p.createMenu()

	p.statusLabel = widget.NewLabel(fmt.Sprintf(StatusFormat, l.GetText(KeyStatus), l.GetText(KeyReady)))
	p.statusLabel.Truncation = fyne.TextTruncateEllipsis

	p.tracksTitle = widget.NewLabelWithStyle(l.GetText(KeyDiscoveredTracks), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.trackList = widget.NewList(
		func() int { return len(p.tracks) },
		func() fyne.CanvasObject { return NewTrackRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(p.tracks) {
				obj.(*TrackRow).SetTrack(p.tracks[id])
			}
		},
	)

	p.logTitle = widget.NewLabelWithStyle(l.GetText(KeyLog), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.logList = widget.NewListWithData(p.logLines,
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	p.startBtn = widget.NewButton(l.GetText(KeyStart), p.onStart)
	p.startBtn.Importance = widget.HighImportance
	p.stopBtn = widget.NewButton(l.GetText(KeyStop), p.onStop)
	p.skipBtn = widget.NewButton(l.GetText(KeyNextTrack), p.onSkip)
	p.folderBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyOpenFolder), p.onOpenFolder)
	p.folderBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, p.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	p.updateButtons()

	trackPane := container.NewBorder(p.tracksTitle, nil, nil, nil, p.trackList)
	logPane := container.NewBorder(p.logTitle, nil, nil, nil, p.logList)

	split := container.NewVSplit(trackPane, logPane)
	split.SetOffset(TrackPaneOffset)

	buttons := container.NewGridWithColumns(3, p.startBtn, p.stopBtn, p.skipBtn)
	top := container.NewBorder(nil, nil, nil, container.NewHBox(p.folderBtn, settingsBtn), p.statusLabel)

	p.window.SetContent(container.NewBorder(top, buttons, nil, nil, split))
}

func (p *ControlPanel) createMenu() {
	l := p.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), p.onShowSettings)
	folderItem := fyne.NewMenuItem(l.GetText(KeyOpenFolder), p.onOpenFolder)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			p.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	p.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), settingsItem, folderItem),
		languageMenu,
	))
}

// Shutdown stops the active worker, if any, and waits for its browser to close
func (p *ControlPanel) Shutdown() {
	if p.worker == nil {
		return
	}
	w := p.worker
	p.worker = nil
	w.StopAndWait()
}

func (p *ControlPanel) onStart() {
	if p.worker != nil {
		return
	}

	opts := p.settings.Options()
	if err := platform.CreateDirectoryIfNotExists(opts.DownloadDir); err != nil {
		slog.Warn("failed to ensure downloads dir", "dir", opts.DownloadDir, "error", err)
	}

	w := p.newWorker(opts)
	w.SetTrackCallback(func(url string) {
		fyne.Do(func() { p.onNewTrack(url) })
	})
	w.SetLogCallback(func(msg string) {
		fyne.Do(func() { p.onLog(msg) })
	})
	w.SetStatusCallback(func(t *model.Track) {
		fyne.Do(func() { p.onTrackUpdate(t) })
	})

	p.worker = w
	w.Start()

	p.onLog(p.localization.GetText(KeyMonitoringStarted))
	p.updateButtons()
}

// onStop blocks the UI until the worker has released the browser
func (p *ControlPanel) onStop() {
	if p.worker == nil {
		return
	}

	p.stopBtn.Disable()
	p.Shutdown()

	p.onLog(p.localization.GetText(KeyMonitoringStopped))
	p.updateButtons()
}

func (p *ControlPanel) onSkip() {
	if p.worker == nil {
		return
	}
	p.worker.Skip()
}

func (p *ControlPanel) onNewTrack(url string) {
	if _, ok := p.trackIndex[url]; ok {
		return
	}
	p.trackIndex[url] = len(p.tracks)
	p.tracks = append(p.tracks, model.NewTrack(url))
	p.trackList.Refresh()
	p.trackList.ScrollToBottom()
}

// onTrackUpdate refreshes the row of an already listed track
func (p *ControlPanel) onTrackUpdate(t *model.Track) {
	i, ok := p.trackIndex[t.URL]
	if !ok {
		return
	}
	p.tracks[i] = t
	p.trackList.RefreshItem(i)
}

// onLog updates the status line and appends to the log pane, which grows for
// the life of the window.
func (p *ControlPanel) onLog(msg string) {
	p.statusLabel.SetText(fmt.Sprintf(StatusFormat, p.localization.GetText(KeyStatus), msg))
	if err := p.logLines.Append(msg); err != nil {
		slog.Warn("failed to append log line", "error", err)
		return
	}
	p.logList.ScrollToBottom()
}

func (p *ControlPanel) updateButtons() {
	if p.worker != nil {
		p.startBtn.Disable()
		p.stopBtn.Enable()
		p.skipBtn.Enable()
		return
	}
	p.startBtn.Enable()
	p.stopBtn.Disable()
	p.skipBtn.Disable()
}

func (p *ControlPanel) onOpenFolder() {
	dir := p.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		slog.Warn("failed to ensure downloads dir", "dir", dir, "error", err)
	}
	if err := platform.OpenFolder(dir); err != nil {
		slog.Error("failed to open folder", "dir", dir, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", p.localization.GetText(KeyErrorOpeningFolder), err), p.window)
	}
}

func (p *ControlPanel) onShowSettings() {
	ShowSettingsDialog(p.window, p.settings, p.localization, func() {
		p.onLanguageChange(p.settings.GetLanguage())
	})
}

func (p *ControlPanel) onLanguageChange(code string) {
	p.localization.SetLanguage(code)
	p.settings.SetLanguage(code)
	p.refreshUITexts()
	p.createMenu()
}

func (p *ControlPanel) refreshUITexts() {
	l := p.localization
	p.window.SetTitle(l.GetText(KeyAppTitle))
	p.startBtn.SetText(l.GetText(KeyStart))
	p.stopBtn.SetText(l.GetText(KeyStop))
	p.skipBtn.SetText(l.GetText(KeyNextTrack))
	p.folderBtn.SetText(IconFolder + " " + l.GetText(KeyOpenFolder))
	p.tracksTitle.SetText(l.GetText(KeyDiscoveredTracks))
	p.logTitle.SetText(l.GetText(KeyLog))
}

package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/stream-grabber/internal/model"
)

// Defaults
const (
	DefaultPollInterval = 10 * time.Second
	DefaultSkipTimeout  = 5 * time.Second
	DefaultStartURL     = "https://soundcloud.com/stream"
)

// Log lines shown in the control panel
const (
	MsgLaunching      = "Launching Chrome..."
	MsgLaunched       = "Chrome launched."
	MsgLoginPrompt    = "Log into SoundCloud and press Play."
	MsgClosed         = "Chrome closed."
	MsgSkipped        = "Skipped to next track."
	msgDownloaded     = "Downloaded: %s"
	msgDownloadFailed = "Download failed: %v"
	msgSkipFailed     = "Failed to skip: %v"
	msgCritical       = "Critical error: %v"
)

// Options configures one monitoring session
type Options struct {
	StartURL     string
	PollInterval time.Duration
	SkipTimeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.StartURL == "" {
		o.StartURL = DefaultStartURL
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.SkipTimeout <= 0 {
		o.SkipTimeout = DefaultSkipTimeout
	}
	return o
}

// Monitor is a single-use worker: Idle -> Running -> Stopping -> Stopped.
// A stopped monitor cannot be restarted; create a new one instead.
type Monitor struct {
	id         string
	opener     SessionOpener
	downloader Downloader
	opts       Options
	visited    *visitedSet

	mu       sync.Mutex
	state    model.MonitorState
	onTrack  func(string)
	onLog    func(string)
	onStatus func(*model.Track)

	// sessionMu serializes Skip against session teardown
	sessionMu sync.Mutex
	session   Session

	tracksMu   sync.Mutex
	tracks     []*model.Track
	trackIndex map[string]int

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an idle monitor
func New(opener SessionOpener, downloader Downloader, opts Options) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		id:         uuid.NewString(),
		opener:     opener,
		downloader: downloader,
		opts:       opts.withDefaults(),
		visited:    newVisitedSet(),
		trackIndex: make(map[string]int),
		state:      model.MonitorStateIdle,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// ID identifies this monitoring session in logs
func (m *Monitor) ID() string {
	return m.id
}

// SetTrackCallback sets the "new track discovered" listener
func (m *Monitor) SetTrackCallback(callback func(url string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTrack = callback
}

// SetLogCallback sets the "log line" listener
func (m *Monitor) SetLogCallback(callback func(msg string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLog = callback
}

// SetStatusCallback sets the listener for per-track status changes
// (Discovered, Downloading, Completed, Error)
func (m *Monitor) SetStatusCallback(callback func(*model.Track)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStatus = callback
}

// State returns the current lifecycle state
func (m *Monitor) State() model.MonitorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start launches the worker goroutine. It is a no-op unless the monitor is idle.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.state != model.MonitorStateIdle {
		m.mu.Unlock()
		return
	}
	m.state = model.MonitorStateRunning
	m.mu.Unlock()

	slog.Info("monitor starting", "session", m.id, "start_url", m.opts.StartURL, "poll_interval", m.opts.PollInterval)
	go m.run()
}

// Stop asks the worker to finish its current iteration and exit. It also
// cancels an in-flight download. Use Wait to block until the browser is closed.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case model.MonitorStateIdle:
		m.state = model.MonitorStateStopped
		m.cancel()
		close(m.done)
	case model.MonitorStateRunning:
		m.state = model.MonitorStateStopping
		m.cancel()
	}
}

// Wait blocks until the worker goroutine has returned
func (m *Monitor) Wait() {
	<-m.done
}

// StopAndWait stops the worker and blocks until its browser session is released
func (m *Monitor) StopAndWait() {
	m.Stop()
	m.Wait()
}

// Done is closed once the worker goroutine has returned
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Skip advances the player to the next track. Without an open session it does
// nothing and emits nothing.
func (m *Monitor) Skip() {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	if m.session == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.opts.SkipTimeout)
	defer cancel()

	if err := m.session.NextTrack(ctx); err != nil {
		m.emitLog(fmt.Sprintf(msgSkipFailed, err))
		return
	}
	m.emitLog(MsgSkipped)
}

// Tracks returns copies of the processed tracks in discovery order
func (m *Monitor) Tracks() []*model.Track {
	m.tracksMu.Lock()
	defer m.tracksMu.Unlock()

	out := make([]*model.Track, 0, len(m.tracks))
	for _, t := range m.tracks {
		out = append(out, t.Clone())
	}
	return out
}

func (m *Monitor) run() {
	defer func() {
		m.mu.Lock()
		m.state = model.MonitorStateStopped
		m.mu.Unlock()
		m.cancel()
		slog.Info("monitor stopped", "session", m.id, "tracks", m.visited.Len())
		close(m.done)
	}()
	// Registered after the state reset so it runs first: the session is
	// always released before Wait returns.
	defer m.closeSession()

	m.emitLog(MsgLaunching)
	session, err := m.opener.Open(m.ctx)
	if err != nil {
		m.critical(err)
		return
	}
	m.setSession(session)
	m.emitLog(MsgLaunched)

	if err := session.Navigate(m.ctx, m.opts.StartURL); err != nil {
		m.critical(err)
		return
	}
	m.emitLog(MsgLoginPrompt)

	for m.ctx.Err() == nil {
		m.poll(session)

		select {
		case <-m.ctx.Done():
			return
		case <-time.After(m.opts.PollInterval):
		}
	}
}

// poll runs one iteration: lookup, dedup, notify, download
func (m *Monitor) poll(session Session) {
	url, ok := session.CurrentTrack(m.ctx)
	if !ok || url == "" {
		return
	}
	if !m.visited.Add(url) {
		return
	}

	slog.Info("new track discovered", "session", m.id, "url", url)
	m.emitTrack(url)
	m.UpdateTrack(model.NewTrack(url))
	m.download(url)
}

func (m *Monitor) download(url string) {
	track, err := m.downloader.Download(m.ctx, url)
	if track == nil {
		track = model.NewTrack(url)
		if err != nil {
			track.Status = model.TrackStatusError
			track.LastError = err.Error()
		}
	}
	m.UpdateTrack(track)

	if err != nil {
		if m.ctx.Err() != nil {
			slog.Info("download interrupted by stop", "session", m.id, "url", url)
			return
		}
		m.emitLog(fmt.Sprintf(msgDownloadFailed, err))
		return
	}

	name := filepath.Base(track.OutputPath)
	if track.OutputPath == "" {
		name = track.DisplayName()
	}
	m.emitLog(fmt.Sprintf(msgDownloaded, name))
}

func (m *Monitor) critical(err error) {
	if m.ctx.Err() != nil {
		slog.Info("monitor stopped during startup", "session", m.id, "error", err)
		return
	}
	slog.Error("monitor failed", "session", m.id, "error", err)
	m.emitLog(fmt.Sprintf(msgCritical, err))
}

func (m *Monitor) setSession(s Session) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()
	m.session = s
}

func (m *Monitor) closeSession() {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	if m.session == nil {
		return
	}
	if err := m.session.Close(); err != nil {
		slog.Warn("browser close failed", "session", m.id, "error", err)
	}
	m.session = nil
	m.emitLog(MsgClosed)
}

// UpdateTrack stores the latest record for a discovered track and forwards it
// to the status listener. Records for URLs this run has not discovered are
// dropped. The download service's update callback is wired here.
func (m *Monitor) UpdateTrack(t *model.Track) {
	if t == nil || !m.visited.Contains(t.URL) {
		return
	}

	m.tracksMu.Lock()
	if i, ok := m.trackIndex[t.URL]; ok {
		m.tracks[i] = t.Clone()
	} else {
		m.trackIndex[t.URL] = len(m.tracks)
		m.tracks = append(m.tracks, t.Clone())
	}
	m.tracksMu.Unlock()

	m.mu.Lock()
	cb := m.onStatus
	m.mu.Unlock()

	if cb != nil {
		cb(t.Clone())
	}
}

func (m *Monitor) emitTrack(url string) {
	m.mu.Lock()
	cb := m.onTrack
	m.mu.Unlock()

	if cb != nil {
		cb(url)
	}
}

func (m *Monitor) emitLog(msg string) {
	slog.Info("monitor", "session", m.id, "message", msg)

	m.mu.Lock()
	cb := m.onLog
	m.mu.Unlock()

	if cb != nil {
		cb(msg)
	}
}

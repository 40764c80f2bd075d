package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"

	"github.com/ytget/stream-grabber/internal/platform"
)

// Player widget markup. Any front-end change on the site breaks detection
// silently: CurrentTrack keeps reporting no track.
const (
	DefaultTrackSelector = "a.playbackSoundBadge__titleLink"
	DefaultLookupTimeout = 5 * time.Second
	DefaultWindowWidth   = 1280
	DefaultWindowHeight  = 900
)

// Next-track shortcut: Shift+ArrowRight
const (
	nextTrackKey     = "ArrowRight"
	nextTrackCode    = "ArrowRight"
	nextTrackKeyCode = 39
)

// Config holds browser launch configuration.
type Config struct {
	BrowserPath   string
	ProfileDir    string
	ProfileName   string
	StartURL      string
	TrackSelector string
	Headless      bool
	WindowWidth   int
	WindowHeight  int
	LookupTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.ProfileDir == "" {
		c.ProfileDir = platform.DefaultProfileDir()
	}
	if c.ProfileName == "" {
		c.ProfileName = "Default"
	}
	if c.TrackSelector == "" {
		c.TrackSelector = DefaultTrackSelector
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		c.WindowWidth, c.WindowHeight = DefaultWindowWidth, DefaultWindowHeight
	}
	if c.LookupTimeout <= 0 {
		c.LookupTimeout = DefaultLookupTimeout
	}
	return c
}

// Session is one chromedp-controlled browser. It is owned by a single monitor
// and must be closed exactly once.
type Session struct {
	cfg Config

	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// Open launches the browser with the persistent profile and the flags that
// hide the automation banner and navigator.webdriver fingerprint.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	if cfg.BrowserPath == "" {
		path, err := platform.DetectBrowser()
		if err != nil {
			return nil, fmt.Errorf("open browser: %w", err)
		}
		cfg.BrowserPath = path
	}
	if err := os.MkdirAll(cfg.ProfileDir, platform.DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(cfg.BrowserPath),
		chromedp.UserDataDir(cfg.ProfileDir),
		chromedp.Flag("profile-directory", cfg.ProfileName),
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("mute-audio", false),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	s := &Session{
		cfg:         cfg,
		allocCancel: allocCancel,
		ctx:         browserCtx,
		cancel:      browserCancel,
	}

	// The first Run starts the process; bound it by the caller's context.
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()
	if err := chromedp.Run(browserCtx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("launch browser %s: %w", cfg.BrowserPath, err)
	}

	slog.Info("browser session started", "path", cfg.BrowserPath, "profile", cfg.ProfileDir, "headless", cfg.Headless)
	return s, nil
}

// runCtx derives a context from the browser context that also ends when the
// caller's context does.
func (s *Session) runCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithTimeout(s.ctx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

// Navigate opens url in the session tab
func (s *Session) Navigate(ctx context.Context, url string) error {
	if url == "" {
		url = s.cfg.StartURL
	}
	if url == "" {
		return errors.New("navigate: empty url")
	}

	runCtx, cancel := s.runCtx(ctx, 60*time.Second)
	defer cancel()
	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// CurrentTrack returns the href of the now-playing link. Absence of the
// element and every lookup failure report ok=false; track transitions leave
// the widget empty for a moment and that is not an error.
func (s *Session) CurrentTrack(ctx context.Context) (string, bool) {
	runCtx, cancel := s.runCtx(ctx, s.cfg.LookupTimeout)
	defer cancel()

	var href string
	if err := chromedp.Run(runCtx, chromedp.Evaluate(trackLookupJS(s.cfg.TrackSelector), &href)); err != nil {
		slog.Debug("track lookup failed", "error", err)
		return "", false
	}
	if href == "" {
		return "", false
	}
	return href, true
}

// NextTrack dispatches a trusted Shift+ArrowRight (keyDown + keyUp)
func (s *Session) NextTrack(ctx context.Context) error {
	runCtx, cancel := s.runCtx(ctx, s.cfg.LookupTimeout)
	defer cancel()

	err := chromedp.Run(runCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		down := input.DispatchKeyEvent(input.KeyDown).
			WithKey(nextTrackKey).
			WithCode(nextTrackCode).
			WithWindowsVirtualKeyCode(nextTrackKeyCode).
			WithModifiers(input.ModifierShift)
		if err := down.Do(ctx); err != nil {
			return fmt.Errorf("keyDown: %w", err)
		}

		up := input.DispatchKeyEvent(input.KeyUp).
			WithKey(nextTrackKey).
			WithCode(nextTrackCode).
			WithWindowsVirtualKeyCode(nextTrackKeyCode).
			WithModifiers(input.ModifierShift)
		if err := up.Do(ctx); err != nil {
			return fmt.Errorf("keyUp: %w", err)
		}
		return nil
	}))
	if err != nil {
		return fmt.Errorf("send Shift+Right: %w", err)
	}
	return nil
}

// Close shuts the browser down gracefully and releases the allocator.
// Safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.ctx != nil {
			ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
			if err := chromedp.Cancel(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.closeErr = fmt.Errorf("close browser: %w", err)
			}
			cancel()
		}
		if s.cancel != nil {
			s.cancel()
		}
		if s.allocCancel != nil {
			s.allocCancel()
		}
		slog.Info("browser session closed")
	})
	return s.closeErr
}

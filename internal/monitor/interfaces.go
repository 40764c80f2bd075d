package monitor

import (
	"context"

	"github.com/ytget/stream-grabber/internal/model"
)

// Session is the browser automation boundary owned by one monitor
type Session interface {
	Navigate(ctx context.Context, url string) error
	// CurrentTrack reports the now-playing link; ok is false when the widget
	// is absent or the lookup failed.
	CurrentTrack(ctx context.Context) (url string, ok bool)
	NextTrack(ctx context.Context) error
	Close() error
}

// SessionOpener launches a new browser session
type SessionOpener interface {
	Open(ctx context.Context) (Session, error)
}

// SessionOpenerFunc adapts a function to SessionOpener
type SessionOpenerFunc func(ctx context.Context) (Session, error)

// Open calls f(ctx)
func (f SessionOpenerFunc) Open(ctx context.Context) (Session, error) {
	return f(ctx)
}

// Downloader fetches one track
type Downloader interface {
	Download(ctx context.Context, url string) (*model.Track, error)
}

//go:build integration

package browser

import (
	"context"
	"testing"
	"time"
)

// Requires a local Chrome/Chromium. Run with: go test -tags integration ./internal/browser
func TestSessionAgainstBlankPage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s, err := Open(ctx, Config{ProfileDir: t.TempDir(), Headless: true})
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() = %v", err)
		}
	}()

	if err := s.Navigate(ctx, "about:blank"); err != nil {
		t.Fatalf("Navigate() = %v", err)
	}

	if url, ok := s.CurrentTrack(ctx); ok {
		t.Fatalf("CurrentTrack() on blank page = %q, true; want absent", url)
	}

	if err := s.NextTrack(ctx); err != nil {
		t.Fatalf("NextTrack() = %v", err)
	}

	// Second close is a no-op.
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
}

package monitor

// Package monitor runs the background worker that owns one browser session,
// polls the player for the current track, deduplicates against the visited set,
// and downloads each new track once. Notifications (new track, log line) are
// delivered in emit order through two callbacks on the worker goroutine.

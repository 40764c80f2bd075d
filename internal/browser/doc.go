package browser

// Package browser drives a real Chrome instance through chromedp. The session
// keeps a persistent profile so the streaming site login survives restarts,
// reads the now-playing link from the player widget, and sends the trusted
// Shift+Right shortcut that advances to the next track.

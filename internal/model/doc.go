package model

// Package model defines domain data structures used across the app: discovered
// tracks, their download status, and the monitor lifecycle state. Structures are
// plain values so the UI can copy them across goroutines.

package download

// Package download implements the one-shot track download pipeline built on top
// of yt-dlp (via github.com/lrstanley/go-ytdlp): metadata lookup, best-audio fetch
// with MP3 transcode, and optional ID3 tagging of the result.

package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconFolder   = "📁"

	// Track row status
	IconPending     = "•"
	IconDownloading = "⬇"
	IconDone        = "✔"
	IconError       = "❌"
)

// Text fragments
const (
	StatusFormat       = "%s: %s"
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	TrackPaneOffset = 0.35

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

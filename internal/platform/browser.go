package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DefaultProfileDirName is the Chrome user-data directory kept in the home
// folder so the streaming site login survives restarts.
const DefaultProfileDirName = "sc-chrome-profile"

// Browser binary candidates looked up on PATH, in order
var (
	BrowserCandidates = []string{"google-chrome", "google-chrome-stable", "chromium-browser", "chromium"}
)

// Well-known install locations that are not on PATH
const (
	MacOSChromePath   = "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
	WindowsChromePath = `C:\Program Files\Google\Chrome\Application\chrome.exe`
)

// DetectBrowser finds an available Chrome/Chromium binary
func DetectBrowser() (string, error) {
	for _, name := range BrowserCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	var fallback string
	switch runtime.GOOS {
	case OSDarwin:
		fallback = MacOSChromePath
	case OSWindows:
		fallback = WindowsChromePath
	}
	if fallback != "" {
		if _, err := os.Stat(fallback); err == nil {
			return fallback, nil
		}
	}

	return "", fmt.Errorf("no supported browser found (tried %v)", BrowserCandidates)
}

// DefaultProfileDir returns ~/sc-chrome-profile, falling back to a relative
// directory when the home directory cannot be resolved
func DefaultProfileDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return DefaultProfileDirName
	}
	return filepath.Join(homeDir, DefaultProfileDirName)
}

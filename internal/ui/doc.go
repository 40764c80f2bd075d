// Package ui contains the Fyne-based control panel. It wires the Start, Stop
// and Next Track buttons to a monitor worker and renders the worker's track
// and log notifications. All UI strings are localized via Localization.
package ui

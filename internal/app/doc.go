// Package app wires configuration, the browser session, the download service
// and logging into ready-to-run monitors for the GUI and headless entry points.
package app

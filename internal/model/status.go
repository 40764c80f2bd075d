package model

// TrackStatus represents the download status of a discovered track
type TrackStatus string

const (
	// TrackStatusDiscovered means the track was seen in the player but not fetched yet
	TrackStatusDiscovered TrackStatus = "Discovered"

	// TrackStatusDownloading means metadata lookup or audio fetch is in progress
	TrackStatusDownloading TrackStatus = "Downloading"

	// TrackStatusCompleted means the audio file was written
	TrackStatusCompleted TrackStatus = "Completed"

	// TrackStatusError means the download failed; it is never retried
	TrackStatusError TrackStatus = "Error"
)

// String returns the string representation of TrackStatus
func (ts TrackStatus) String() string {
	return string(ts)
}

// IsActive returns true if the track is being downloaded
func (ts TrackStatus) IsActive() bool {
	return ts == TrackStatusDownloading
}

// IsFinished returns true if the track reached a terminal state (completed or error)
func (ts TrackStatus) IsFinished() bool {
	return ts == TrackStatusCompleted || ts == TrackStatusError
}

// MonitorState represents the lifecycle of a single monitoring session
type MonitorState string

const (
	MonitorStateIdle     MonitorState = "Idle"
	MonitorStateRunning  MonitorState = "Running"
	MonitorStateStopping MonitorState = "Stopping"
	MonitorStateStopped  MonitorState = "Stopped"
)

// String returns the string representation of MonitorState
func (ms MonitorState) String() string {
	return string(ms)
}

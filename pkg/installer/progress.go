package installer

import "time"

// Stage represents a step of the install run.
type Stage string

const (
	StagePrivileges  Stage = "privileges"
	StageVolume      Stage = "volume"
	StageDiscovering Stage = "discovering"
	StageInstalling  Stage = "installing"
	StageComplete    Stage = "complete"
	StageError       Stage = "error"
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StagePrivileges:
		return "Checking Privileges"
	case StageVolume:
		return "Locating Volume"
	case StageDiscovering:
		return "Discovering Bundles"
	case StageInstalling:
		return "Installing"
	case StageComplete:
		return "Complete"
	case StageError:
		return "Error"
	default:
		return string(s)
	}
}

// ProgressEvent represents an install run progress update.
type ProgressEvent struct {
	Stage     Stage     // Current stage
	Message   string    // Human-readable message
	Command   string    // Command being executed, if any
	Detail    string    // Additional detail or output
	Percent   int       // 0-100, -1 for indeterminate
	IsError   bool      // True if this is an error message
	Timestamp time.Time // When this event occurred
}

// ProgressCallback receives progress events during a run.
type ProgressCallback func(ProgressEvent)

// NopProgress discards all progress events.
func NopProgress(ProgressEvent) {}

// newEvent creates a progress event.
func newEvent(stage Stage, message string, percent int) ProgressEvent {
	return ProgressEvent{
		Stage:     stage,
		Message:   message,
		Percent:   percent,
		Timestamp: time.Now(),
	}
}

// newErrorEvent creates a progress event flagged as an error.
func newErrorEvent(stage Stage, message string) ProgressEvent {
	return ProgressEvent{
		Stage:     stage,
		Message:   message,
		Percent:   -1,
		IsError:   true,
		Timestamp: time.Now(),
	}
}

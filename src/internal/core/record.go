package core

// LogRecord is one parsed log line flowing through the pipeline. Owner and
// TID stay textual: they are opaque identifiers, and keeping them as strings
// tolerates leading zeros and avoids overflow on odd feeds.
type LogRecord struct {
	Level   Level
	Tag     string
	Owner   string
	Message string

	// Set only when the long wire format matched.
	Date string
	Time string
	TID  string
}

// ProcessEvent is a start or end notification for a monitored process,
// extracted from a lifecycle report embedded in a log message. PID and
// Package are never empty on an emitted event.
type ProcessEvent struct {
	PID     string
	Package string

	// Target is the activity or service descriptor a start event launched
	// for. Empty on end events.
	Target string
}

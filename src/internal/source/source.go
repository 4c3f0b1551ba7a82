package source

import "time"

// Line is one raw text line handed to the pipeline.
type Line struct {
	Time time.Time
	Text string
}

// Source is an input stream of raw log lines.
type Source interface {
	// Subscribe returns a channel that receives lines.
	Subscribe() <-chan Line

	// Start begins reading from the source.
	Start() error

	// Stop gracefully shuts down the source and closes subscriber channels.
	Stop()

	// GetStats returns source statistics.
	GetStats() SourceStats
}

// SourceStats contains statistics about a source.
type SourceStats struct {
	Type         string
	TotalLines   uint64
	DroppedLines uint64
	StartTime    time.Time
	LastLineTime time.Time
	Details      map[string]any
}

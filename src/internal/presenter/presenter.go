package presenter

import "lograt/src/internal/core"

// Presenter renders session filter decisions. Only the terminal printer
// exists today; the interface leaves room for structured sinks without
// touching the filter.
type Presenter interface {
	// ProcessStart announces a newly tracked process.
	ProcessStart(ev core.ProcessEvent)

	// ProcessEnd announces a process leaving the tracked set.
	ProcessEnd(ev core.ProcessEvent)

	// LogLine renders one displayed record. newTag marks the first line
	// of a tag group.
	LogLine(rec core.LogRecord, newTag bool)
}

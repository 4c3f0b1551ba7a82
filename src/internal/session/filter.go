package session

import (
	"slices"
	"strings"
	"sync/atomic"

	"lograt/src/internal/core"
	"lograt/src/internal/parser"

	"github.com/lixenwraith/log"
)

// ActionKind says what a display action asks the presenter to draw.
type ActionKind int

const (
	ActionProcessStart ActionKind = iota
	ActionProcessEnd
	ActionLogLine
)

// Action is one display decision produced for an input line. A single line
// can yield a lifecycle action and, independently, a log-line action.
type Action struct {
	Kind   ActionKind
	Event  core.ProcessEvent // set for start/end actions
	Record core.LogRecord    // set for log-line actions
	NewTag bool              // log-line action opens a new tag group
}

// Options configures a Filter. Empty package and tag lists match
// everything; a nil MinLevel disables level filtering.
type Options struct {
	Packages []string
	Tags     []string
	MinLevel *core.Level
}

// Filter decides, line by line, what reaches the presenter. It owns the
// session state: the set of process ids currently attributed to a package
// of interest, and the tag of the most recently displayed line. State is
// touched only by Handle, which the pipeline calls from a single goroutine.
type Filter struct {
	opts    Options
	tracked map[string]struct{}
	lastTag string
	logger  *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	totalDisplayed atomic.Uint64
	totalStarts    atomic.Uint64
	totalEnds      atomic.Uint64
}

// New creates a filter with empty session state.
func New(opts Options, logger *log.Logger) *Filter {
	logger.Debug("msg", "Session filter created",
		"component", "session",
		"package_count", len(opts.Packages),
		"tag_count", len(opts.Tags),
		"level_gate", opts.MinLevel != nil)

	return &Filter{
		opts:    opts,
		tracked: make(map[string]struct{}),
		logger:  logger,
	}
}

// Handle runs one raw line through the fixed decision sequence and returns
// the display actions it produced, in order.
func (f *Filter) Handle(raw string) []Action {
	f.totalProcessed.Add(1)

	rec, ok := parser.ParseLine(raw)
	if !ok {
		return nil
	}

	var actions []Action

	// Start detection scans the raw line, not the parsed message: start
	// reports are recognized even on lines whose own tag is not the
	// lifecycle tag.
	if ev, ok := parser.ParseProcessStart(raw); ok && matchPackage(f.opts.Packages, ev.Package) {
		f.tracked[ev.PID] = struct{}{}
		f.lastTag = ""
		f.totalStarts.Add(1)
		actions = append(actions, Action{Kind: ActionProcessStart, Event: ev})
	}

	if ev, ok := parser.ParseProcessEnd(rec.Tag, rec.Message); ok && matchPackage(f.opts.Packages, ev.Package) {
		delete(f.tracked, ev.PID)
		f.lastTag = ""
		f.totalEnds.Add(1)
		actions = append(actions, Action{Kind: ActionProcessEnd, Event: ev})
	}

	if !matchTag(f.opts.Tags, rec.Tag) {
		return actions
	}

	newTag := f.lastTag == "" || f.lastTag != rec.Tag
	if newTag {
		f.lastTag = rec.Tag
	}

	if f.display(rec) {
		f.totalDisplayed.Add(1)
		actions = append(actions, Action{Kind: ActionLogLine, Record: rec, NewTag: newTag})
	}

	return actions
}

// Tracks reports whether pid currently belongs to a followed process.
func (f *Filter) Tracks(pid string) bool {
	_, ok := f.tracked[pid]
	return ok
}

// GetStats returns filter statistics.
func (f *Filter) GetStats() map[string]any {
	return map[string]any{
		"package_count":   len(f.opts.Packages),
		"tag_count":       len(f.opts.Tags),
		"tracked_pids":    len(f.tracked),
		"total_processed": f.totalProcessed.Load(),
		"total_displayed": f.totalDisplayed.Load(),
		"total_starts":    f.totalStarts.Load(),
		"total_ends":      f.totalEnds.Load(),
	}
}

func (f *Filter) display(rec core.LogRecord) bool {
	if len(f.opts.Packages) > 0 {
		if _, ok := f.tracked[rec.Owner]; !ok {
			return false
		}
	}
	return f.opts.MinLevel == nil || rec.Level >= *f.opts.MinLevel
}

// matchPackage compares only the candidate's prefix before the first ':':
// lifecycle reports often name "package:qualifier". An empty filter list
// matches everything.
func matchPackage(packages []string, candidate string) bool {
	if len(packages) == 0 {
		return true
	}
	name, _, _ := strings.Cut(candidate, ":")
	return slices.Contains(packages, name)
}

func matchTag(tags []string, tag string) bool {
	return len(tags) == 0 || slices.Contains(tags, tag)
}

package parser

import (
	"regexp"

	"lograt/src/internal/core"
)

// LifecycleTag is the platform component that reports process starts and
// deaths inside ordinary log messages.
const LifecycleTag = "ActivityManager"

// I/ActivityManager( 2045): Start proc 10212:com.google.android.gms.ui/u0a102 for service {...}
var startProc = regexp.MustCompile(`^.*: Start proc (?P<pid>\d+):(?P<package>[a-zA-Z0-9._:]+)/[a-z0-9]+ for (?P<target>.*)$`)

// The three shapes a process-end report takes, tried in order; the first
// match wins.
var endProc = []*regexp.Regexp{
	// Killing 8822:com.google.android.apps.maps/u0a120 (adj 985): empty for 2733s
	regexp.MustCompile(`^Killing (?P<pid>\d+):(?P<package>[a-zA-Z0-9._:]+)/[^:]+: (.*)$`),
	// No longer want com.example.app (pid 1234): ...
	regexp.MustCompile(`^No longer want (?P<package>[a-zA-Z0-9._:]+) \(pid (?P<pid>\d+)\): .*$`),
	// Process com.example.test (pid 7404) has died
	regexp.MustCompile(`^Process (?P<package>[a-zA-Z0-9._:]+) \(pid (?P<pid>\d+)\) has died.?$`),
}

// ParseProcessStart detects a process-start report anywhere in a raw line.
// Unlike end detection it does not gate on the lifecycle tag: start reports
// also appear on brief-format lines whose prefix carries the tag, so the
// whole line is scanned.
func ParseProcessStart(line string) (core.ProcessEvent, bool) {
	caps, ok := capture(startProc, line)
	if !ok {
		return core.ProcessEvent{}, false
	}
	return newEvent(caps["pid"], caps["package"], caps["target"])
}

// ParseProcessEnd detects a kill, eviction or death report in a record's
// message. Records not tagged by the lifecycle component are rejected
// before any pattern runs.
func ParseProcessEnd(tag, message string) (core.ProcessEvent, bool) {
	if tag != LifecycleTag {
		return core.ProcessEvent{}, false
	}
	for _, re := range endProc {
		if caps, ok := capture(re, message); ok {
			return newEvent(caps["pid"], caps["package"], "")
		}
	}
	return core.ProcessEvent{}, false
}

// newEvent refuses partial events: a blank pid or package discards the
// whole detection.
func newEvent(pid, pkg, target string) (core.ProcessEvent, bool) {
	if pid == "" || pkg == "" {
		return core.ProcessEvent{}, false
	}
	return core.ProcessEvent{PID: pid, Package: pkg, Target: target}, true
}

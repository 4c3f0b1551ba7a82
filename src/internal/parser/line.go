package parser

import (
	"regexp"
	"strings"

	"lograt/src/internal/core"
)

// The two recognized wire layouts, tried in order: the long threadtime
// layout wins over the brief layout. Patterns live in a table so the
// priority is explicit and testable on its own.
var lineGrammars = []*regexp.Regexp{
	// 05-19 06:57:59.912  2045  2140 W AppOps  : Noting op not finished: ...
	regexp.MustCompile(`^(?P<date>\d\d-\d\d)\s(?P<time>\d\d:\d\d:\d\d\.\d\d\d)\s+(?P<owner>\d+)\s+(?P<tid>\d+)\s+(?P<level>[A-Z])\s+(?P<tag>.+?)\s*: (?P<message>.*)$`),
	// E/GnssHAL_GnssInterface( 1800): gnssSvStatusCb: b: input svInfo.flags is 8
	regexp.MustCompile(`^(?P<level>[A-Z])/(?P<tag>.+?)\( *(?P<owner>\d+)\): (?P<message>.*)$`),
}

// ParseLine extracts a structured record from one raw line. The bool is
// false when the line matches neither layout; callers skip such lines
// without error. A matched line with an unrecognized severity letter still
// parses, degrading the level to Verbose.
func ParseLine(raw string) (core.LogRecord, bool) {
	for _, re := range lineGrammars {
		caps, ok := capture(re, raw)
		if !ok {
			continue
		}
		level, err := core.ParseLevel(caps["level"])
		if err != nil {
			level = core.Verbose
		}
		return core.LogRecord{
			Level:   level,
			Tag:     strings.TrimSpace(caps["tag"]),
			Owner:   caps["owner"],
			Message: caps["message"],
			Date:    caps["date"],
			Time:    caps["time"],
			TID:     caps["tid"],
		}, true
	}
	return core.LogRecord{}, false
}

// capture runs re against s and returns its named groups. Groups absent
// from the pattern simply stay out of the map.
func capture(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	caps := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			caps[name] = m[i]
		}
	}
	return caps, true
}

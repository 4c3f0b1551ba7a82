package core

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel is returned when a severity letter is not one of V/D/I/W/E/A.
var ErrUnknownLevel = errors.New("unknown severity level")

// Level is the ordered severity of a log record.
type Level int

const (
	Verbose Level = iota
	Debug
	Info
	Warn
	Error
	Assert
)

// ParseLevel maps a single-letter severity to its Level. Both cases are
// accepted.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "V", "v":
		return Verbose, nil
	case "D", "d":
		return Debug, nil
	case "I", "i":
		return Info, nil
	case "W", "w":
		return Warn, nil
	case "E", "e":
		return Error, nil
	case "A", "a":
		return Assert, nil
	default:
		return Verbose, fmt.Errorf("severity %q: %w", s, ErrUnknownLevel)
	}
}

// String renders the canonical uppercase letter.
func (l Level) String() string {
	switch l {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warn:
		return "W"
	case Error:
		return "E"
	case Assert:
		return "A"
	default:
		return "V"
	}
}

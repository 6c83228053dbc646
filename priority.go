package logcat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Priority defines log severity
//
// Values match android_LogPriority, so they can be handed to liblog as is.
type Priority int

const (
	// Verbose logs follow the code execution step by step
	Verbose Priority = iota + 2
	// Debug logs are meant for developers
	Debug
	// Info logs report the normal operation of the app
	Info
	// Warn logs draw attention to something unexpected but recoverable
	Warn
	// Error logs need attention
	Error
	// Assert logs report a condition that should never happen
	// (Android's "What a Terrible Failure")
	Assert
)

// ParsePriority parses a string representation of a priority.
// It accepts the full name ("debug") or the logcat letter ("D").
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "v":
		return Verbose, nil
	case "debug", "d":
		return Debug, nil
	case "info", "i":
		return Info, nil
	case "warn", "warning", "w":
		return Warn, nil
	case "error", "e":
		return Error, nil
	case "assert", "wtf", "a":
		return Assert, nil
	}
	return Verbose, errors.Errorf("unknown priority <%s>", s)
}

// String returns the logcat letter of the priority
func (p Priority) String() string {
	switch p {
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
		return fmt.Sprintf("P%d", int(p))
	}
}

package logcat

import (
	"fmt"

	"github.com/pkg/errors"
)

// Platform is the native logging primitive wrapped by a Logger
type Platform interface {
	// Println writes a log record. failure may be nil.
	Println(p Priority, tag, msg string, failure error)
	// IsLoggable reports whether records for tag at priority p are written
	IsLoggable(tag string, p Priority) bool
	// StackTraceString renders failure for a log record
	StackTraceString(failure error) string
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type causer interface {
	Cause() error
}

// RenderFailure is the stock failure rendering shared by the platforms of
// this package.
//
// Errors built with github.com/pkg/errors are rendered with their message
// chain and stack trace. Other errors are rendered with their message.
func RenderFailure(failure error) string {
	if failure == nil {
		return ""
	}
	switch failure.(type) {
	case stackTracer, causer:
		return fmt.Sprintf("%+v", failure)
	}
	return failure.Error()
}

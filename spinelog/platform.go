// Package spinelog writes logcat records to a spine logger
package spinelog

import (
	"github.com/deixis/logcat"
	"github.com/deixis/spine/log"
)

// Platform forwards logcat records to a spine log.Logger.
//
// Verbose, Debug and Info are written as Trace, Warn as Warning, Error and
// Assert as Error. The logcat priority is kept in the "priority" field and
// the rendered failure in the "failure" field.
type Platform struct {
	l   log.Logger
	min log.Level

	// Renderer renders failures (logcat.RenderFailure when nil)
	Renderer func(error) string
}

// New returns a Platform writing to l
func New(l log.Logger) *Platform {
	return &Platform{l: l.AddCalldepth(3), min: log.LevelTrace}
}

// WithLevel returns a Platform reporting records below lvl as not loggable
func WithLevel(l log.Logger, lvl log.Level) *Platform {
	p := New(l)
	p.min = lvl
	return p
}

// Level maps a logcat priority to a spine level
func Level(p logcat.Priority) log.Level {
	switch {
	case p >= logcat.Error:
		return log.LevelError
	case p == logcat.Warn:
		return log.LevelWarning
	default:
		return log.LevelTrace
	}
}

// Println implements logcat.Platform
func (p *Platform) Println(prio logcat.Priority, tag, msg string, failure error) {
	fields := []log.Field{log.String("priority", prio.String())}
	if failure != nil {
		fields = append(fields, log.String("failure", p.StackTraceString(failure)))
	}

	switch Level(prio) {
	case log.LevelError:
		p.l.Error(tag, msg, fields...)
	case log.LevelWarning:
		p.l.Warning(tag, msg, fields...)
	default:
		p.l.Trace(tag, msg, fields...)
	}
}

// IsLoggable implements logcat.Platform
func (p *Platform) IsLoggable(tag string, prio logcat.Priority) bool {
	return Level(prio) >= p.min
}

// StackTraceString implements logcat.Platform
func (p *Platform) StackTraceString(failure error) string {
	if failure == nil {
		return ""
	}
	if p.Renderer != nil {
		return p.Renderer(failure)
	}
	return logcat.RenderFailure(failure)
}

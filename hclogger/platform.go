// Package hclogger writes logcat records to a go-hclog logger
package hclogger

import (
	"github.com/deixis/logcat"
	"github.com/hashicorp/go-hclog"
)

// Platform forwards logcat records to an hclog.Logger.
//
// The tag is written in the "tag" key and the failure in the "error" key.
// Assert records are written at error level with "assert" set to true.
type Platform struct {
	l hclog.Logger

	// Renderer renders failures (logcat.RenderFailure when nil)
	Renderer func(error) string
}

// New returns a Platform writing to l
func New(l hclog.Logger) *Platform {
	return &Platform{l: l}
}

// Level maps a logcat priority to an hclog level
func Level(p logcat.Priority) hclog.Level {
	switch p {
	case logcat.Verbose:
		return hclog.Trace
	case logcat.Debug:
		return hclog.Debug
	case logcat.Info:
		return hclog.Info
	case logcat.Warn:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// Println implements logcat.Platform
func (p *Platform) Println(prio logcat.Priority, tag, msg string, failure error) {
	args := []interface{}{"tag", tag}
	if failure != nil {
		args = append(args, "error", p.StackTraceString(failure))
	}
	if prio >= logcat.Assert {
		args = append(args, "assert", true)
	}

	switch Level(prio) {
	case hclog.Trace:
		p.l.Trace(msg, args...)
	case hclog.Debug:
		p.l.Debug(msg, args...)
	case hclog.Info:
		p.l.Info(msg, args...)
	case hclog.Warn:
		p.l.Warn(msg, args...)
	default:
		p.l.Error(msg, args...)
	}
}

// IsLoggable implements logcat.Platform
func (p *Platform) IsLoggable(tag string, prio logcat.Priority) bool {
	switch Level(prio) {
	case hclog.Trace:
		return p.l.IsTrace()
	case hclog.Debug:
		return p.l.IsDebug()
	case hclog.Info:
		return p.l.IsInfo()
	case hclog.Warn:
		return p.l.IsWarn()
	default:
		return p.l.IsError()
	}
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

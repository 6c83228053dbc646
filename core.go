package logcat

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisablePolicy decides which priorities are muted by a disabled Core
type DisablePolicy int

const (
	// SuppressBelowError mutes Verbose, Debug, Info and Warn.
	// Error and Assert records are still written.
	SuppressBelowError DisablePolicy = iota
	// SuppressAll mutes every priority
	SuppressAll
)

// Core is the process-wide logging configuration shared by Logger handles.
//
// It is meant to be built once at startup. Apart from the disable switch,
// a Core never changes after construction.
type Core struct {
	platform Platform
	policy   DisablePolicy
	render   formatter

	disabled int32
}

// Option configures a Core
type Option func(*Core)

// WithPolicy sets the priorities honouring the disable switch
func WithPolicy(p DisablePolicy) Option {
	return func(c *Core) {
		c.policy = p
	}
}

// WithLocale renders substitution values for the given locale
// (e.g. digit grouping of numbers)
func WithLocale(tag language.Tag) Option {
	return func(c *Core) {
		c.render = formatter{printer: message.NewPrinter(tag)}
	}
}

// Disabled starts the Core with logging disabled
func Disabled() Option {
	return func(c *Core) {
		c.disabled = 1
	}
}

// NewCore returns a Core writing to p
func NewCore(p Platform, opts ...Option) *Core {
	c := &Core{platform: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Platform returns the platform records are written to
func (c *Core) Platform() Platform {
	return c.platform
}

// Disable mutes the priorities selected by the Core policy
func (c *Core) Disable() {
	atomic.StoreInt32(&c.disabled, 1)
}

// Enable resumes logging after Disable
func (c *Core) Enable() {
	atomic.StoreInt32(&c.disabled, 0)
}

// IsDisabled reports whether the disable switch is set
func (c *Core) IsDisabled() bool {
	return atomic.LoadInt32(&c.disabled) == 1
}

// muted reports whether a record at priority p must be dropped
func (c *Core) muted(p Priority) bool {
	if !c.IsDisabled() {
		return false
	}
	return c.policy == SuppressAll || p < Error
}

// ForClass returns a Logger for a dot-separated type identifier.
// The tag is derived from the identifier and every message is prefixed
// with the full identifier.
func (c *Core) ForClass(id string) *Logger {
	return c.ForClassName(id, false)
}

// ForClassName is ForClass, but the prefix is the simple name of the type
// when simple is true.
func (c *Core) ForClassName(id string, simple bool) *Logger {
	name := id
	if simple {
		name = SimpleName(id)
	}
	return &Logger{core: c, tag: DeriveTag(id), prefix: name + prefixSep}
}

// ForClassTag returns a Logger prefixing messages with id and writing
// under tag
func (c *Core) ForClassTag(id, tag string) *Logger {
	return &Logger{core: c, tag: tag, prefix: id + prefixSep}
}

// ForTag returns a Logger writing under tag, without any message prefix
func (c *Core) ForTag(tag string) *Logger {
	return &Logger{core: c, tag: tag}
}

// ForType is ForClass with the qualified name of the type of v
func (c *Core) ForType(v interface{}) *Logger {
	return c.ForClass(QualifiedName(v))
}

// ForTypeName is ForClassName with the qualified name of the type of v
func (c *Core) ForTypeName(v interface{}, simple bool) *Logger {
	return c.ForClassName(QualifiedName(v), simple)
}

// ForTypeTag is ForClassTag with the qualified name of the type of v
func (c *Core) ForTypeTag(v interface{}, tag string) *Logger {
	return c.ForClassTag(QualifiedName(v), tag)
}

var std atomic.Value

func init() {
	std.Store(NewCore(defaultPlatform()))
}

// Default returns the Core used by the package-level functions
func Default() *Core {
	return std.Load().(*Core)
}

// SetDefault replaces the Core used by the package-level functions.
// Loggers created beforehand keep their Core.
func SetDefault(c *Core) {
	if c == nil {
		panic("logcat: SetDefault called with a nil Core")
	}
	std.Store(c)
}

// Disable mutes the default Core
func Disable() { Default().Disable() }

// Enable resumes logging on the default Core
func Enable() { Default().Enable() }

// IsLoggable reports whether the default platform writes records for tag
// at priority p
func IsLoggable(tag string, p Priority) bool {
	return Default().platform.IsLoggable(tag, p)
}

// StackTraceString renders failure with the default platform
func StackTraceString(failure error) string {
	return Default().platform.StackTraceString(failure)
}

// ForClass calls ForClass on the default Core
func ForClass(id string) *Logger { return Default().ForClass(id) }

// ForClassName calls ForClassName on the default Core
func ForClassName(id string, simple bool) *Logger { return Default().ForClassName(id, simple) }

// ForClassTag calls ForClassTag on the default Core
func ForClassTag(id, tag string) *Logger { return Default().ForClassTag(id, tag) }

// ForTag calls ForTag on the default Core
func ForTag(tag string) *Logger { return Default().ForTag(tag) }

// ForType calls ForType on the default Core
func ForType(v interface{}) *Logger { return Default().ForType(v) }

// ForTypeName calls ForTypeName on the default Core
func ForTypeName(v interface{}, simple bool) *Logger { return Default().ForTypeName(v, simple) }

// ForTypeTag calls ForTypeTag on the default Core
func ForTypeTag(v interface{}, tag string) *Logger { return Default().ForTypeTag(v, tag) }

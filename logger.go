package logcat

// Logger writes records under a fixed tag and message prefix.
//
// A Logger is immutable and safe for concurrent use. Build one per call
// site (typically a package variable) with ForClass, ForType or ForTag.
//
// Leveled calls come in three forms:
//   - X(template, args...) substitutes `{}` tokens of template with args.
//     A trailing non-nil error in args is not substituted but attached to
//     the record as its failure.
//   - XValue(v) logs the string form of v.
//   - XErr(err, template, args...) attaches err and substitutes every arg.
type Logger struct {
	core   *Core
	tag    string
	prefix string
}

// Tag returns the tag records are written under
func (l *Logger) Tag() string {
	return l.tag
}

// Prefix returns the text prepended to every message
func (l *Logger) Prefix() string {
	return l.prefix
}

// IsLoggable reports whether a record at priority p would be written
func (l *Logger) IsLoggable(p Priority) bool {
	return !l.core.muted(p) && l.core.platform.IsLoggable(l.tag, p)
}

func (l *Logger) log(p Priority, template string, args []interface{}) {
	if l.core.muted(p) {
		return
	}
	a := SplitArgs(args)
	l.core.platform.Println(p, l.tag, l.core.render.format(l.prefix, template, a.Values), a.Failure)
}

func (l *Logger) logErr(p Priority, failure error, template string, args []interface{}) {
	if l.core.muted(p) {
		return
	}
	l.core.platform.Println(p, l.tag, l.core.render.format(l.prefix, template, args), failure)
}

func (l *Logger) logValue(p Priority, v interface{}) {
	if l.core.muted(p) {
		return
	}
	l.core.platform.Println(p, l.tag, l.prefix+l.core.render.stringify(v), nil)
}

// Verbose logs template at Verbose priority
func (l *Logger) Verbose(template string, args ...interface{}) {
	l.log(Verbose, template, args)
}

// VerboseValue logs the string form of v at Verbose priority
func (l *Logger) VerboseValue(v interface{}) {
	l.logValue(Verbose, v)
}

// VerboseErr logs template at Verbose priority with failure attached
func (l *Logger) VerboseErr(failure error, template string, args ...interface{}) {
	l.logErr(Verbose, failure, template, args)
}

// Debug logs template at Debug priority
func (l *Logger) Debug(template string, args ...interface{}) {
	l.log(Debug, template, args)
}

// DebugValue logs the string form of v at Debug priority
func (l *Logger) DebugValue(v interface{}) {
	l.logValue(Debug, v)
}

// DebugErr logs template at Debug priority with failure attached
func (l *Logger) DebugErr(failure error, template string, args ...interface{}) {
	l.logErr(Debug, failure, template, args)
}

// Info logs template at Info priority
func (l *Logger) Info(template string, args ...interface{}) {
	l.log(Info, template, args)
}

// InfoValue logs the string form of v at Info priority
func (l *Logger) InfoValue(v interface{}) {
	l.logValue(Info, v)
}

// InfoErr logs template at Info priority with failure attached
func (l *Logger) InfoErr(failure error, template string, args ...interface{}) {
	l.logErr(Info, failure, template, args)
}

// Warn logs template at Warn priority
func (l *Logger) Warn(template string, args ...interface{}) {
	l.log(Warn, template, args)
}

// WarnValue logs the string form of v at Warn priority
func (l *Logger) WarnValue(v interface{}) {
	l.logValue(Warn, v)
}

// WarnErr logs template at Warn priority with failure attached
func (l *Logger) WarnErr(failure error, template string, args ...interface{}) {
	l.logErr(Warn, failure, template, args)
}

// Error logs template at Error priority
func (l *Logger) Error(template string, args ...interface{}) {
	l.log(Error, template, args)
}

// ErrorValue logs the string form of v at Error priority
func (l *Logger) ErrorValue(v interface{}) {
	l.logValue(Error, v)
}

// ErrorErr logs template at Error priority with failure attached
func (l *Logger) ErrorErr(failure error, template string, args ...interface{}) {
	l.logErr(Error, failure, template, args)
}

// Assert logs template at Assert priority, for conditions that should
// never happen
func (l *Logger) Assert(template string, args ...interface{}) {
	l.log(Assert, template, args)
}

// AssertValue logs the string form of v at Assert priority
func (l *Logger) AssertValue(v interface{}) {
	l.logValue(Assert, v)
}

// AssertErr logs template at Assert priority with failure attached
func (l *Logger) AssertErr(failure error, template string, args ...interface{}) {
	l.logErr(Assert, failure, template, args)
}

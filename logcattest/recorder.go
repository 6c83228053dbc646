// Package logcattest provides a logcat platform recording records in memory
package logcattest

import (
	"sync"

	"github.com/deixis/logcat"
)

// Entry is a recorded log record
type Entry struct {
	Priority logcat.Priority
	Tag      string
	Message  string
	Failure  error
}

// Recorder is a logcat.Platform keeping every record in memory
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry

	min logcat.Priority
}

// New returns a Recorder accepting every priority
func New() *Recorder {
	return &Recorder{min: logcat.Verbose}
}

// NewCore returns a Core writing to a new Recorder
func NewCore(opts ...logcat.Option) (*logcat.Core, *Recorder) {
	r := New()
	return logcat.NewCore(r, opts...), r
}

// WithMinPriority makes r report records below p as not loggable.
// They are still recorded when written.
func (r *Recorder) WithMinPriority(p logcat.Priority) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.min = p
	return r
}

func (r *Recorder) Println(p logcat.Priority, tag, msg string, failure error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Priority: p, Tag: tag, Message: msg, Failure: failure})
}

func (r *Recorder) IsLoggable(tag string, p logcat.Priority) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return p >= r.min
}

func (r *Recorder) StackTraceString(failure error) string {
	return logcat.RenderFailure(failure)
}

// Entries returns a copy of the recorded entries
func (r *Recorder) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.entries...)
}

// Last returns the last recorded entry
func (r *Recorder) Last() (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Lines returns the number of records for the given priority
func (r *Recorder) Lines(p logcat.Priority) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.entries {
		if e.Priority == p {
			n++
		}
	}
	return n
}

// Len returns the number of recorded entries
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reset drops every recorded entry
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

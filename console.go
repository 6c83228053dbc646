package logcat

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ColorMode decides whether the console platform colours its output
type ColorMode int

const (
	// ColorAuto colours output written to a terminal
	ColorAuto ColorMode = iota
	// ColorAlways always colours output
	ColorAlways
	// ColorNever never colours output
	ColorNever
)

// ParseColorMode parses a string representation of a colour mode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	}
	return ColorAuto, errors.Errorf("unknown color mode <%s>", s)
}

const consoleTimeFormat = "01-02 15:04:05.000"

var priorityColors = map[Priority]color.Attribute{
	Verbose: color.FgHiBlack,
	Debug:   color.FgBlue,
	Info:    color.FgGreen,
	Warn:    color.FgYellow,
	Error:   color.FgRed,
	Assert:  color.FgHiMagenta,
}

// ConsoleOptions configures a Console
type ConsoleOptions struct {
	// MinPriority drops records below this priority (Verbose when zero)
	MinPriority Priority
	Color       ColorMode
	// Renderer renders failures (RenderFailure when nil)
	Renderer func(error) string
	// Now returns the record timestamp (time.Now when nil)
	Now func() time.Time
}

// Console is a Platform writing logcat-style lines to an io.Writer.
// It is the default platform everywhere but on Android.
//
// e.g. 10-19 15:04:05.000 I/NET: request /login took 42 ms
type Console struct {
	mu sync.Mutex
	w  io.Writer

	min    Priority
	render func(error) string
	now    func() time.Time
	colors map[Priority]*color.Color
	err    error
}

// NewConsole returns a Console writing to w
func NewConsole(w io.Writer, opts ConsoleOptions) *Console {
	c := &Console{
		w:      w,
		min:    opts.MinPriority,
		render: opts.Renderer,
		now:    opts.Now,
	}
	if c.min < Verbose {
		c.min = Verbose
	}
	if c.render == nil {
		c.render = RenderFailure
	}
	if c.now == nil {
		c.now = time.Now
	}

	useColor := opts.Color == ColorAlways
	f, isFile := w.(*os.File)
	if isFile && opts.Color == ColorAuto {
		fd := f.Fd()
		useColor = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	if useColor {
		if isFile {
			c.w = colorable.NewColorable(f)
		}
		c.colors = make(map[Priority]*color.Color, len(priorityColors))
		for p, attr := range priorityColors {
			col := color.New(attr)
			col.EnableColor()
			c.colors[p] = col
		}
	}
	return c
}

// Println implements Platform
func (c *Console) Println(p Priority, tag, msg string, failure error) {
	if !c.IsLoggable(tag, p) {
		return
	}

	ts := c.now().Format(consoleTimeFormat)
	header := p.String() + "/" + tag + ":"
	if col, ok := c.colors[p]; ok {
		header = col.Sprint(header)
	}

	var b bytes.Buffer
	writeLines := func(s string) {
		for _, line := range strings.Split(s, "\n") {
			b.WriteString(ts)
			b.WriteByte(' ')
			b.WriteString(header)
			b.WriteByte(' ')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	writeLines(msg)
	if failure != nil {
		writeLines(strings.TrimRight(c.render(failure), "\n"))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.w.Write(b.Bytes()); err != nil && c.err == nil {
		c.err = errors.Wrap(err, "console write failed")
	}
}

// Err returns the first error returned by the underlying writer
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// IsLoggable implements Platform
func (c *Console) IsLoggable(tag string, p Priority) bool {
	return p >= c.min
}

// StackTraceString implements Platform
func (c *Console) StackTraceString(failure error) string {
	if failure == nil {
		return ""
	}
	return c.render(failure)
}

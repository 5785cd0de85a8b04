package dbglog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Logger filters messages by severity and hands formatted lines to a
// sink. All configuration is held by the instance; the zero-cost path
// for disabled or below-threshold calls never formats the message.
type Logger struct {
	mu        sync.Mutex
	threshold Severity
	enabled   bool
	caller    bool
	tag       string
	sink      Sink
	format    Formatter
	now       func() time.Time
}

// New returns a logger that emits messages at or above the given
// threshold. It writes to stdout using the default formatter and starts
// enabled only in builds carrying the debug tag.
func New(threshold Severity) *Logger {
	return &Logger{
		threshold: threshold,
		enabled:   debugBuild,
		caller:    true,
		sink:      StdoutSink,
		format:    FormatEntry,
		now:       time.Now,
	}
}

// SetThreshold sets the maximum severity rank that is still emitted.
func (l *Logger) SetThreshold(threshold Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = threshold
}

// SetEnabled switches output on or off regardless of the build-time
// default.
func (l *Logger) SetEnabled(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = on
}

// SetSink replaces the destination function for formatted lines.
func (l *Logger) SetSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink = sink
}

// SetFormatter replaces the line formatter.
func (l *Logger) SetFormatter(format Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
}

// SetTag sets a tag included in every formatted line. An empty tag is
// omitted from the output.
func (l *Logger) SetTag(tag string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tag = tag
}

// SetCallerInfo toggles automatic capture of the call site. Explicit
// sites passed to LogAt are always used.
func (l *Logger) SetCallerInfo(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.caller = on
}

// SetClock replaces the time source used for entry timestamps.
func (l *Logger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Enabled reports whether a call at the given severity would produce
// output.
func (l *Logger) Enabled(s Severity) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled && s.Enabled(l.threshold)
}

// Severe logs a message at the severe level.
func (l *Logger) Severe(format string, v ...interface{}) {
	l.log(SeveritySevere, CallSite{}, 2, format, v...)
}

// Error logs a message at the error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(SeverityError, CallSite{}, 2, format, v...)
}

// Warning logs a message at the warning level.
func (l *Logger) Warning(format string, v ...interface{}) {
	l.log(SeverityWarning, CallSite{}, 2, format, v...)
}

// Info logs a message at the info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(SeverityInfo, CallSite{}, 2, format, v...)
}

// Debug logs a message at the debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(SeverityDebug, CallSite{}, 2, format, v...)
}

// Verbose logs a message at the verbose level.
func (l *Logger) Verbose(format string, v ...interface{}) {
	l.log(SeverityVerbose, CallSite{}, 2, format, v...)
}

// LogAt logs a message at the given severity with caller-supplied
// call-site metadata. A zero site falls back to automatic capture.
func (l *Logger) LogAt(s Severity, site CallSite, format string, v ...interface{}) {
	l.log(s, site, 2, format, v...)
}

func (l *Logger) log(s Severity, site CallSite, calldepth int, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || !s.Enabled(l.threshold) {
		return
	}
	if site == (CallSite{}) && l.caller {
		site = resolveCaller(calldepth)
	}
	e := Entry{
		Time:     l.now(),
		Severity: s,
		Tag:      l.tag,
		Site:     site,
		Message:  fmt.Sprintf(format, v...),
	}
	l.sink(l.format(e))
}

// resolveCaller resolves the call site skip frames above log. The column
// is left at zero: the runtime only reports file and line.
func resolveCaller(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}
	}
	site := CallSite{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = filepath.Base(fn.Name())
	}
	return site
}

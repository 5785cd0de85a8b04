package dbglog

import "time"

// CallSite identifies where a log call was made. A zero CallSite means
// the location is unknown; the Column is zero when only file and line
// could be resolved.
type CallSite struct {
	File     string
	Line     int
	Column   int
	Function string
}

// Entry is a single log message together with its metadata.
type Entry struct {
	Time     time.Time
	Severity Severity
	Tag      string
	Site     CallSite
	Message  string
}

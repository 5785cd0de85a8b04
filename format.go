package dbglog

import "fmt"

// TimeLayout is the timestamp layout used by the default formatter.
const TimeLayout = "2006-01-02 15:04:05.000"

// Formatter turns an entry into a single output line.
type Formatter func(Entry) string

// FormatEntry is the default formatter. It produces lines like
//
//	2026-08-26 14:03:07.512 [W] [mytag] widget.go:42:7 widget.Load: message
//
// The tag is omitted when empty, the column when unknown and the whole
// location block when no file is known.
func FormatEntry(e Entry) string {
	return formatWith(TimeLayout, e)
}

// NewFormatter returns a Formatter that uses the given timestamp layout
// instead of TimeLayout.
func NewFormatter(layout string) Formatter {
	return func(e Entry) string {
		return formatWith(layout, e)
	}
}

func formatWith(layout string, e Entry) string {
	out := e.Time.Format(layout) + " [" + e.Severity.Code() + "]"
	if e.Tag != "" {
		out += " [" + e.Tag + "]"
	}
	if e.Site.File != "" {
		out += fmt.Sprintf(" %s:%d", e.Site.File, e.Site.Line)
		if e.Site.Column > 0 {
			out += fmt.Sprintf(":%d", e.Site.Column)
		}
	}
	if e.Site.Function != "" {
		out += " " + e.Site.Function + ":"
	}
	return out + " " + e.Message
}

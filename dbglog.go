// Package dbglog is a minimal leveled console-logging facade. Messages
// carry a severity, timestamp and call site, are filtered against a
// threshold and written through a single swappable sink. Output is off
// by default unless the binary is built with the debug tag.
package dbglog

// Default is the logger behind the package-level functions.
var Default = New(SeverityInfo)

// SetLevel sets the severity threshold of the default logger.
func SetLevel(threshold Severity) {
	Default.SetThreshold(threshold)
}

// SetSink replaces the sink of the default logger.
func SetSink(sink Sink) {
	Default.SetSink(sink)
}

// SetEnabled switches the default logger on or off.
func SetEnabled(on bool) {
	Default.SetEnabled(on)
}

// Severe logs a message at the severe level via the default logger.
func Severe(format string, v ...interface{}) {
	Default.log(SeveritySevere, CallSite{}, 2, format, v...)
}

// Error logs a message at the error level via the default logger.
func Error(format string, v ...interface{}) {
	Default.log(SeverityError, CallSite{}, 2, format, v...)
}

// Warning logs a message at the warning level via the default logger.
func Warning(format string, v ...interface{}) {
	Default.log(SeverityWarning, CallSite{}, 2, format, v...)
}

// Info logs a message at the info level via the default logger.
func Info(format string, v ...interface{}) {
	Default.log(SeverityInfo, CallSite{}, 2, format, v...)
}

// Debug logs a message at the debug level via the default logger.
func Debug(format string, v ...interface{}) {
	Default.log(SeverityDebug, CallSite{}, 2, format, v...)
}

// Verbose logs a message at the verbose level via the default logger.
func Verbose(format string, v ...interface{}) {
	Default.log(SeverityVerbose, CallSite{}, 2, format, v...)
}

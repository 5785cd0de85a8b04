package dbglog

import "strings"

// Severity is the ranked level of a log message. Lower rank means more
// severe: a message is emitted iff its rank is numerically <= the
// configured threshold.
type Severity int

const (
	// SeverityOff suppresses all output when used as a threshold.
	SeverityOff Severity = iota

	// SeveritySevere represents unrecoverable failures.
	SeveritySevere

	// SeverityError represents failures in specific operations.
	SeverityError

	// SeverityWarning represents potential issues that don't prevent
	// the program from functioning.
	SeverityWarning

	// SeverityInfo represents informational messages.
	SeverityInfo

	// SeverityDebug represents diagnostic messages.
	SeverityDebug

	// SeverityVerbose represents high-volume trace messages.
	SeverityVerbose
)

var severityNames = map[Severity]string{
	SeverityOff:     "off",
	SeveritySevere:  "severe",
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
	SeverityDebug:   "debug",
	SeverityVerbose: "verbose",
}

var severityCodes = map[Severity]string{
	SeveritySevere:  "S",
	SeverityError:   "E",
	SeverityWarning: "W",
	SeverityInfo:    "I",
	SeverityDebug:   "D",
	SeverityVerbose: "V",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// Code returns the one-letter tag used in formatted output.
func (s Severity) Code() string {
	if code, ok := severityCodes[s]; ok {
		return code
	}
	return "?"
}

// Enabled reports whether a message at this severity passes the given
// threshold.
func (s Severity) Enabled(threshold Severity) bool {
	return s <= threshold
}

// ParseSeverity maps a level name or its one-letter code to a Severity.
// Matching is case-insensitive; unknown input yields SeverityInfo.
func ParseSeverity(level string) Severity {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "none":
		return SeverityOff
	case "severe", "s":
		return SeveritySevere
	case "error", "err", "e":
		return SeverityError
	case "warning", "warn", "w":
		return SeverityWarning
	case "info", "i":
		return SeverityInfo
	case "debug", "d":
		return SeverityDebug
	case "verbose", "v":
		return SeverityVerbose
	default:
		return SeverityInfo
	}
}

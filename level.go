package rotolog

import (
	"fmt"
	"strings"
)

// Severity is the ordered set of log levels. The numeric value grows with
// verbosity: SeverityError is the most severe and SeverityVerbose the least.
// A record passes a threshold iff its severity value is at or below the
// threshold value, so a threshold of SeverityVerbose forwards everything and
// SeverityError forwards only errors. This direction is fixed and used by
// every filtering decision in the package.
type Severity uint32

const (
	SeverityError Severity = iota
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityVerbose
)

var severityNames = [...]string{"error", "warn", "info", "debug", "verbose"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", uint32(s))
}

// Enabled reports whether a record at severity s passes threshold t.
func (s Severity) Enabled(t Severity) bool {
	return s <= t
}

// ParseSeverity parses a severity name as used in configuration files.
// Matching is case-insensitive; "warning" is accepted as an alias for "warn".
func ParseSeverity(level string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return SeverityError, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "info":
		return SeverityInfo, nil
	case "debug":
		return SeverityDebug, nil
	case "verbose":
		return SeverityVerbose, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", level)
	}
}

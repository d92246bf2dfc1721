package model

import "strings"

// Severity classifies the importance of an Issue. Values are totally
// ordered: SeverityError is the most important, SeverityWarningLow the
// least.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarningHigh
	SeverityWarningNormal
	SeverityWarningLow
)

// String returns the canonical name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarningHigh:
		return "WARNING_HIGH"
	case SeverityWarningNormal:
		return "WARNING_NORMAL"
	case SeverityWarningLow:
		return "WARNING_LOW"
	default:
		return "UNKNOWN"
	}
}

// MarshalText makes severities render as their canonical name in JSON.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AtLeast reports whether s is as important as other or more so.
func (s Severity) AtLeast(other Severity) bool {
	return s <= other
}

// ParseSeverity maps a canonical severity name (as produced by String,
// case-insensitive) back to its value. Unknown names resolve to
// SeverityWarningNormal.
func ParseSeverity(name string) Severity {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return SeverityError
	case "WARNING_HIGH", "HIGH":
		return SeverityWarningHigh
	case "WARNING_LOW", "LOW":
		return SeverityWarningLow
	default:
		return SeverityWarningNormal
	}
}

// GuessSeverity maps a free-form tool-specific level string to a Severity.
// It never fails: unrecognized or empty input resolves to
// SeverityWarningNormal. Substrings are matched case-insensitively, most
// important first, so "CriticalError" maps to SeverityError and
// "CriticalWarning" to SeverityWarningHigh.
func GuessSeverity(level string) Severity {
	l := strings.ToLower(level)
	switch {
	case strings.Contains(l, "error"), strings.Contains(l, "fatal"):
		return SeverityError
	case strings.Contains(l, "critical"), strings.Contains(l, "high"):
		return SeverityWarningHigh
	case strings.Contains(l, "info"), strings.Contains(l, "note"),
		strings.Contains(l, "low"), strings.Contains(l, "style"):
		return SeverityWarningLow
	default:
		return SeverityWarningNormal
	}
}

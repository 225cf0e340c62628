package logparse

import (
	"strings"

	"github.com/tinytelemetry/monlomon/internal/model"
)

// severityAbbreviations maps MongoDB's single-letter "s" field to a level.
var severityAbbreviations = map[string]model.Severity{
	"F": model.SeverityFatal,
	"E": model.SeverityError,
	"W": model.SeverityWarning,
	"I": model.SeverityInformational,
}

// ParseSeverity converts a MongoDB severity abbreviation to a Severity and its
// display text. Matching is exact: anything outside the table (including
// lowercase letters and debug levels such as "D1") comes back as
// SeverityUnknown with the input preserved verbatim.
func ParseSeverity(abbrev string) (model.Severity, string) {
	if sev, ok := severityAbbreviations[abbrev]; ok {
		return sev, sev.String()
	}
	return model.SeverityUnknown, abbrev
}

// Abbreviation returns the single-letter form of a known severity, or "" for
// SeverityUnknown.
func Abbreviation(sev model.Severity) string {
	for abbrev, s := range severityAbbreviations {
		if s == sev {
			return abbrev
		}
	}
	return ""
}

// ParseSeverityName resolves a user-supplied level name ("error", "E",
// "warning", ...) to a Severity. Used by CLI flags, not by the decoder.
func ParseSeverityName(name string) (model.Severity, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))

	switch normalized {
	case "I", "INFO", "INFORMATIONAL":
		return model.SeverityInformational, true
	case "W", "WARN", "WARNING":
		return model.SeverityWarning, true
	case "E", "ERR", "ERROR":
		return model.SeverityError, true
	case "F", "FATAL":
		return model.SeverityFatal, true
	default:
		return model.SeverityUnknown, false
	}
}

// StripQuotes removes every double-quote character from s. Non-string JSON
// scalars are stored by their JSON text, which would otherwise keep the
// quoting of nested strings.
func StripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

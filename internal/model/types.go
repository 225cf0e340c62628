package model

// Severity is the log level of a record. The four MongoDB levels form a
// closed set; anything else decodes to SeverityUnknown and keeps its literal
// text in LogEntry.SeverityText.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityInformational
	SeverityWarning
	SeverityError
	SeverityFatal
)

// Severities lists the filterable levels in legend order.
var Severities = []Severity{
	SeverityInformational,
	SeverityWarning,
	SeverityError,
	SeverityFatal,
}

// String returns the full severity word.
func (s Severity) String() string {
	switch s {
	case SeverityInformational:
		return "Informational"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// Known reports whether s is one of the four filterable levels.
func (s Severity) Known() bool {
	return s >= SeverityInformational && s <= SeverityFatal
}

// LogEntry is one decoded MongoDB log record. Entries are immutable once
// decoded; text fields carry no quoting left over from the JSON encoding.
type LogEntry struct {
	Timestamp    string
	Severity     Severity
	SeverityText string // literal level for SeverityUnknown, full word otherwise
	Component    string
	Context      string
	Message      string
	ID           string
	Attributes   any // opaque payload from "attr", shown verbatim in the detail pane
}

// SeverityLabel is the display form of the entry's level.
func (e LogEntry) SeverityLabel() string {
	if e.Severity.Known() {
		return e.Severity.String()
	}
	return e.SeverityText
}

// TableHeaders are the column labels of the log table.
var TableHeaders = []string{"#", "Time", "Severity", "Component", "Context", "Message"}

package model

// Shared defaults used by the CLI and the viewer.
const (
	DefaultMaxLineSize  = 1024 * 1024 // 1MB
	DefaultDetailFormat = "json"
	DefaultLogLevel     = "info"
	DefaultLogMaxSizeMB = 10

	// NoLogsNotice is reported instead of an error when ingestion yields nothing.
	NoLogsNotice = "no logs"
	// NoSelectionPlaceholder fills the detail pane when no row is selected.
	NoSelectionPlaceholder = "No log selected"
)

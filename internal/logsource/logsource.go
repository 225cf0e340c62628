package logsource

// Line is one raw input line tagged with its 1-based position in the source.
// TooLong lines exceeded the source's maximum size; their Text is empty.
type Line struct {
	Number  int
	Text    string
	TooLong bool
}

// LogSource is the interface for the line-oriented inputs the viewer reads
// (stdin or a single file).
type LogSource interface {
	Lines() <-chan Line // read-only channel of log lines, closed at end of input
	Err() error         // terminal read error, valid once Lines is closed
	Stop()              // graceful shutdown
	Name() string       // "stdin" or the file path
}

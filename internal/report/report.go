// Package report prints the filtered view as a plain text table for
// non-interactive use.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/tinytelemetry/monlomon/internal/session"
)

// Options controls table output.
type Options struct {
	// MaxMessageWidth truncates the message column; 0 disables truncation.
	MaxMessageWidth int
	// Summary appends a "N of M entries" line below the table.
	Summary bool
}

// Write renders the session's current view to w.
func Write(w io.Writer, s *session.Session, opts Options) error {
	snap := s.Snapshot()
	if snap.Notice != "" {
		_, err := fmt.Fprintln(w, snap.Notice)
		return err
	}

	rows := make([][]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		out := append([]string(nil), row...)
		if opts.MaxMessageWidth > 0 {
			last := len(out) - 1
			out[last] = truncate(out[last], opts.MaxMessageWidth)
		}
		rows = append(rows, out)
	}

	header := make([]any, len(snap.Headers))
	for i, h := range snap.Headers {
		header[i] = h
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if opts.Summary {
		_, err := fmt.Fprintf(w, "%s of %s entries shown%s\n",
			humanize.Comma(int64(snap.Visible)),
			humanize.Comma(int64(snap.Total)),
			excludedSuffix(snap.Excluded))
		return err
	}
	return nil
}

func excludedSuffix(excluded []string) string {
	if len(excluded) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d excluded %s)", len(excluded), pluralMessage(len(excluded)))
}

func pluralMessage(n int) string {
	if n == 1 {
		return "message"
	}
	return "messages"
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

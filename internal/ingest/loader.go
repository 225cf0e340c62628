package ingest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/monlomon/internal/logsource"
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/store"
)

// decodedBuffer bounds how far the reader may run ahead of the store.
const decodedBuffer = 1024

// Stats summarises one ingestion run.
type Stats struct {
	Lines   int // non-empty lines read from the source
	Decoded int // entries appended to the store
	Skipped int // lines that were oversized or not JSON objects
}

// Load drains src to completion, decoding every line and appending the
// results to st in input order, then seals st. Lines that do not decode or
// exceed the source's size limit are skipped and reading continues.
func Load(ctx context.Context, src logsource.LogSource, st *store.Store, logger zerolog.Logger) (Stats, error) {
	defer st.Seal()

	var lines, skipped, decoded int
	entries := make(chan model.LogEntry, decodedBuffer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(entries)
		defer src.Stop()
		for {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case line, ok := <-src.Lines():
				if !ok {
					return src.Err()
				}
				lines++
				if line.TooLong {
					skipped++
					logger.Warn().Str("source", src.Name()).Int("line", line.Number).Msg("skipping oversized line")
					continue
				}
				entry, ok := Decode(line.Text)
				if !ok {
					skipped++
					logger.Debug().Str("source", src.Name()).Int("line", line.Number).Msg("skipping undecodable line")
					continue
				}
				select {
				case entries <- entry:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		}
	})

	g.Go(func() error {
		for entry := range entries {
			if err := st.Append(entry); err != nil {
				return fmt.Errorf("appending entry: %w", err)
			}
			decoded++
		}
		return nil
	})

	err := g.Wait()
	stats := Stats{Lines: lines, Decoded: decoded, Skipped: skipped}
	if err != nil {
		return stats, fmt.Errorf("ingesting %s: %w", src.Name(), err)
	}

	logger.Info().
		Str("source", src.Name()).
		Int("lines", stats.Lines).
		Int("decoded", stats.Decoded).
		Int("skipped", stats.Skipped).
		Msg("ingestion complete")
	return stats, nil
}

package logsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	// DefaultBufferSize is the default channel buffer size for input lines.
	DefaultBufferSize = 50_000

	// DefaultMaxLineSize is the default maximum size (in bytes) of a single line.
	DefaultMaxLineSize = 1024 * 1024 // 1MB
)

// Config holds tunable parameters for reader-backed sources.
type Config struct {
	BufferSize  int
	MaxLineSize int
}

// ReaderSource reads log lines from an io.Reader in a background goroutine.
type ReaderSource struct {
	name   string
	ch     chan Line
	cancel context.CancelFunc
	closer io.Closer

	mu  sync.Mutex
	err error
}

// NewStdinSource creates a ReaderSource over os.Stdin.
func NewStdinSource(ctx context.Context, conf ...Config) *ReaderSource {
	return newReaderSource(ctx, "stdin", os.Stdin, nil, conf...)
}

// NewFileSource opens path and creates a ReaderSource over it. The file is
// closed when the source reaches end of input or is stopped.
func NewFileSource(ctx context.Context, path string, conf ...Config) (*ReaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return newReaderSource(ctx, path, f, f, conf...), nil
}

// NewReaderSource creates a ReaderSource over an arbitrary reader.
func NewReaderSource(ctx context.Context, name string, r io.Reader, conf ...Config) *ReaderSource {
	return newReaderSource(ctx, name, r, nil, conf...)
}

func newReaderSource(ctx context.Context, name string, r io.Reader, closer io.Closer, conf ...Config) *ReaderSource {
	bufferSize := DefaultBufferSize
	maxLineSize := DefaultMaxLineSize
	if len(conf) > 0 {
		if conf[0].BufferSize > 0 {
			bufferSize = conf[0].BufferSize
		}
		if conf[0].MaxLineSize > 0 {
			maxLineSize = conf[0].MaxLineSize
		}
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &ReaderSource{
		name:   name,
		ch:     make(chan Line, bufferSize),
		cancel: cancel,
		closer: closer,
	}
	go s.read(ctx, r, maxLineSize)
	return s
}

func (s *ReaderSource) read(ctx context.Context, r io.Reader, maxLineSize int) {
	defer close(s.ch)
	if s.closer != nil {
		defer func() { _ = s.closer.Close() }()
	}

	br := bufio.NewReaderSize(r, min(64*1024, maxLineSize))

	// Use a single goroutine for the blocking reads with a done channel to
	// detect context cancellation without spawning a goroutine per line.
	results := make(chan Line)
	readErr := make(chan error, 1)
	go func() {
		defer close(results)
		n := 0
		for {
			text, tooLong, err := readLine(br, maxLineSize)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				readErr <- fmt.Errorf("logsource: reading %s: %w", s.name, err)
				return
			}
			n++
			if text == "" && !tooLong {
				continue
			}
			select {
			case results <- Line{Number: n, Text: text, TooLong: tooLong}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-results:
			if !ok {
				select {
				case err := <-readErr:
					s.setErr(err)
				default:
				}
				return
			}
			select {
			case s.ch <- line:
			case <-ctx.Done():
				return
			}
		}
	}
}

// readLine returns the next line without its line ending. A line longer than
// maxLineSize is consumed up to its newline and reported with tooLong set and
// empty text. io.EOF is returned only when no bytes remain.
func readLine(br *bufio.Reader, maxLineSize int) (text string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, rerr := br.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong {
			buf = append(buf, chunk...)
			if len(trimEOL(buf)) > maxLineSize {
				tooLong = true
				buf = nil
			}
		}
		switch {
		case rerr == nil:
			return string(trimEOL(buf)), tooLong, nil
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if !read {
				return "", false, io.EOF
			}
			return string(trimEOL(buf)), tooLong, nil
		default:
			return "", false, rerr
		}
	}
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}

func (s *ReaderSource) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Err returns the error that ended reading, if any. It is only meaningful
// after Lines has been closed.
func (s *ReaderSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ReaderSource) Lines() <-chan Line { return s.ch }
func (s *ReaderSource) Stop()              { s.cancel() }
func (s *ReaderSource) Name() string       { return s.name }

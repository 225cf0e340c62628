package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/monlomon/internal/logsource"
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/store"
)

func TestLoad_SkipsInvalidLinesAndSeals(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		`{"s":"I","msg":"first"}`,
		`{"s":"I","msg":"second"}`,
		`not json at all`,
		`{"s":"E","msg":"third"}`,
	}, "\n")

	src := logsource.NewReaderSource(context.Background(), "test", strings.NewReader(input))
	st := store.New()

	stats, err := Load(context.Background(), src, st, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, Stats{Lines: 4, Decoded: 3, Skipped: 1}, stats)
	assert.True(t, st.Sealed())
	require.Equal(t, 3, st.Len())

	var msgs []string
	for _, e := range st.Entries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"first", "second", "third"}, msgs)
}

func TestLoad_EmptyInput(t *testing.T) {
	t.Parallel()
	src := logsource.NewReaderSource(context.Background(), "empty", strings.NewReader(""))
	st := store.New()

	stats, err := Load(context.Background(), src, st, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, stats.Decoded)
	assert.Zero(t, st.Len())
	assert.True(t, st.Sealed())
}

func TestLoad_OversizedLineSkipped(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		`{"s":"I","msg":"a"}`,
		`{"s":"I","msg":"` + strings.Repeat("x", 200) + `"}`,
		`{"s":"E","msg":"b"}`,
		`{"s":"W","msg":"c"}`,
	}, "\n")
	src := logsource.NewReaderSource(context.Background(), "big", strings.NewReader(input), logsource.Config{MaxLineSize: 64})
	st := store.New()

	stats, err := Load(context.Background(), src, st, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 4, Decoded: 3, Skipped: 1}, stats)

	var msgs []string
	for _, e := range st.Entries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"a", "b", "c"}, msgs)
}

func TestLoad_SealedStoreFails(t *testing.T) {
	t.Parallel()
	src := logsource.NewReaderSource(context.Background(), "test", strings.NewReader(`{"s":"I","msg":"x"}`))
	st := store.NewSealed(model.LogEntry{Message: "existing"})

	_, err := Load(context.Background(), src, st, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrSealed))
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := logsource.NewReaderSource(context.Background(), "test", strings.NewReader(`{"s":"I","msg":"x"}`))
	_, err := Load(ctx, src, store.New(), zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

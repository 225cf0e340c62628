package ingest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/monlomon/internal/model"
)

const startupLine = `{"t":{"$date":"2020-05-01T15:16:17.180+00:00"},"s":"I","c":"NETWORK","id":12345,"ctx":"listener","msg":"Listening on","attr":{"address":"127.0.0.1","port":27017}}`

func TestDecode_MongoRecord(t *testing.T) {
	t.Parallel()
	entry, ok := Decode(startupLine)
	require.True(t, ok)

	assert.Equal(t, "2020-05-01T15:16:17.180+00:00", entry.Timestamp)
	assert.Equal(t, model.SeverityInformational, entry.Severity)
	assert.Equal(t, "Informational", entry.SeverityLabel())
	assert.Equal(t, "NETWORK", entry.Component)
	assert.Equal(t, "listener", entry.Context)
	assert.Equal(t, "12345", entry.ID)
	assert.Equal(t, "Listening on", entry.Message)

	attrs, ok := entry.Attributes.(map[string]any)
	require.True(t, ok, "attributes should decode to an object")
	assert.Equal(t, "127.0.0.1", attrs["address"])
	assert.Equal(t, json.Number("27017"), attrs["port"])
}

func TestDecode_SeverityTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		abbrev string
		want   model.Severity
		label  string
	}{
		{"F", model.SeverityFatal, "Fatal"},
		{"E", model.SeverityError, "Error"},
		{"W", model.SeverityWarning, "Warning"},
		{"I", model.SeverityInformational, "Informational"},
		{"D3", model.SeverityUnknown, "D3"},
	}

	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			t.Parallel()
			entry, ok := Decode(`{"s":"` + tt.abbrev + `","msg":"m"}`)
			require.True(t, ok)
			assert.Equal(t, tt.want, entry.Severity)
			assert.Equal(t, tt.label, entry.SeverityLabel())
		})
	}
}

func TestDecode_MissingFieldsDefaultEmpty(t *testing.T) {
	t.Parallel()
	entry, ok := Decode(`{"msg":"only a message"}`)
	require.True(t, ok)

	assert.Equal(t, "only a message", entry.Message)
	assert.Empty(t, entry.Timestamp)
	assert.Empty(t, entry.Component)
	assert.Empty(t, entry.Context)
	assert.Empty(t, entry.ID)
	assert.Empty(t, entry.SeverityText)
	assert.Equal(t, model.SeverityUnknown, entry.Severity)
	assert.Nil(t, entry.Attributes)
}

func TestDecode_NoQuotingArtifacts(t *testing.T) {
	t.Parallel()
	entry, ok := Decode(`{"s":"W","c":"REPL","ctx":{"thread":"conn1"},"id":"51800","msg":"Slow query","t":{"$date":{"$numberLong":"1588346177180"}}}`)
	require.True(t, ok)

	assert.Equal(t, "REPL", entry.Component)
	assert.Equal(t, "{thread:conn1}", entry.Context)
	assert.Equal(t, "51800", entry.ID)
	assert.Equal(t, "2020-05-01T15:16:17.180Z", entry.Timestamp)
	for _, field := range []string{entry.Component, entry.Context, entry.ID, entry.Message, entry.Timestamp, entry.SeverityLabel()} {
		assert.NotContains(t, field, `"`)
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()
	for _, line := range []string{
		"this is not json",
		`{"s":"I"`,
		`null`,
		`["I","msg"]`,
		`"just a string"`,
		``,
	} {
		_, ok := Decode(line)
		assert.False(t, ok, "Decode(%q) should be discarded", line)
	}
}

func TestDecode_NonObjectTime(t *testing.T) {
	t.Parallel()
	entry, ok := Decode(`{"t":"2020-05-01","s":"E","msg":"x"}`)
	require.True(t, ok)
	assert.Empty(t, entry.Timestamp)
	assert.Equal(t, model.SeverityError, entry.Severity)
}

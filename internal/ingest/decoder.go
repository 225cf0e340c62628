package ingest

import (
	"bytes"
	"encoding/json"

	"github.com/tinytelemetry/monlomon/internal/logparse"
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/timestamp"
)

// MongoDB structured log field names.
const (
	fieldSeverity   = "s"
	fieldTime       = "t"
	fieldDate       = "$date"
	fieldComponent  = "c"
	fieldContext    = "ctx"
	fieldID         = "id"
	fieldMessage    = "msg"
	fieldAttributes = "attr"
)

// Decode parses one JSON line into a LogEntry. It returns false when the line
// is not a JSON object; such lines are dropped by the caller.
func Decode(line string) (model.LogEntry, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(line), &raw); err != nil || raw == nil {
		return model.LogEntry{}, false
	}
	return DecodeRecord(raw), true
}

// DecodeRecord converts an already parsed MongoDB log object into a typed
// entry. Missing fields default to empty values.
func DecodeRecord(raw map[string]json.RawMessage) model.LogEntry {
	sev, sevText := logparse.ParseSeverity(ExtractStringField(raw, fieldSeverity))

	return model.LogEntry{
		Timestamp:    extractDate(raw),
		Severity:     sev,
		SeverityText: sevText,
		Component:    ExtractStringField(raw, fieldComponent),
		Context:      ExtractStringField(raw, fieldContext),
		Message:      ExtractStringField(raw, fieldMessage),
		ID:           ExtractStringField(raw, fieldID),
		Attributes:   decodeAttributes(raw[fieldAttributes]),
	}
}

// ExtractStringField returns the text form of raw[key]. JSON strings are
// returned as-is; other values use their compact JSON text with double quotes
// stripped, so {"id": 23285} yields "23285".
func ExtractStringField(raw map[string]json.RawMessage, key string) string {
	return scalarText(raw[key])
}

func scalarText(value json.RawMessage) string {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, value); err != nil {
		return logparse.StripQuotes(string(value))
	}
	return logparse.StripQuotes(compact.String())
}

func extractDate(raw map[string]json.RawMessage) string {
	var t map[string]json.RawMessage
	if err := json.Unmarshal(raw[fieldTime], &t); err != nil {
		return ""
	}
	return timestamp.FormatDate(t[fieldDate])
}

// decodeAttributes keeps numbers as json.Number so the payload renders with
// its original digits.
func decodeAttributes(value json.RawMessage) any {
	if len(bytes.TrimSpace(value)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

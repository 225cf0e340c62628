package timestamp

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/tinytelemetry/monlomon/internal/logparse"
)

// DisplayLayout is used when a date has to be rendered from epoch millis.
const DisplayLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatDate renders the value of a MongoDB extended-JSON "$date" field.
//
// Relaxed form ({"$date": "2020-05-01T15:16:17.180+00:00"}) is returned
// verbatim. Canonical form ({"$date": {"$numberLong": "1588346177180"}}) and
// bare epoch millis are formatted with DisplayLayout in UTC. Anything else
// falls back to its JSON text without quotes; a missing value yields "".
func FormatDate(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	if ms, ok := parseMillis(raw); ok {
		return time.UnixMilli(ms).UTC().Format(DisplayLayout)
	}

	return logparse.StripQuotes(string(raw))
}

func parseMillis(raw json.RawMessage) (int64, bool) {
	var wrapper struct {
		NumberLong *string `json:"$numberLong"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.NumberLong != nil {
		ms, err := strconv.ParseInt(*wrapper.NumberLong, 10, 64)
		return ms, err == nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if ms, err := n.Int64(); err == nil {
			return ms, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}

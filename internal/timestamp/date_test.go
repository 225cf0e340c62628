package timestamp

import (
	"encoding/json"
	"testing"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"relaxed", `"2020-05-01T15:16:17.180+00:00"`, "2020-05-01T15:16:17.180+00:00"},
		{"canonical", `{"$numberLong":"1588346177180"}`, "2020-05-01T15:16:17.180Z"},
		{"bare millis", `1588346177180`, "2020-05-01T15:16:17.180Z"},
		{"missing", ``, ""},
		{"null", `null`, ""},
		{"bad numberLong", `{"$numberLong":"soon"}`, "{$numberLong:soon}"},
		{"array", `["a"]`, "[a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatDate(json.RawMessage(tt.input))
			if got != tt.want {
				t.Errorf("FormatDate(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

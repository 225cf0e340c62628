package tui

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseDetailFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    DetailFormat
		wantErr bool
	}{
		{"json", DetailJSON, false},
		{"", DetailJSON, false},
		{"YAML", DetailYAML, false},
		{"yml", DetailYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDetailFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseDetailFormat(%q) err = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseDetailFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderDetail_KeepsNumberDigits(t *testing.T) {
	t.Parallel()
	attrs := map[string]any{
		"durationMillis": json.Number("1234567890123"),
		"ns":             "test.coll",
	}

	js, err := renderDetail(attrs, DetailJSON, false)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(js, `"durationMillis": 1234567890123`) {
		t.Fatalf("json = %s", js)
	}

	y, err := renderDetail(attrs, DetailYAML, false)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(y, "durationMillis: 1234567890123") || !strings.Contains(y, "ns: test.coll") {
		t.Fatalf("yaml = %s", y)
	}
}

func TestRenderDetail_Colored(t *testing.T) {
	t.Parallel()
	attrs := map[string]any{"remote": "10.0.0.1"}
	for _, format := range []DetailFormat{DetailJSON, DetailYAML} {
		out, err := renderDetail(attrs, format, true)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(out, "10.0.0.1") {
			t.Fatalf("%s output lost value: %q", format, out)
		}
	}
}

func TestNormalizeNumbers(t *testing.T) {
	t.Parallel()
	in := []any{json.Number("3"), json.Number("2.5"), map[string]any{"n": json.Number("7")}}
	out := normalizeNumbers(in).([]any)
	if out[0] != int64(3) {
		t.Errorf("out[0] = %#v", out[0])
	}
	if out[1] != 2.5 {
		t.Errorf("out[1] = %#v", out[1])
	}
	if out[2].(map[string]any)["n"] != int64(7) {
		t.Errorf("out[2] = %#v", out[2])
	}
}

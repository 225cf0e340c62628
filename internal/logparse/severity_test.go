package logparse

import (
	"testing"

	"github.com/tinytelemetry/monlomon/internal/model"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected model.Severity
		text     string
	}{
		{"F", model.SeverityFatal, "Fatal"},
		{"E", model.SeverityError, "Error"},
		{"W", model.SeverityWarning, "Warning"},
		{"I", model.SeverityInformational, "Informational"},
		{"D1", model.SeverityUnknown, "D1"},
		{"i", model.SeverityUnknown, "i"},
		{"", model.SeverityUnknown, ""},
		{"Informational", model.SeverityUnknown, "Informational"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, text := ParseSeverity(tt.input)
			if got != tt.expected {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if text != tt.text {
				t.Errorf("ParseSeverity(%q) text = %q, want %q", tt.input, text, tt.text)
			}
		})
	}
}

func TestAbbreviation(t *testing.T) {
	t.Parallel()
	for _, sev := range model.Severities {
		abbrev := Abbreviation(sev)
		got, _ := ParseSeverity(abbrev)
		if got != sev {
			t.Errorf("round trip of %v through %q = %v", sev, abbrev, got)
		}
	}
	if got := Abbreviation(model.SeverityUnknown); got != "" {
		t.Errorf("Abbreviation(Unknown) = %q, want empty", got)
	}
}

func TestParseSeverityName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected model.Severity
		ok       bool
	}{
		{"info", model.SeverityInformational, true},
		{" Warning ", model.SeverityWarning, true},
		{"ERR", model.SeverityError, true},
		{"f", model.SeverityFatal, true},
		{"debug", model.SeverityUnknown, false},
	}

	for _, tt := range tests {
		got, ok := ParseSeverityName(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseSeverityName(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestStripQuotes(t *testing.T) {
	t.Parallel()
	if got := StripQuotes(`"conn42"`); got != "conn42" {
		t.Errorf("StripQuotes = %q, want conn42", got)
	}
	if got := StripQuotes(`{"a":"b"}`); got != "{a:b}" {
		t.Errorf("StripQuotes = %q, want {a:b}", got)
	}
	if got := StripQuotes("plain"); got != "plain" {
		t.Errorf("StripQuotes = %q, want plain", got)
	}
}

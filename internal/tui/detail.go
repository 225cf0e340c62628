package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"gopkg.in/yaml.v3"
)

// DetailFormat selects how the attribute payload is rendered.
type DetailFormat string

const (
	DetailJSON DetailFormat = "json"
	DetailYAML DetailFormat = "yaml"
)

// ParseDetailFormat accepts "json" or "yaml", case-insensitively.
func ParseDetailFormat(s string) (DetailFormat, error) {
	switch DetailFormat(strings.ToLower(strings.TrimSpace(s))) {
	case DetailJSON, "":
		return DetailJSON, nil
	case DetailYAML, "yml":
		return DetailYAML, nil
	default:
		return "", fmt.Errorf("unknown detail format %q (want json or yaml)", s)
	}
}

// Next returns the other format.
func (f DetailFormat) Next() DetailFormat {
	if f == DetailYAML {
		return DetailJSON
	}
	return DetailYAML
}

// renderDetail formats attrs for the detail pane. Colors are skipped when
// color is false so the output can be compared in tests.
func renderDetail(attrs any, format DetailFormat, color bool) (string, error) {
	if format == DetailYAML {
		return renderYAML(attrs, color)
	}
	return renderJSON(attrs, color)
}

func renderJSON(attrs any, color bool) (string, error) {
	if !color {
		out, err := json.MarshalIndent(attrs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("formatting json: %w", err)
		}
		return string(out), nil
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	out, err := f.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("formatting json: %w", err)
	}
	return string(out), nil
}

func renderYAML(attrs any, color bool) (string, error) {
	out, err := yaml.Marshal(normalizeNumbers(attrs))
	if err != nil {
		return "", fmt.Errorf("formatting yaml: %w", err)
	}
	text := strings.TrimRight(string(out), "\n")
	if !color {
		return text, nil
	}
	return highlight(text, "yaml")
}

// highlight applies terminal syntax coloring to text in the given language.
func highlight(text, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// normalizeNumbers turns json.Number leaves into int64 or float64 so YAML
// prints them as numbers instead of quoted strings.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeNumbers(val)
		}
		return out
	default:
		return v
	}
}

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the report rendering
type Format string

// Supported report formats
const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPretty, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("unknown format %q (use pretty, json, or yaml)", s)
	}
}

// Writer renders audit reports to an output stream
type Writer struct {
	out    io.Writer
	format Format
}

// NewWriter creates a report writer
func NewWriter(out io.Writer, format Format) *Writer {
	if format == "" {
		format = FormatPretty
	}
	return &Writer{out: out, format: format}
}

// Write renders the report in the writer's format
func (w *Writer) Write(r *Report) error {
	switch w.format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w.out, string(data))
		return err

	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.out.Write(data)
		return err

	default:
		return w.writePretty(r)
	}
}

func (w *Writer) writePretty(r *Report) error {
	if _, err := fmt.Fprintf(w.out, "%s: %d groups, %d pages, %d anchors\n",
		r.Manifest, r.Groups, r.PageCount(), r.Anchors); err != nil {
		return err
	}

	if !r.HasMissing() {
		_, err := fmt.Fprintln(w.out, "all pages resolved")
		return err
	}

	if _, err := fmt.Fprintf(w.out, "%d missing pages:\n", len(r.Missing)); err != nil {
		return err
	}
	for _, path := range r.Missing {
		if _, err := fmt.Fprintf(w.out, "  missing: %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

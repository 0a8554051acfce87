package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Manifest: "Example Docs",
		Groups:   3,
		Anchors:  2,
		Pages:    []string{"quickstart", "guides/intro", "api/reference"},
		Missing:  []string{"guides/intro"},
		Valid:    true,
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"pretty", "json", "yaml"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), format)
	}

	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPretty, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatJSON)

	require.NoError(t, w.Write(sampleReport()))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), &decoded)
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatYAML)

	require.NoError(t, w.Write(sampleReport()))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), &decoded)
}

func TestWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatPretty)

	require.NoError(t, w.Write(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Example Docs")
	assert.Contains(t, out, "3 groups")
	assert.Contains(t, out, "3 pages")
	assert.Contains(t, out, "missing: guides/intro")
}

func TestWriter_Pretty_AllResolved(t *testing.T) {
	r := sampleReport()
	r.Missing = nil

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatPretty).Write(r))

	assert.Contains(t, buf.String(), "all pages resolved")
}

func TestReport_Counts(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, 3, r.PageCount())
	assert.True(t, r.HasMissing())

	r.Missing = nil
	assert.False(t, r.HasMissing())
}

package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"unknown": zerolog.InfoLevel,
	}

	for level, want := range tests {
		logger := NewLogger(LoggerOptions{Level: level, Format: "json"})
		assert.Equal(t, want, logger.GetLevel(), "level %q", level)
	}
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	logger := NewLogger(LoggerOptions{Level: "error", Format: "json", Verbose: true})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	logger.WithComponent("auditor").Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"auditor"`)
	assert.Contains(t, buf.String(), `"hello"`)
}

func TestLogger_WithManifest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	logger.WithManifest("mint.json").Info().Msg("loaded")

	assert.Contains(t, buf.String(), `"manifest":"mint.json"`)
}

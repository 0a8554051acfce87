package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrMalformedInput indicates the input is not syntactically valid JSON
	ErrMalformedInput = errors.New("manifest is not valid JSON")

	// ErrSchemaViolation indicates a structural or type mismatch
	ErrSchemaViolation = errors.New("manifest schema violation")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json)")
)

// SchemaError reports a structural mismatch at a named field path
type SchemaError struct {
	Path     string // JSON field path, e.g. "navigation[0].pages[2]"
	Expected string
	Actual   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(path, expected, actual string) *SchemaError {
	return &SchemaError{
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

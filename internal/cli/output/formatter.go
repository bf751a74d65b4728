package output

import (
	"encoding/json"
	"io"
)

// Format represents the output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formatter renders a value for display. The value may be a
// json.RawMessage straight off the wire or any marshalable Go value.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format, defaulting
// to JSON.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &JSONFormatter{}
	}
}

// rawBytes extracts raw JSON when the value came straight off the wire.
func rawBytes(data any) ([]byte, bool) {
	switch v := data.(type) {
	case json.RawMessage:
		return v, true
	case []byte:
		return v, true
	}
	return nil, false
}

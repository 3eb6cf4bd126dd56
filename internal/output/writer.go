// Package output serializes menu documents for downstream consumers. The
// JSON field layout is a stable interchange contract; writers here only
// choose the framing.
package output

import (
	"fmt"
	"io"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes extracted documents.
type Writer interface {
	// Write outputs or buffers a single document.
	Write(doc any) error

	// Flush ensures all buffered documents are written.
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON, "":
		return newJSONWriter(w, false), nil
	case FormatJSONL:
		return newJSONWriter(w, true), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

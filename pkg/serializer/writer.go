// Package serializer writes validation artifacts to stdout or a file in
// YAML or JSON form.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"

// Format selects the serialization encoding.
type Format string

const (
	// FormatYAML emits YAML documents.
	FormatYAML Format = "yaml"

	// FormatJSON emits indented JSON.
	FormatJSON Format = "json"
)

// SupportedFormats returns the formats a Writer accepts.
func SupportedFormats() []Format {
	return []Format{FormatYAML, FormatJSON}
}

// IsUnknown reports whether the format is not one of the supported
// encodings.
func (f Format) IsUnknown() bool {
	for _, known := range SupportedFormats() {
		if f == known {
			return false
		}
	}
	return true
}

// Serializer writes a value to its destination in a configured format.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is implemented by serializers that hold a resource needing
// release, such as an open file.
type Closer interface {
	Close() error
}

// Writer serializes values to an io.Writer.
type Writer struct {
	format Format
	out    io.Writer
	file   *os.File
}

// NewWriter creates a Writer for the given format and destination. An
// unknown format falls back to YAML. A nil destination defaults to
// stdout.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatYAML
	}
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer targeting the named file. An
// empty, blank, or "-" path targets stdout instead.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.file = f
	return w, nil
}

// Serialize writes data to the destination in the configured format.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatJSON:
		j, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		j = append(j, '\n')
		if _, err := w.out.Write(j); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml output: %w", err)
		}
	}
	return nil
}

// Close releases the underlying file when one is held. Closing a stdout
// writer, or closing twice, is safe.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	return f.Close()
}

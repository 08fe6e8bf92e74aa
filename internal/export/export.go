// Package export serializes vectors to line-delimited text or CSV.
//
// Format is a closed set of variants; each variant has exactly one Exporter.
// Output is deterministic for a given vector: no timestamps or other ambient
// state are embedded in the content. Choosing a destination name is the
// caller's concern (see package naming).
package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/clampvec/internal/vector"
)

// Format identifies an export variant.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// Formats lists every supported variant.
var Formats = []Format{FormatText, FormatCSV}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q: must be one of %v", name, Formats)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Exporter writes a vector in one format.
type Exporter interface {
	// Format reports the variant this exporter produces.
	Format() Format

	// Encode writes the full representation of v to w.
	Encode(w io.Writer, v *vector.Vector) error
}

// For returns the Exporter for f.
func For(f Format) (Exporter, error) {
	switch f {
	case FormatText:
		return TextExporter{}, nil
	case FormatCSV:
		return CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q: must be one of %v", f, Formats)
	}
}

// Marshal returns the encoded form of v.
func Marshal(e Exporter, v *vector.Vector) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes v and writes it to destination, returning the bytes written.
//
// The content goes to a temporary file in the destination's directory which is
// renamed into place only after a complete write, so destination either holds
// the full export or is left as it was. Any failure is returned once as
// vector.ErrExportFailed; nothing is retried.
func WriteFile(e Exporter, v *vector.Vector, destination string) ([]byte, error) {
	content, err := Marshal(e, v)
	if err != nil {
		return nil, vector.NewExportFailedError(destination, err)
	}

	if err := writeAtomic(destination, content); err != nil {
		return nil, vector.NewExportFailedError(destination, err)
	}

	slog.Debug("vector exported",
		"destination", destination,
		"format", e.Format(),
		"length", v.Len(),
		"bytes", len(content),
	)
	return content, nil
}

func writeAtomic(destination string, content []byte) error {
	dir := filepath.Dir(destination)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destination)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Remove the temp file unless it was renamed into place.
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, destination); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	committed = true
	return nil
}

package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/roach88/clampvec/internal/vector"
)

// TextExporter writes a header line followed by one "Element i: v" line per
// element:
//
//	Array [size: 3]:
//	Element 0: 1
//	Element 1: 2
//	Element 2: 3
//
// Lines are separated by "\n" with no separator after the last line.
type TextExporter struct{}

// Format implements Exporter.
func (TextExporter) Format() Format { return FormatText }

// Encode implements Exporter.
func (TextExporter) Encode(w io.Writer, v *vector.Vector) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Array [size: %d]:", v.Len())
	for i, x := range v.Values() {
		fmt.Fprintf(&buf, "\nElement %d: %d", i, x)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/roach88/clampvec/internal/vector"
)

// CSVExporter writes an "Index,Value" header followed by one record per
// element. Records are separated by "\n" with no separator after the last.
type CSVExporter struct{}

// Format implements Exporter.
func (CSVExporter) Format() Format { return FormatCSV }

// Encode implements Exporter.
func (CSVExporter) Encode(w io.Writer, v *vector.Vector) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"Index", "Value"}); err != nil {
		return err
	}
	for i, x := range v.Values() {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(x)}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

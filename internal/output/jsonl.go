package output

import (
	"encoding/json"
	"io"
)

// JSONLWriter writes values as JSON Lines, one compact object per line, so
// results can be emitted as they arrive.
type JSONLWriter struct {
	enc *json.Encoder
}

// NewJSONLWriter returns a JSONLWriter writing to w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{enc: enc}
}

// Write encodes v on its own line.
func (jw *JSONLWriter) Write(v any) error {
	return jw.enc.Encode(v)
}

// PrintJSONL writes every record as one line.
func PrintJSONL(w io.Writer, records []map[string]any) error {
	jw := NewJSONLWriter(w)
	for _, rec := range records {
		if err := jw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter formats data as indented JSON. Raw response bodies are
// re-indented in place so the backend's field order survives.
type JSONFormatter struct{}

// Format formats data as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	if raw, ok := rawBytes(data); ok {
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("output: indent response: %w", err)
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

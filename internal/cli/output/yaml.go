package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats data as YAML. Raw JSON bodies are decoded first;
// unlike the JSON formatter this cannot preserve the backend's field
// order, which is the price of the re-encoding.
type YAMLFormatter struct{}

// Format formats data as YAML.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	value := data
	if raw, ok := rawBytes(data); ok {
		if len(raw) == 0 {
			return nil
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("output: decode response: %w", err)
		}
		value = decoded
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("output: encode yaml: %w", err)
	}
	return enc.Close()
}

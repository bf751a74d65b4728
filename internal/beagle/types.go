package beagle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope is the wrapper returned by every list endpoint: a results
// collection plus absolute cursor URLs for the adjacent pages. A nil
// cursor means there is no page in that direction.
type Envelope struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// Cursors returns the next/previous cursor URLs with absent fields
// normalized to empty strings.
func (e *Envelope) Cursors() (next, prev string) {
	if e.Next != nil {
		next = *e.Next
	}
	if e.Previous != nil {
		prev = *e.Previous
	}
	return next, prev
}

// Pipeline is the subset of a pipeline resource the access commands need.
type Pipeline struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Run is the subset of a run resource the access commands need.
type Run struct {
	ID              string       `json:"id"`
	JobGroup        string       `json:"job_group"`
	Status          string       `json:"status"`
	OutputDirectory string       `json:"output_directory"`
	Outputs         []OutputPort `json:"outputs"`
}

// OutputPort is one named output of a run. Value holds a CWL-style tree
// of File/Directory nodes; see outputs.go for traversal.
type OutputPort struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// TokenPair is the response of the auth endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// MergePairs merges repeated "key:value" command-line options into a single
// JSON-ready object. The key is everything before the first colon, so values
// may themselves contain colons. A later occurrence of a key overrides an
// earlier one.
func MergePairs(pairs []string) (map[string]string, error) {
	merged := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, ":")
		if !ok || key == "" {
			return nil, fmt.Errorf("beagle: malformed key:value pair %q", p)
		}
		merged[key] = value
	}
	return merged, nil
}

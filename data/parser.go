package data

import (
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// decodeDataFile decodes the contents of a data file into target, using target's JSON field
// tags. Data files are YAML; a JSON file is read as the YAML subset that it is, so anchors and
// merge keys work in either. Every mapping key must be a string, because the result has to be
// representable as JSON (validation payloads are kept as json.RawMessage).
func decodeDataFile(data []byte, target interface{}) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("data cannot be represented as JSON (mapping keys must be strings): %w", err)
	}
	return json.Unmarshal(jsonData, target)
}

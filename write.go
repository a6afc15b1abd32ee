package areamap

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalSorted serializes the mapping as 2-space-indented JSON with a
// trailing newline. encoding/json orders object keys lexicographically, so
// together with Finalize the output is byte-deterministic.
func (m AreaMap) MarshalSorted() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding area map: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile finalizes the mapping and writes it to path, overwriting any
// existing content.
func (m AreaMap) WriteFile(path string) error {
	m.Finalize()
	data, err := m.MarshalSorted()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

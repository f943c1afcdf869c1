package summary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSummaryFile reads a YAML-formatted regression summary payload from the
// given path. Missing fields are left at their zero values; Save surfaces
// them as unset.
func LoadSummaryFile(path string) (*GLMSummaryPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file, %w", err)
	}

	var payload GLMSummaryPayload
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse summary file, %w", err)
	}
	return &payload, nil
}

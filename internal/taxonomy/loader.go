package taxonomy

import (
	_ "embed"
	"fmt"
	"os"

	"bubble/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed default_categories.yaml
var defaultCategories []byte

// Default builds the taxonomy shipped with the binary.
func Default() (*Taxonomy, error) {
	records, err := Parse(defaultCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded taxonomy: %w", err)
	}
	return New(records), nil
}

// LoadFile reads a JSON or YAML list of category records from path.
// An empty path loads the embedded default.
func LoadFile(path string) (*Taxonomy, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}
	return New(records), nil
}

// Parse decodes raw records. JSON is a subset of YAML so both formats are
// accepted. Every record must carry a slug and a label.
func Parse(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	for i, r := range records {
		if r.Slug == "" {
			return nil, fmt.Errorf("record %d: slug is required: %w", i, models.ErrValidation)
		}
		if r.Label == "" {
			return nil, fmt.Errorf("record %d (%s): label is required: %w", i, r.Slug, models.ErrValidation)
		}
	}
	return records, nil
}

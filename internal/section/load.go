package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a section definition from a JSON or YAML file
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section Section
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &section)
	default:
		err = json.Unmarshal(data, &section)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse section file: %w", err)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

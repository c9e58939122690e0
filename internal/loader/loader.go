package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sourceplane/wheelmatrix/internal/model"
	"github.com/sourceplane/wheelmatrix/internal/schema"
	"gopkg.in/yaml.v3"
)

// LoadManifest reads a wheel manifest YAML file, validates it against the
// manifest schema, and decodes it into the typed model. Validation happens
// here so that a malformed manifest fails before any network call is made.
func LoadManifest(path string) (*model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	validator, err := schema.DefaultValidator()
	if err != nil {
		return nil, err
	}

	// Parse to interface{} first so the schema sees the raw document shape
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	// Round-trip through JSON so the validator gets JSON-native types
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert manifest for validation: %w", err)
	}
	var jsonDoc interface{}
	if err := json.Unmarshal(jsonData, &jsonDoc); err != nil {
		return nil, fmt.Errorf("failed to convert manifest for validation: %w", err)
	}

	if err := validator.ValidateManifest(jsonDoc); err != nil {
		return nil, fmt.Errorf("manifest %s failed validation: %w", path, err)
	}

	var manifest model.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	return &manifest, nil
}

package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.schema.yaml
var manifestSchemaYAML []byte

// Validator handles JSON schema validation of the wheel manifest
type Validator struct {
	manifestSchema *jsonschema.Schema
}

// NewValidator compiles the embedded manifest schema
func NewValidator() (*Validator, error) {
	schema, err := compileSchema(manifestSchemaYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest schema: %w", err)
	}
	return &Validator{manifestSchema: schema}, nil
}

// ValidateManifest validates a decoded manifest document against the schema.
// The document must use JSON-compatible types (map[string]interface{} etc.).
func (v *Validator) ValidateManifest(data interface{}) error {
	if v.manifestSchema == nil {
		return fmt.Errorf("manifest schema not loaded")
	}
	return v.manifestSchema.Validate(data)
}

// Default instance: the embedded schema is static, so it compiles once per
// process no matter how many manifests are loaded
var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// DefaultValidator returns the shared validator for the embedded manifest
// schema
func DefaultValidator() (*Validator, error) {
	defaultOnce.Do(func() {
		defaultValidator, defaultErr = NewValidator()
	})
	return defaultValidator, defaultErr
}

// compileSchema parses a YAML schema document and compiles it
func compileSchema(raw []byte) (*jsonschema.Schema, error) {
	var schemaData interface{}
	if err := yaml.Unmarshal(raw, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}

	// Convert to JSON for the schema compiler
	jsonData, err := json.Marshal(schemaData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	schema, err := jsonschema.CompileString("manifest.schema.json", string(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}

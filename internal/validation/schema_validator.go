package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// WorldSchemaName is the resource name the world schema is compiled under
const WorldSchemaName = "world.schema.json"

//go:embed world.schema.json
var worldSchemaJSON []byte

// SchemaValidator checks documents against a compiled JSON schema
type SchemaValidator interface {
	Validate(doc any) error
	ValidateJSON(data []byte) error
	ValidateYAML(data []byte) error
}

type validator struct {
	schema *jsonschema.Schema
}

// NewWorldValidator compiles the schema for world content files
func NewWorldValidator() (SchemaValidator, error) {
	return NewSchemaValidator(WorldSchemaName, worldSchemaJSON)
}

// NewSchemaValidator compiles schemaJSON under name
func NewSchemaValidator(name string, schemaJSON []byte) (SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return &validator{schema: schema}, nil
}

// Validate checks a document shaped like the output of jsonschema.UnmarshalJSON
func (v *validator) Validate(doc any) error {
	if err := v.schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *validator) ValidateJSON(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.Validate(doc)
}

// ValidateYAML round-trips YAML through JSON so numbers and maps take the
// shapes the schema engine expects
func (v *validator) ValidateYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML data: %w", err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return v.ValidateJSON(encoded)
}

func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors walks the cause tree, reporting leaves only
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

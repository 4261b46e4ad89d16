package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/validation"
)

//go:embed world.yaml
var defaultWorldYAML []byte

var worldSchema = sync.OnceValues(validation.NewWorldValidator)

// DefaultWorld returns the canonical world content shipped with the binary
func DefaultWorld() (domain.World, error) {
	return ParseWorld(defaultWorldYAML)
}

// LoadWorldFile reads world content from a YAML file on disk
func LoadWorldFile(path string) (domain.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.World{}, fmt.Errorf("failed to read world file %s: %w", path, err)
	}
	world, err := ParseWorld(data)
	if err != nil {
		return domain.World{}, fmt.Errorf("%s: %w", path, err)
	}
	return world, nil
}

// ParseWorld decodes world YAML and checks it against the world schema.
// Unknown fields are rejected so typos in content files fail loudly.
func ParseWorld(data []byte) (domain.World, error) {
	var world domain.World
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&world); err != nil {
		return domain.World{}, fmt.Errorf("failed to parse world yaml: %w", err)
	}

	schema, err := worldSchema()
	if err != nil {
		return domain.World{}, fmt.Errorf("failed to load world schema: %w", err)
	}
	if err := schema.ValidateYAML(data); err != nil {
		return domain.World{}, err
	}
	return world, nil
}

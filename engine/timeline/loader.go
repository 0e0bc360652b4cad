package timeline

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/Nareth123/angular/pkg/logger"
)

// validate is shared across decodes; validator instances cache struct metadata.
var validate = validator.New()

// Decode parses a YAML timeline definition and validates it. Definitions
// without an id are assigned one for log correlation.
func Decode(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse timeline definition: %w", err)
	}
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           &def,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build definition decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode timeline definition: %w", err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("invalid timeline definition: %w", err)
	}
	if def.ID == "" {
		def.ID = uuid.NewString()
	}
	logger.Debug("decoded timeline definition", "id", def.ID, "name", def.Name, "steps", len(def.Steps))
	return &def, nil
}

// LoadFile reads and decodes a timeline definition from disk.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline definition %s: %w", path, err)
	}
	def, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

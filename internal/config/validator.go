package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for wslgate configuration
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate validates a config file: syntax, schema, then semantic checks.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not readable: %w", err)
	}

	// Syntax and schema validation over the raw document.
	data, ok := decodeDocument(path, content, result)
	if !ok {
		return result, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	schemaResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if !schemaResult.Valid() {
		for _, verr := range schemaResult.Errors() {
			result.addError(verr.Field(), verr.Description())
		}
		return result, nil
	}

	// Semantic checks over the typed config.
	cfg, err := Load(path)
	if err != nil {
		result.addError("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	for i, cmd := range cfg.Commands {
		if strings.TrimSpace(cmd) == "" {
			result.addError(fmt.Sprintf("commands/%d", i), "Command name is empty")
		}
		if strings.ContainsAny(cmd, " \t") {
			result.addError("commands/"+cmd, "Command name contains whitespace")
		}
	}

	for name, value := range cfg.DefaultArgs {
		if name == DisabledKey {
			continue
		}
		if strings.TrimSpace(value) == "" {
			result.addError("default_args/"+name, "Default argument string is empty")
		}
	}

	return result, nil
}

// decodeDocument parses the raw config file into a schema-checkable value.
func decodeDocument(path string, content []byte, result *ValidationResult) (interface{}, bool) {
	var data interface{}

	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			result.addError("syntax", fmt.Sprintf("Invalid YAML syntax: %v", err))
			return nil, false
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			result.addError("syntax", fmt.Sprintf("Invalid JSON syntax: %v", err))
			return nil, false
		}
	case ".toml":
		cfg, err := Load(path)
		if err != nil {
			result.addError("syntax", fmt.Sprintf("Invalid TOML syntax: %v", err))
			return nil, false
		}
		doc := map[string]interface{}{
			"bridge": map[string]interface{}{
				"executable": cfg.Bridge.Executable,
				"distro":     cfg.Bridge.Distro,
			},
		}
		if cfg.Bridge.ExtraArgs != nil {
			doc["bridge"].(map[string]interface{})["extra_args"] = cfg.Bridge.ExtraArgs
		}
		if cfg.DefaultArgs != nil {
			doc["default_args"] = cfg.DefaultArgs
		}
		if cfg.Env != nil {
			doc["env"] = cfg.Env
		}
		if cfg.Commands != nil {
			doc["commands"] = cfg.Commands
		}
		data = doc
	default:
		result.addError("syntax", "Unsupported config format: "+path)
		return nil, false
	}

	return data, true
}

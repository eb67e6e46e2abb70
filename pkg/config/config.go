// Package config provides file-based configuration loading and saving with
// environment variable expansion. The on-disk format is chosen by file
// extension: .json is JSON, everything else is YAML.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Validator is an interface for configuration validation.
type Validator interface {
	Validate() error
}

// Load loads configuration from a file with environment variable expansion.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	switch filepath.Ext(filename) {
	case ".json":
		if err := json.Unmarshal(expanded, target); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(expanded, target); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", filepath.Ext(filename))
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}

// Save serializes target and writes it to filename, creating parent
// directories as needed. The format follows the file extension.
func Save[T any](filename string, target *T) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(filename) {
	case ".json":
		data, err = json.MarshalIndent(target, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(target)
	default:
		return fmt.Errorf("unsupported config file format: %s", filepath.Ext(filename))
	}
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", filename, err)
	}
	return nil
}

// MustLoad loads configuration and panics on failure.
func MustLoad[T any](filename string, target *T) {
	if err := Load(filename, target); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

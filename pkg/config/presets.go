package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preset is a named, saved generation configuration
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Config      Config `yaml:"config"`
}

// PresetStore holds the saved presets
type PresetStore struct {
	Presets []Preset `yaml:"presets"`
}

// Get returns the preset with the given name
func (s *PresetStore) Get(name string) (*Preset, error) {
	for i := range s.Presets {
		if s.Presets[i].Name == name {
			return &s.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset %s not found", name)
}

// presetPath returns the default preset file location
func presetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".goatgen", "presets.yaml"), nil
}

// LoadPresets loads saved presets from the default location
func LoadPresets() (*PresetStore, error) {
	path, err := presetPath()
	if err != nil {
		return nil, err
	}
	return LoadPresetsFromFile(path)
}

// LoadPresetsFromFile loads presets from a specific file. A missing file is
// not an error; it yields an empty store.
func LoadPresetsFromFile(path string) (*PresetStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &PresetStore{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var store PresetStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}

	return &store, nil
}

// SavePresets saves the preset store to the default location
func SavePresets(store *PresetStore) error {
	path, err := presetPath()
	if err != nil {
		return err
	}
	return SavePresetsToFile(store, path)
}

// SavePresetsToFile saves the preset store to a specific file
func SavePresetsToFile(store *PresetStore, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the CLI policy knobs. The expression core never reads these;
// the CLI uses MaxVariables to bound truth-table size (2^k rows for k
// variables) and OutputDir for exported tables.
type Settings struct {
	MaxVariables int    `yaml:"max-variables"`
	OutputDir    string `yaml:"output-dir"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		MaxVariables: 10,
		OutputDir:    ".",
	}
}

// LoadSettings reads settings from a YAML file, keeping the default for any
// field left unset. A missing file is not an error; it just means defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(contents, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if settings.MaxVariables <= 0 {
		settings.MaxVariables = DefaultSettings().MaxVariables
	}
	if settings.OutputDir == "" {
		settings.OutputDir = DefaultSettings().OutputDir
	}

	return settings, nil
}

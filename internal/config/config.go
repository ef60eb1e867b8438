package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

type Config struct {
	Language  string `json:"language"`
	Color     string `json:"color"`
	Format    string `json:"format"`
	RulesPath string `json:"rules_path,omitempty"`
	PathFile  string `json:"path_file"`
}

const (
	defaultLang   = "en"
	defaultColor  = ColorAuto
	defaultFormat = FormatText

	configDirName  = ".matelint"
	configFileName = "config.json"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	colorModes    = []string{ColorAuto, ColorAlways, ColorNever}
	reportFormats = []string{FormatText, FormatJSON}
)

// LoadConfig reads the user settings. path is either a home directory, in
// which case ~/.matelint/config.json is used, or a .json file. A default file
// is written when none exists.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded config is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		Color:    defaultColor,
		Format:   defaultFormat,
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// applyDefaults fills fields missing from files written by older versions.
func applyDefaults(config *Config) {
	if config.Color == "" {
		config.Color = defaultColor
	}
	if config.Format == "" {
		config.Format = defaultFormat
	}
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !slices.Contains(colorModes, config.Color) {
		return fmt.Errorf("unsupported color mode: %s", config.Color)
	}
	if !slices.Contains(reportFormats, config.Format) {
		return fmt.Errorf("unsupported report format: %s", config.Format)
	}
	return nil
}

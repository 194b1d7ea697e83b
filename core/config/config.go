// File: config.go
// Title: Logging Configuration Implementation
// Description: Implements loading, parsing, environment overlay, and
//              validation of logging settings from TOML and YAML files.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/wnxy/LogLibrary/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing
	FormatTOML

	// FormatYAML forces YAML parsing
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Destination names accepted in configuration files
const (
	DestinationConsole = "console"
	DestinationFile    = "file"
)

// defaultEnvPrefix is prepended to override variable names
const defaultEnvPrefix = "SWLOG"

// Settings holds the file-level configuration of the logging facility.
// The level threshold is kept as its textual form until it is bridged
// into a log.Config, so files and environment variables share one parser.
type Settings struct {
	Destination     string `toml:"destination" yaml:"destination"`
	FileName        string `toml:"file_name" yaml:"file_name"`
	TruncateLongLog bool   `toml:"truncate_long_log" yaml:"truncate_long_log"`
	LevelThreshold  string `toml:"level_threshold" yaml:"level_threshold"`
}

// DefaultSettings returns console output, no truncation, threshold none
func DefaultSettings() Settings {
	return Settings{
		Destination:    DestinationConsole,
		LevelThreshold: log.LevelNone.String(),
	}
}

// loadOptions collects the effective options for one Load call
type loadOptions struct {
	format    Format
	envPrefix string
	dotenv    []string
}

// LoadOption customizes the behavior of Load
type LoadOption func(*loadOptions)

// WithFormat forces the file format instead of detecting it by extension
func WithFormat(format Format) LoadOption {
	return func(o *loadOptions) {
		o.format = format
	}
}

// WithEnvPrefix replaces the default SWLOG prefix for override variables.
// An empty prefix reads the bare variable names.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// WithDotenv loads the given .env file into the process environment before
// overrides are applied. A missing file is not an error. Variables already
// set in the environment keep their values.
func WithDotenv(path string) LoadOption {
	return func(o *loadOptions) {
		o.dotenv = append(o.dotenv, path)
	}
}

// Load reads settings from a TOML or YAML file, applies environment
// overrides, and validates the result.
func Load(path string, opts ...LoadOption) (*Settings, error) {
	options := loadOptions{format: FormatAuto, envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		opt(&options)
	}

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	format := options.format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	settings := DefaultSettings()
	if err := parseContent(content, format, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for _, envFile := range options.dotenv {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := settings.applyEnv(options.envPrefix); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// LoadFromString parses settings from a string with the given format.
// Environment overrides are not applied.
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	settings := DefaultSettings()
	if err := parseContent([]byte(content), format, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config from string: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// LoadInto loads settings from a file and initializes the given logger
// with them. A nil logger initializes the package default instance.
func LoadInto(path string, logger *log.Logger, opts ...LoadOption) (*Settings, error) {
	settings, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}

	cfg, err := settings.LoggerConfig()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}
	if err := logger.InitWithConfig(cfg); err != nil {
		return settings, err
	}

	return settings, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format, settings *Settings) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, settings); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, settings); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// applyEnv overlays override variables onto the settings. Unset and empty
// variables leave the file values untouched.
func (s *Settings) applyEnv(prefix string) error {
	if v, ok := lookupEnv(prefix, "DESTINATION"); ok {
		s.Destination = v
	}
	if v, ok := lookupEnv(prefix, "FILE_NAME"); ok {
		s.FileName = v
	}
	if v, ok := lookupEnv(prefix, "TRUNCATE_LONG_LOG"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean in %s: %w", envName(prefix, "TRUNCATE_LONG_LOG"), err)
		}
		s.TruncateLongLog = parsed
	}
	if v, ok := lookupEnv(prefix, "LEVEL_THRESHOLD"); ok {
		s.LevelThreshold = v
	}
	return nil
}

// lookupEnv reads one override variable, treating empty values as unset
func lookupEnv(prefix, key string) (string, bool) {
	value, ok := os.LookupEnv(envName(prefix, key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// envName builds the environment variable name for a settings key
func envName(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.ToUpper(prefix) + "_" + key
}

// Validate checks the settings for consistency
func (s *Settings) Validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Destination)) {
	case DestinationConsole, DestinationFile:
	case "":
		return fmt.Errorf("destination cannot be empty")
	default:
		return fmt.Errorf("unknown destination %q, must be %q or %q",
			s.Destination, DestinationConsole, DestinationFile)
	}

	if s.fileBacked() && strings.TrimSpace(s.FileName) == "" {
		return fmt.Errorf("file destination requires a file name")
	}

	if s.LevelThreshold != "" {
		if _, err := log.ParseLevel(s.LevelThreshold); err != nil {
			return fmt.Errorf("invalid level threshold: %w", err)
		}
	}

	return nil
}

// LoggerConfig bridges the validated settings into a log.Config
func (s *Settings) LoggerConfig() (log.Config, error) {
	if err := s.Validate(); err != nil {
		return log.Config{}, err
	}

	threshold := log.DefaultThreshold()
	if s.LevelThreshold != "" {
		parsed, err := log.ParseLevel(s.LevelThreshold)
		if err != nil {
			return log.Config{}, fmt.Errorf("invalid level threshold: %w", err)
		}
		threshold = parsed
	}

	return log.Config{
		ToFile:          s.fileBacked(),
		FileName:        s.FileName,
		TruncateLongLog: s.TruncateLongLog,
		LevelThreshold:  threshold,
	}, nil
}

// fileBacked reports whether the settings select the file destination
func (s *Settings) fileBacked() bool {
	return strings.EqualFold(strings.TrimSpace(s.Destination), DestinationFile)
}

// String provides a readable representation of the settings
func (s *Settings) String() string {
	parts := []string{fmt.Sprintf("destination: %s", s.Destination)}

	if s.FileName != "" {
		parts = append(parts, fmt.Sprintf("file: %s", s.FileName))
	}
	if s.TruncateLongLog {
		parts = append(parts, "truncate: true")
	}
	if s.LevelThreshold != "" {
		parts = append(parts, fmt.Sprintf("threshold: %s", s.LevelThreshold))
	}

	return "Settings{" + strings.Join(parts, ", ") + "}"
}

// File: config.go
// Title: Compiler Configuration
// Description: Typed configuration for the jackc toolchain, loaded from a
//              TOML or YAML file chosen by extension. Missing values fall
//              back to defaults and paths may reference environment
//              variables.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed sections for the compiler, history and output
// - 2026-10-19 v0.2.1: general.log_caller

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
	mdwlog "github.com/msto63/jackc/foundation/core/log"
	mdwstringx "github.com/msto63/jackc/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "JACKC_CONFIG"

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the complete toolchain configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Compiler CompilerConfig `toml:"compiler" yaml:"compiler"`
	History  HistoryConfig  `toml:"history" yaml:"history"`
	Output   OutputConfig   `toml:"output" yaml:"output"`

	filePath string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// LogCaller adds the source position of each logging call
	LogCaller bool `toml:"log_caller" yaml:"log_caller"`
}

// CompilerConfig holds compilation driver settings
type CompilerConfig struct {
	// Extension selects the source files of a directory, including the dot
	Extension string `toml:"extension" yaml:"extension"`
}

// HistoryConfig holds the run history store settings
type HistoryConfig struct {
	Enabled     bool     `toml:"enabled" yaml:"enabled"`
	Path        string   `toml:"path" yaml:"path"`
	BusyTimeout Duration `toml:"busy_timeout" yaml:"busy_timeout"`
}

// OutputConfig holds terminal rendering settings
type OutputConfig struct {
	Color bool `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{
		History: HistoryConfig{Enabled: true},
		Output:  OutputConfig{Color: true},
	}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, err
	}
	cfg.filePath = path
	return cfg, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	// Booleans default to true unless the file says otherwise
	cfg := &Config{
		History: HistoryConfig{Enabled: true},
		Output:  OutputConfig{Color: true},
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal([]byte(content), cfg)
	default:
		_, err = toml.Decode(content, cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by JACKC_CONFIG or the first file found
// in the default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/jackc.toml",
		"./jackc.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jackc", "config.toml"))
	}
	return paths
}

// FilePath returns the file the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Validate checks the configuration for values the toolchain cannot use
func (c *Config) Validate() error {
	fail := func(field string, value interface{}, msg string) error {
		return mdwerror.New(msg).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return fail("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return fail("general.log_format", c.General.LogFormat, "unknown log format")
	}
	if !strings.HasPrefix(c.Compiler.Extension, ".") || len(c.Compiler.Extension) < 2 {
		return fail("compiler.extension", c.Compiler.Extension, "extension must start with a dot")
	}
	if c.History.Enabled && mdwstringx.IsBlank(c.History.Path) {
		return fail("history.path", c.History.Path, "history path required when history is enabled")
	}
	if c.History.BusyTimeout.Duration < 0 {
		return fail("history.busy_timeout", c.History.BusyTimeout.String(), "busy timeout must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() mdwlog.Level {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() mdwlog.Format {
	format, err := mdwlog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return mdwlog.FormatText
	}
	return format
}

func (c *Config) applyDefaults() {
	if mdwstringx.IsBlank(c.General.LogLevel) {
		c.General.LogLevel = "warn"
	}
	if mdwstringx.IsBlank(c.General.LogFormat) {
		c.General.LogFormat = "text"
	}
	if mdwstringx.IsBlank(c.Compiler.Extension) {
		c.Compiler.Extension = ".jack"
	}
	if mdwstringx.IsBlank(c.History.Path) {
		c.History.Path = "$HOME/.local/share/jackc/history.db"
	}
	if c.History.BusyTimeout.Duration == 0 {
		c.History.BusyTimeout.Duration = 5 * time.Second
	}
}

func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

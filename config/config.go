// Package config loads parser settings from YAML or TOML files and
// RECIPETEXT_* environment variables.
//
// Settings are applied in order: defaults, then the file, then the
// environment. Keys missing from the file keep their defaults.
//
//	# recipetext.yaml
//	format: mmf
//	encoding: cp437
//	workers: 4
//	column_order: down-then-across
//	export: yaml
//
// Environment overrides:
//
//	RECIPETEXT_FORMAT, RECIPETEXT_ENCODING, RECIPETEXT_WORKERS,
//	RECIPETEXT_COLUMN_ORDER, RECIPETEXT_ATTRIBUTES, RECIPETEXT_EXPORT,
//	RECIPETEXT_PRETTY, LOG_LEVEL
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/recipetext/export"
	"github.com/tsawler/recipetext/format"
	"github.com/tsawler/recipetext/layout"
	"github.com/tsawler/recipetext/reader"
)

// ErrInvalid is returned when a configuration value is not usable
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment variable read by ApplyEnv
const EnvPrefix = "RECIPETEXT_"

// Config holds parser and export settings
type Config struct {
	// Format is "mmf", "mxp" or empty to detect it from the input
	Format string `json:"format" yaml:"format" toml:"format"`

	// Encoding of the input file; empty means the usual one for the format
	Encoding string `json:"encoding" yaml:"encoding" toml:"encoding"`

	// Workers is the number of recipes parsed concurrently; 0 means one per CPU
	Workers int `json:"workers" yaml:"workers" toml:"workers"`

	// ColumnOrder is "down-then-across" or "across-then-down"
	ColumnOrder string `json:"column_order" yaml:"column_order" toml:"column_order"`

	// Attributes captures unknown labelled metadata lines
	Attributes bool `json:"attributes" yaml:"attributes" toml:"attributes"`

	// Export is the output format name
	Export string `json:"export" yaml:"export" toml:"export"`

	// Pretty indents JSON output
	Pretty bool `json:"pretty" yaml:"pretty" toml:"pretty"`

	// LogLevel is debug, info, warn or error
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		ColumnOrder: layout.DownThenAcross.String(),
		Attributes:  true,
		Export:      export.FormatJSON.String(),
		Pretty:      true,
		LogLevel:    "info",
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults,
// applies the environment and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	case ".toml":
		err = cfg.decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported config file type %q", ErrInvalid, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with the environment applied
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

func (c *Config) decodeTOML(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overrides settings from RECIPETEXT_* variables and LOG_LEVEL.
// Unparsable numbers and booleans are ignored.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "ENCODING"); ok {
		c.Encoding = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WORKERS"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Workers = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "COLUMN_ORDER"); ok {
		c.ColumnOrder = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "ATTRIBUTES"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Attributes = b
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "EXPORT"); ok {
		c.Export = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PRETTY"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Pretty = b
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
}

// Validate reports every unusable setting, wrapped in ErrInvalid
func (c *Config) Validate() error {
	var problems []string

	if c.Format != "" {
		if _, ok := format.Parse(c.Format); !ok {
			problems = append(problems, fmt.Sprintf("unknown format %q", c.Format))
		}
	}
	if c.Encoding != "" {
		if _, err := reader.ParseEncoding(c.Encoding); err != nil {
			problems = append(problems, fmt.Sprintf("unknown encoding %q", c.Encoding))
		}
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers must not be negative, got %d", c.Workers))
	}
	if _, ok := layout.ParseColumnOrder(c.ColumnOrder); !ok {
		problems = append(problems, fmt.Sprintf("unknown column order %q", c.ColumnOrder))
	}
	if c.Export != "" {
		if _, err := export.ParseFormat(c.Export); err != nil {
			problems = append(problems, fmt.Sprintf("unknown export format %q", c.Export))
		}
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// FormatValue returns the configured format, or format.Unknown when the
// format should be detected
func (c *Config) FormatValue() format.Format {
	f, _ := format.Parse(c.Format)
	return f
}

// EncodingValue returns the configured encoding, or the usual encoding of f
// when none is set
func (c *Config) EncodingValue(f format.Format) reader.Encoding {
	if enc, err := reader.ParseEncoding(c.Encoding); err == nil {
		return enc
	}
	return reader.EncodingFor(f)
}

// ColumnOrderValue returns the configured column order
func (c *Config) ColumnOrderValue() layout.ColumnOrder {
	o, _ := layout.ParseColumnOrder(c.ColumnOrder)
	return o
}

// ExportConfig returns the export settings
func (c *Config) ExportConfig() export.Config {
	cfg := export.DefaultConfig()
	if f, err := export.ParseFormat(c.Export); err == nil {
		cfg.Format = f
	}
	cfg.PrettyPrint = c.Pretty
	return cfg
}

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/recipetext/model"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports a JSON array of recipes
	FormatJSON Format = iota
	// FormatJSONL exports one JSON object per line
	FormatJSONL
	// FormatYAML exports a YAML sequence of recipes
	FormatYAML
	// FormatMarkdown exports human readable Markdown
	FormatMarkdown
	// FormatHTML exports a standalone HTML document
	FormatHTML
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatYAML:
		return ".yaml"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseFormat converts a format name or file extension to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "json":
		return FormatJSON, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return FormatJSON, fmt.Errorf("unsupported export format: %q", name)
	}
}

// SupportedFormats returns the names accepted by ParseFormat
func SupportedFormats() []string {
	return []string{"json", "jsonl", "yaml", "markdown", "html"}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// PrettyPrint indents JSON output. JSON Lines output is never indented.
	PrettyPrint bool

	// DocumentTitle is the <title> of HTML output
	// Default: "Recipes"
	DocumentTitle string
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{
		Format:        FormatJSON,
		PrettyPrint:   true,
		DocumentTitle: "Recipes",
	}
}

// Exporter writes recipes in the configured format
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration
func NewExporter() *Exporter {
	return NewExporterWithConfig(DefaultConfig())
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	if config.DocumentTitle == "" {
		config.DocumentTitle = DefaultConfig().DocumentTitle
	}
	return &Exporter{config: config}
}

// Export writes recipes to w
func (e *Exporter) Export(recipes []*model.Recipe, w io.Writer) error {
	if recipes == nil {
		recipes = []*model.Recipe{}
	}

	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(recipes, w)
	case FormatJSONL:
		return e.exportJSONL(recipes, w)
	case FormatYAML:
		return e.exportYAML(recipes, w)
	case FormatMarkdown:
		return e.exportMarkdown(recipes, w)
	case FormatHTML:
		return e.exportHTML(recipes, w)
	default:
		return fmt.Errorf("unsupported export format: %s", e.config.Format)
	}
}

// ExportToFile writes recipes to a file
func (e *Exporter) ExportToFile(recipes []*model.Recipe, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := e.Export(recipes, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// ExportToString returns the exported recipes as a string
func (e *Exporter) ExportToString(recipes []*model.Recipe) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(recipes, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSON exports recipes as a JSON array
func (e *Exporter) exportJSON(recipes []*model.Recipe, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(recipes); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// exportJSONL exports recipes as JSON Lines
func (e *Exporter) exportJSONL(recipes []*model.Recipe, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	for i, r := range recipes {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode recipe %d: %w", i, err)
		}
	}
	return nil
}

// exportYAML exports recipes as a YAML sequence
func (e *Exporter) exportYAML(recipes []*model.Recipe, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(recipes); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}
	return nil
}

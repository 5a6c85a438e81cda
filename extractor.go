package recipetext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/recipetext/config"
	"github.com/tsawler/recipetext/export"
	"github.com/tsawler/recipetext/format"
	"github.com/tsawler/recipetext/layout"
	"github.com/tsawler/recipetext/logging"
	"github.com/tsawler/recipetext/model"
	"github.com/tsawler/recipetext/mmf"
	"github.com/tsawler/recipetext/mxp"
	"github.com/tsawler/recipetext/reader"
)

// Parser is implemented by the format parsers in the mmf and mxp packages
type Parser interface {
	FormatName() string
	Split(seq iter.Seq[string]) iter.Seq[layout.Block]
	ParseBlock(block layout.Block) (*model.Recipe, []layout.Issue)
}

// Extractor provides a fluent interface for parsing recipe files.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source; exactly one is set
	filename  string
	source    io.Reader
	lines     []string
	haveLines bool

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor.
// The lines slice is shared and never modified.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Format sets the recipe format instead of detecting it.
//
// Example:
//
//	recipes, _, err := recipetext.Open("export.txt").Format(format.MasterCook).Recipes(ctx)
func (e *Extractor) Format(f format.Format) *Extractor {
	newExt := e.clone()
	newExt.options.format = f
	return newExt
}

// Encoding sets the character encoding of the input.
// The default is CP437 for Meal-Master and Windows-1252 for MasterCook.
func (e *Extractor) Encoding(enc reader.Encoding) *Extractor {
	newExt := e.clone()
	newExt.options.encoding = enc
	return newExt
}

// Workers limits how many recipes are parsed concurrently.
// Zero or less means one worker per CPU; 1 parses sequentially.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = max(n, 0)
	return newExt
}

// ColumnOrder sets the reading order of two-column Meal-Master ingredient lists
func (e *Extractor) ColumnOrder(order layout.ColumnOrder) *Extractor {
	newExt := e.clone()
	newExt.options.columnOrder = order
	return newExt
}

// Attributes enables or disables capturing unknown labelled metadata lines
func (e *Extractor) Attributes(enabled bool) *Extractor {
	newExt := e.clone()
	newExt.options.attributes = enabled
	return newExt
}

// Logger sets the logger used for per-file and per-block debug records.
// A nil logger discards output.
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	if logger != nil {
		newExt.options.logger = logger
	}
	return newExt
}

// WithConfig applies every setting of cfg, including a structured logger at
// cfg.LogLevel. An invalid cfg makes the terminal operations fail.
func (e *Extractor) WithConfig(cfg *config.Config) *Extractor {
	newExt := e.clone()
	if cfg == nil {
		return newExt
	}
	if err := cfg.Validate(); err != nil {
		newExt.err = err
		return newExt
	}

	newExt.options.format = cfg.FormatValue()
	newExt.options.encoding = ""
	if cfg.Encoding != "" {
		newExt.options.encoding = cfg.EncodingValue(newExt.options.format)
	}
	newExt.options.workers = cfg.Workers
	newExt.options.columnOrder = cfg.ColumnOrderValue()
	newExt.options.attributes = cfg.Attributes
	newExt.options.export = cfg.ExportConfig()
	newExt.options.logger = logging.NewStructuredLogger(LoggerModule, Version, cfg.LogLevel)
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Recipes parses every recipe of the input in input order.
// Non-fatal problems are returned as warnings; an error is returned only
// when the input cannot be read, the format is unknown or ctx is done.
//
// Example:
//
//	recipes, warnings, err := recipetext.Open("dinners.mmf").Recipes(ctx)
func (e *Extractor) Recipes(ctx context.Context) ([]*model.Recipe, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	f, in, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	parser := e.newParser(f)
	blocks := slices.Collect(parser.Split(slices.Values(in)))
	log := e.options.logger.With(slog.String("format", parser.FormatName()))
	log.Debug("split input", slog.String("file", e.filename), slog.Int("lines", len(in)), slog.Int("blocks", len(blocks)))

	type result struct {
		recipe *model.Recipe
		issues []layout.Issue
	}
	results := make([]result, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, block := range blocks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			recipe, issues := parser.ParseBlock(block)
			results[i] = result{recipe: recipe, issues: issues}
			log.Debug("parsed block",
				slog.Int("block", i),
				slog.String("title", recipe.Title),
				slog.Int("ingredients", len(recipe.Ingredients)),
				slog.Int("issues", len(issues)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	recipes := make([]*model.Recipe, 0, len(results))
	var warnings []Warning
	for i, res := range results {
		recipes = append(recipes, res.recipe)
		for _, issue := range res.issues {
			warnings = append(warnings, Warning{BlockIndex: i, Title: res.recipe.Title, Issue: issue})
		}
	}
	if len(warnings) > 0 {
		log.Debug("parse warnings", slog.Int("count", len(warnings)))
	}
	return recipes, warnings, nil
}

// Export parses the input and writes the recipes to w in the given format.
// Warnings are logged at warn level.
//
// Example:
//
//	err := recipetext.Open("dinners.mmf").Export(ctx, os.Stdout, export.FormatMarkdown)
func (e *Extractor) Export(ctx context.Context, w io.Writer, f export.Format) error {
	recipes, warnings, err := e.Recipes(ctx)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		e.options.logger.Warn("recipe warning",
			slog.Int("block", warning.BlockIndex),
			slog.String("title", warning.Title),
			slog.String("kind", warning.Kind.String()),
			slog.String("message", warning.Message),
		)
	}

	cfg := e.options.export
	cfg.Format = f
	if err := export.NewExporterWithConfig(cfg).Export(recipes, w); err != nil {
		return fmt.Errorf("failed to export recipes: %w", err)
	}
	return nil
}

// ExportString parses the input and returns the recipes rendered in the
// given format
func (e *Extractor) ExportString(ctx context.Context, f export.Format) (string, error) {
	var sb strings.Builder
	if err := e.Export(ctx, &sb, f); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Count returns the number of recipe blocks in the input without parsing them
func (e *Extractor) Count() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	f, in, err := e.load()
	if err != nil {
		return 0, err
	}
	n := 0
	for range e.newParser(f).Split(slices.Values(in)) {
		n++
	}
	return n, nil
}

// DetectFormat returns the format that Recipes would use
func (e *Extractor) DetectFormat() (format.Format, error) {
	if e.err != nil {
		return format.Unknown, e.err
	}
	f, _, err := e.load()
	return f, err
}

// ============================================================================
// Internal helpers
// ============================================================================

// load resolves the format and returns the decoded input lines.
// An explicit format wins, then the file extension, then the contents.
func (e *Extractor) load() (format.Format, []string, error) {
	f := e.options.format
	if f == format.Unknown && e.filename != "" {
		f = format.Detect(e.filename)
	}

	if e.haveLines {
		if f == format.Unknown {
			f = format.DetectFromLines(e.lines)
		}
		if f == format.Unknown {
			return format.Unknown, nil, ErrUnknownFormat
		}
		return f, e.lines, nil
	}

	data, err := e.readAll()
	if err != nil {
		return format.Unknown, nil, err
	}
	if f == format.Unknown {
		if f, err = format.DetectFromReader(bytes.NewReader(data)); err != nil {
			return format.Unknown, nil, fmt.Errorf("failed to detect format: %w", err)
		}
	}
	if f == format.Unknown {
		return format.Unknown, nil, ErrUnknownFormat
	}

	enc := e.options.encoding
	if enc == "" {
		enc = reader.EncodingFor(f)
	}
	in, err := reader.ReadLines(bytes.NewReader(data), enc)
	if err != nil {
		return format.Unknown, nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return f, in, nil
}

func (e *Extractor) readAll() ([]byte, error) {
	if e.source != nil {
		data, err := io.ReadAll(e.source)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.filename, err)
	}
	return data, nil
}

func (e *Extractor) newParser(f format.Format) Parser {
	if f == format.MasterCook {
		return mxp.NewParserWithConfig(mxp.Config{Attributes: e.options.attributes})
	}
	return mmf.NewParserWithConfig(mmf.Config{
		ColumnOrder: e.options.columnOrder,
		Attributes:  e.options.attributes,
	})
}

func (e *Extractor) workers() int {
	if e.options.workers > 0 {
		return e.options.workers
	}
	return runtime.GOMAXPROCS(0)
}

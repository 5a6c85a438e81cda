// Package recipetext provides a fluent API for parsing Meal-Master (.mmf)
// and MasterCook (.mxp) recipe exports.
//
// Basic usage:
//
//	recipes, warnings, err := recipetext.Open("dinners.mmf").Recipes(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", recipetext.FormatWarnings(warnings))
//	}
//
// With options:
//
//	err := recipetext.Open("export.txt").
//	    Format(format.MasterCook).
//	    Encoding(reader.Latin1).
//	    Workers(4).
//	    Export(ctx, os.Stdout, export.FormatYAML)
//
// The lower-level mmf, mxp and layout packages are also available.
package recipetext

import (
	"errors"
	"io"

	"github.com/tsawler/recipetext/config"
)

// Version is reported in structured log records. Release builds set it with
// -ldflags "-X github.com/tsawler/recipetext.Version=..."
var Version = "dev"

// LoggerModule is the module attribute of structured log records
const LoggerModule = "recipetext"

// ErrUnknownFormat is returned when the recipe format is neither set nor
// detectable from the file name or contents
var ErrUnknownFormat = errors.New("unknown recipe format")

// Open returns an Extractor that reads the named file.
// The format is taken from the file extension, or sniffed from the contents
// when the extension is not recognised.
//
// Example:
//
//	recipes, warnings, err := recipetext.Open("dinners.mmf").Recipes(ctx)
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns an Extractor that reads raw bytes from r.
// The caller is responsible for closing r.
//
// Example:
//
//	recipes, _, err := recipetext.FromReader(resp.Body).Recipes(ctx)
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  r,
		options: defaultOptions(),
	}
}

// FromLines returns an Extractor over lines that are already decoded.
// The Encoding option has no effect.
//
// Example:
//
//	recipes, _, err := recipetext.FromLines(lines).Format(format.MealMaster).Recipes(ctx)
func FromLines(lines []string) *Extractor {
	return &Extractor{
		lines:     lines,
		haveLines: true,
		options:   defaultOptions(),
	}
}

// FromConfig returns Open(filename) with the settings of cfg applied.
// A nil cfg is the same as Open.
func FromConfig(filename string, cfg *config.Config) *Extractor {
	return Open(filename).WithConfig(cfg)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	f := recipetext.Must(format.DetectFromReader(r))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecipes is a helper that wraps a call to Recipes and panics if the
// error is non-nil. It discards warnings.
//
// Example:
//
//	recipes := recipetext.MustRecipes(recipetext.Open("dinners.mmf").Recipes(ctx))
func MustRecipes[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

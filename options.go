package recipetext

import (
	"log/slog"

	"github.com/tsawler/recipetext/export"
	"github.com/tsawler/recipetext/format"
	"github.com/tsawler/recipetext/layout"
	"github.com/tsawler/recipetext/logging"
	"github.com/tsawler/recipetext/reader"
)

// ParseOptions holds configuration for parsing and export.
type ParseOptions struct {
	format      format.Format   // Unknown means detect
	encoding    reader.Encoding // empty means the format's usual encoding
	workers     int             // 0 means runtime.GOMAXPROCS(0)
	columnOrder layout.ColumnOrder
	attributes  bool
	export      export.Config
	logger      *slog.Logger
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		format:      format.Unknown,
		columnOrder: layout.DownThenAcross,
		attributes:  true,
		export:      export.DefaultConfig(),
		logger:      logging.Discard(),
	}
}

// Package export renders parsed recipes as JSON, JSON Lines, YAML,
// Markdown or HTML, and describes the JSON output with a JSON Schema.
//
// Basic usage:
//
//	exporter := export.NewExporterWithConfig(export.Config{
//	    Format:      export.FormatYAML,
//	    PrettyPrint: true,
//	})
//	if err := exporter.Export(recipes, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// The field names of every structured format follow the json tags of
// model.Recipe; [Schema] returns the matching JSON Schema document.
package export

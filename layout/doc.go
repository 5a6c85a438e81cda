// Package layout recovers structure from plaintext recipe exports using
// positional conventions rather than a grammar.
//
// The building blocks are format-agnostic; the mmf and mxp packages configure
// them with the sentinels, offsets and patterns of their format.
//
// # Blocks
//
// A [BlockSplitter] partitions a line stream into one [Block] per recipe using
// header and footer [Sentinel] functions:
//
//	splitter := layout.NewBlockSplitter(layout.SplitterConfig{
//	    Header: layout.PrefixSentinel("---------- ", "MMMMM----- "),
//	    Footer: layout.ExactSentinel("-----", "MMMMM"),
//	})
//	for block := range splitter.SplitLines(lines) {
//	    ...
//	}
//
// # Ingredient Tables
//
// The [TableScanner] walks an ingredient section with a small state machine:
// it skips optional table header lines, then classifies each line as a
// heading ([HeadingMatcher]), an item, a blank line or the end of the table.
// Item lines wider than the column split offset are divided into two columns
// by a [ColumnBuffer] and emitted in [ColumnOrder]; continuation lines are
// folded into the preceding item by [MergeContinuations].
//
// # Paragraphs
//
// The [ParagraphGrouper] joins free text into paragraphs, breaking at blank
// lines and at the soft-break control character.
//
// # Lines
//
// [LabelValue] splits "Label: value" lines and [Column] slices fixed
// character columns. Offsets count characters, not bytes.
//
// # Issues
//
// Nothing in this package fails. Stages that meet missing sections, early end
// of input or odd lines report an [Issue] and carry on.
package layout

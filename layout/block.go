package layout

import (
	"iter"
	"slices"

	"github.com/tsawler/recipetext/lines"
)

// Block is the run of lines belonging to one recipe
type Block struct {
	// Index is the 0-based position of the block in its input
	Index int

	// Lines are the block lines, right-trimmed, starting with the header line
	Lines []string

	// Truncated is set when a footer was expected but the block ended at the
	// next header or at the end of input instead
	Truncated bool
}

// SplitterConfig holds the sentinels that delimit recipe blocks
type SplitterConfig struct {
	// Header opens a block. Required.
	Header Sentinel

	// Footer closes a block and is kept as its last line. When nil, a block
	// runs until the next header or the end of input.
	Footer Sentinel
}

// BlockSplitter partitions a line stream into recipe blocks
type BlockSplitter struct {
	config SplitterConfig
}

// NewBlockSplitter creates a splitter for the given sentinels
func NewBlockSplitter(config SplitterConfig) *BlockSplitter {
	return &BlockSplitter{config: config}
}

// Split returns a single-pass sequence of blocks read from seq.
//
// Lines before the first header and between a footer and the next header are
// discarded. A header met while a block is open emits that block first. A
// block still open at the end of input is emitted rather than dropped.
func (s *BlockSplitter) Split(seq iter.Seq[string]) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		if s.config.Header == nil {
			return
		}

		expectFooter := s.config.Footer != nil
		var current []string
		open := false
		index := 0

		emit := func(truncated bool) bool {
			b := Block{Index: index, Lines: current, Truncated: truncated}
			index++
			current = nil
			open = false
			return yield(b)
		}

		for line := range seq {
			line = lines.TrimRight(line)

			if s.config.Header(line) {
				if open && !emit(expectFooter) {
					return
				}
				open = true
			}
			if !open {
				continue
			}

			current = append(current, line)

			if expectFooter && s.config.Footer(line) {
				if !emit(false) {
					return
				}
			}
		}

		if open {
			emit(expectFooter)
		}
	}
}

// SplitLines splits an in-memory line slice
func (s *BlockSplitter) SplitLines(in []string) iter.Seq[Block] {
	return s.Split(slices.Values(in))
}

// Collect gathers every block of an in-memory line slice
func (s *BlockSplitter) Collect(in []string) []Block {
	return slices.Collect(s.SplitLines(in))
}

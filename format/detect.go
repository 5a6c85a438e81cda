// Package format provides recipe export format detection.
package format

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/recipetext/mmf"
	"github.com/tsawler/recipetext/mxp"
)

// Format represents a supported recipe export format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// MealMaster indicates a Meal-Master export (.mmf).
	MealMaster
	// MasterCook indicates a MasterCook 1-4 plaintext export (.mxp).
	MasterCook
)

// sniffLimit is the number of lines DetectFromReader inspects
const sniffLimit = 200

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case MealMaster:
		return mmf.FormatName
	case MasterCook:
		return mxp.FormatName
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case MealMaster:
		return ".mmf"
	case MasterCook:
		return ".mxp"
	default:
		return ""
	}
}

// Parse converts a format name such as "mmf", "meal-master" or "mxp" to a
// Format. Unknown names give Unknown and false.
func Parse(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mmf", "mm", "mealmaster", "meal-master":
		return MealMaster, true
	case "mxp", "mastercook", "master-cook":
		return MasterCook, true
	default:
		return Unknown, false
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mmf", ".mm", ".meal":
		return MealMaster
	case ".mxp":
		return MasterCook
	default:
		return Unknown
	}
}

// DetectFromLines returns the format of the first recipe header found in
// lines. This is more reliable than the extension, since both formats are
// often saved as .txt.
func DetectFromLines(lines []string) Format {
	for _, line := range lines {
		if f := detectLine(line); f != Unknown {
			return f
		}
	}
	return Unknown
}

// DetectFromReader reads up to the first 200 lines of r looking for a
// recipe header. Both formats use ASCII sentinels, so r does not need to be
// decoded first.
func DetectFromReader(r io.Reader) (Format, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for n := 0; n < sniffLimit && scanner.Scan(); n++ {
		if f := detectLine(strings.TrimRight(scanner.Text(), "\r")); f != Unknown {
			return f, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return Unknown, err
	}
	return Unknown, nil
}

func detectLine(line string) Format {
	switch {
	case mmf.IsHeader(line):
		return MealMaster
	case mxp.IsHeader(line):
		return MasterCook
	default:
		return Unknown
	}
}

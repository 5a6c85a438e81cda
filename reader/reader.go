package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/recipetext/format"
)

// ErrUnknownEncoding is returned for encoding names the reader does not support
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding names a text encoding of an export file
type Encoding string

const (
	CP437       Encoding = "cp437"
	Windows1252 Encoding = "windows-1252"
	Latin1      Encoding = "latin1"
	UTF8        Encoding = "utf-8"
)

// maxLineLength bounds a single line; longer lines fail with bufio.ErrTooLong
const maxLineLength = 1024 * 1024

// ctrlZ is the DOS end-of-file marker some exports still carry
const ctrlZ = "\x1a"

// ParseEncoding converts an encoding name to an Encoding. Common aliases
// such as "ibm437", "cp1252" and "iso-8859-1" are accepted.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cp437", "ibm437", "437", "dos":
		return CP437, nil
	case "windows-1252", "cp1252", "1252", "windows":
		return Windows1252, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	case "utf-8", "utf8":
		return UTF8, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// EncodingFor returns the usual encoding of files in the given format
func EncodingFor(f format.Format) Encoding {
	switch f {
	case format.MealMaster:
		return CP437
	case format.MasterCook:
		return Windows1252
	default:
		return UTF8
	}
}

// decoder returns the x/text encoding for e
func (e Encoding) decoder() (encoding.Encoding, error) {
	switch e {
	case CP437:
		return charmap.CodePage437, nil
	case Windows1252:
		return charmap.Windows1252, nil
	case Latin1:
		return charmap.ISO8859_1, nil
	case UTF8, "":
		return unicode.UTF8BOM, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(e))
	}
}

// Reader yields decoded lines from an export file
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	err     error
}

// NewReader creates a reader that decodes r with the given encoding
func NewReader(r io.Reader, enc Encoding) (*Reader, error) {
	e, err := enc.decoder()
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(transform.NewReader(r, e.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Reader{scanner: scanner}, nil
}

// Open opens a file and returns a Reader for it
func Open(filename string, enc Encoding) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r, err := NewReader(file, enc)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file
	return r, nil
}

// Close closes the underlying file, if the reader opened one
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Lines returns a single-pass sequence of decoded lines with "\n", "\r\n"
// and DOS end-of-file markers removed. Check Err after the sequence ends.
func (r *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.scanner.Scan() {
			line := strings.TrimRight(r.scanner.Text(), "\r")
			line = strings.TrimRight(line, ctrlZ)
			if !yield(line) {
				return
			}
		}
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("failed to read lines: %w", err)
		}
	}
}

// Err returns the first error met while reading lines
func (r *Reader) Err() error {
	return r.err
}

// ReadLines decodes all of r and returns its lines
func ReadLines(r io.Reader, enc Encoding) ([]string, error) {
	rd, err := NewReader(r, enc)
	if err != nil {
		return nil, err
	}

	var out []string
	for line := range rd.Lines() {
		out = append(out, line)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile opens, decodes and closes a file, returning its lines
func ReadFile(filename string, enc Encoding) ([]string, error) {
	r, err := Open(filename, enc)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []string
	for line := range r.Lines() {
		out = append(out, line)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

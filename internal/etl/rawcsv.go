package etl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// RawFileExtractor reads a delimited text file one line at a time and splits
// each line on a single configured rune. It applies no quoting rules and no
// width normalization: a line with zero occurrences of the delimiter becomes
// a one-field row, and rows keep however many fields the split produced.
//
// The delimiter is typically chosen to be a character absent from the data,
// so that comma-delimited content passes through as single verbatim fields
// for the transform task to interpret.
type RawFileExtractor struct {
	ID   string
	Path string
	Sep  rune
}

func (e *RawFileExtractor) Extract(ctx context.Context) (*Frame, error) {
	f, err := os.Open(e.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, e.Path)
		}
		return nil, fmt.Errorf("opening source %q: %w", e.Path, err)
	}
	defer f.Close()

	sep := string(e.Sep)
	reader := bufio.NewReader(f)
	frame := &Frame{ID: e.ID}
	lineNo := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading source %q: %w", e.Path, err)
		}
		atEOF := err == io.EOF

		// A file ending in a newline does not produce a trailing empty row.
		if atEOF && line == "" {
			break
		}
		lineNo++

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: %s line %d is not valid UTF-8", ErrDecode, e.Path, lineNo)
		}
		frame.Rows = append(frame.Rows, strings.Split(line, sep))

		if atEOF {
			break
		}
	}
	return frame, nil
}

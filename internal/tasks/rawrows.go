package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/pwysocki/pipevine/internal/etl"
)

// Built-in tasks over raw delimited rows. They all expect a single extract
// source; pipelines with several sources need a task that knows how to join
// them.

func init() {
	Register("rawrows.FieldCount", FieldCount)
	Register("rawrows.Passthrough", Passthrough)
	Register("rawrows.SplitCommas", SplitCommas)
}

// FieldCount maps each raw row to the number of fields it was split into.
func FieldCount(ctx context.Context, frames map[string]*etl.Frame) (*etl.RecordSet, error) {
	frame, err := singleFrame(frames)
	if err != nil {
		return nil, err
	}

	rs := &etl.RecordSet{Columns: []string{"field_count"}}
	for _, row := range frame.Rows {
		rs.Rows = append(rs.Rows, map[string]interface{}{"field_count": int64(len(row))})
	}
	return rs, nil
}

// Passthrough emits each unsplit row verbatim as a single "line" column.
// It refuses rows the extraction delimiter actually split, since rejoining
// them would fabricate content.
func Passthrough(ctx context.Context, frames map[string]*etl.Frame) (*etl.RecordSet, error) {
	frame, err := singleFrame(frames)
	if err != nil {
		return nil, err
	}

	rs := &etl.RecordSet{Columns: []string{"line"}}
	for i, row := range frame.Rows {
		if len(row) != 1 {
			return nil, fmt.Errorf("rawrows.Passthrough: row %d was split into %d fields, expected unsplit input", i, len(row))
		}
		rs.Rows = append(rs.Rows, map[string]interface{}{"line": row[0]})
	}
	return rs, nil
}

// SplitCommas interprets raw rows as comma-delimited content: every field of
// every row is re-split on commas and the pieces concatenated in order. Rows
// narrower than the widest one are padded with nulls under generated column
// names c0..cN.
func SplitCommas(ctx context.Context, frames map[string]*etl.Frame) (*etl.RecordSet, error) {
	frame, err := singleFrame(frames)
	if err != nil {
		return nil, err
	}

	split := make([][]string, len(frame.Rows))
	width := 0
	for i, row := range frame.Rows {
		var pieces []string
		for _, field := range row {
			pieces = append(pieces, strings.Split(field, ",")...)
		}
		split[i] = pieces
		if len(pieces) > width {
			width = len(pieces)
		}
	}
	if width == 0 {
		width = 1
	}

	rs := &etl.RecordSet{}
	for i := 0; i < width; i++ {
		rs.Columns = append(rs.Columns, fmt.Sprintf("c%d", i))
	}
	for _, pieces := range split {
		row := make(map[string]interface{}, width)
		for i, col := range rs.Columns {
			if i < len(pieces) {
				row[col] = pieces[i]
			} else {
				row[col] = nil
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}

func singleFrame(frames map[string]*etl.Frame) (*etl.Frame, error) {
	if len(frames) != 1 {
		return nil, fmt.Errorf("task expects exactly one extract source, got %d", len(frames))
	}
	for _, frame := range frames {
		return frame, nil
	}
	return nil, fmt.Errorf("task received no frames")
}

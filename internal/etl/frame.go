package etl

import "fmt"

// Frame holds the output of one extract source: the raw rows, in file order,
// each an ordered slice of string fields. Row widths vary; nothing is padded
// or truncated between extraction and the transform task. Columns is only
// populated by sources that know their header (SQL results); file sources
// leave it empty.
type Frame struct {
	ID      string
	Columns []string
	Rows    [][]string
}

// RecordSet is the normalized output of a transform task: a fixed column
// list and rows keyed by column name. It is the only shape the load stage
// accepts.
type RecordSet struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Check verifies that every row carries exactly the declared columns, no
// more and no fewer. Loaders call this before writing anything so that a
// ragged record set is rejected instead of silently padded.
func (rs *RecordSet) Check() error {
	if len(rs.Columns) == 0 {
		return fmt.Errorf("%w: record set declares no columns", ErrSchemaMismatch)
	}
	declared := make(map[string]bool, len(rs.Columns))
	for _, c := range rs.Columns {
		declared[c] = true
	}
	for i, row := range rs.Rows {
		if len(row) != len(rs.Columns) {
			return fmt.Errorf("%w: row %d has %d fields, schema has %d columns",
				ErrSchemaMismatch, i, len(row), len(rs.Columns))
		}
		for key := range row {
			if !declared[key] {
				return fmt.Errorf("%w: row %d has undeclared column %q", ErrSchemaMismatch, i, key)
			}
		}
	}
	return nil
}

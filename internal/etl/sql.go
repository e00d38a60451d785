package etl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pwysocki/pipevine/pkg/utils"
)

// SQLExtractor runs a configured query and yields the result as a frame.
// Every column value is rendered to its string form so that SQL sources and
// file sources feed the transform task the same row shape. The result's
// column header is carried on the frame.
type SQLExtractor struct {
	DB    *sql.DB
	ID    string
	Query string
}

func (s *SQLExtractor) Extract(ctx context.Context) (*Frame, error) {
	rows, err := s.DB.QueryContext(ctx, s.Query)
	if err != nil {
		return nil, fmt.Errorf("source %q query failed: %w", s.ID, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("source %q columns: %w", s.ID, err)
	}

	frame := &Frame{ID: s.ID, Columns: cols}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		pointers := make([]interface{}, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("source %q scan: %w", s.ID, err)
		}

		fields := make([]string, len(cols))
		for i, val := range values {
			if b, ok := val.([]byte); ok {
				fields[i] = string(b)
				continue
			}
			fields[i] = utils.ToString(val)
		}
		frame.Rows = append(frame.Rows, fields)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source %q rows: %w", s.ID, err)
	}
	return frame, nil
}

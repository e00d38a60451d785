package etl

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pwysocki/pipevine/pkg/logger"
	"github.com/pwysocki/pipevine/pkg/utils"
)

// CSVLoader writes a record set as comma-delimited text with a header row.
type CSVLoader struct {
	Path string
}

func (c *CSVLoader) Load(ctx context.Context, rs *RecordSet) error {
	if err := rs.Check(); err != nil {
		return err
	}

	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, c.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rs.Columns); err != nil {
		return fmt.Errorf("%w: writing header to %s: %v", ErrWrite, c.Path, err)
	}

	record := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		for i, col := range rs.Columns {
			record[i] = utils.ToString(row[col])
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("%w: writing row to %s: %v", ErrWrite, c.Path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ErrWrite, c.Path, err)
	}

	logger.Infof("Wrote %d rows to csv file %s", len(rs.Rows), c.Path)
	return nil
}

package etl

import (
	"context"
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/compress"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"github.com/pwysocki/pipevine/pkg/logger"
	"github.com/pwysocki/pipevine/pkg/utils"
)

// ParquetLoader writes a record set to a snappy-compressed parquet file.
// Column types are inferred from the values (int64, float64, bool,
// timestamp, string); column names and order follow the record set.
type ParquetLoader struct {
	Path string
}

func (p *ParquetLoader) Load(ctx context.Context, rs *RecordSet) error {
	if err := rs.Check(); err != nil {
		return err
	}

	schema, kinds := inferSchema(rs)
	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()

	for rowIdx, row := range rs.Rows {
		for colIdx, col := range rs.Columns {
			if err := appendValue(builder.Field(colIdx), kinds[colIdx], row[col]); err != nil {
				return fmt.Errorf("%w: row %d column %q: %v", ErrSchemaMismatch, rowIdx, col, err)
			}
		}
	}

	rec := builder.NewRecord()
	defer rec.Release()

	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, p.Path, err)
	}
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	writer, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("%w: opening parquet writer for %s: %v", ErrWrite, p.Path, err)
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrWrite, p.Path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWrite, p.Path, err)
	}

	logger.Infof("Wrote %d rows to parquet file %s", len(rs.Rows), p.Path)
	return nil
}

// inferSchema scans each column's values and builds the arrow schema. Every
// field is nullable; tasks pad under-split rows with nils.
func inferSchema(rs *RecordSet) (*arrow.Schema, []utils.Kind) {
	fields := make([]arrow.Field, len(rs.Columns))
	kinds := make([]utils.Kind, len(rs.Columns))

	for i, col := range rs.Columns {
		values := make([]interface{}, len(rs.Rows))
		for j, row := range rs.Rows {
			values[j] = row[col]
		}
		kind := utils.InferKind(values)
		kinds[i] = kind
		fields[i] = arrow.Field{Name: col, Type: arrowType(kind), Nullable: true}
	}
	return arrow.NewSchema(fields, nil), kinds
}

func arrowType(k utils.Kind) arrow.DataType {
	switch k {
	case utils.KindInt64:
		return arrow.PrimitiveTypes.Int64
	case utils.KindFloat64:
		return arrow.PrimitiveTypes.Float64
	case utils.KindBool:
		return arrow.FixedWidthTypes.Boolean
	case utils.KindTimestamp:
		return arrow.FixedWidthTypes.Timestamp_ms
	default:
		return arrow.BinaryTypes.String
	}
}

func appendValue(b array.Builder, kind utils.Kind, v interface{}) error {
	if v == nil {
		b.AppendNull()
		return nil
	}
	switch kind {
	case utils.KindInt64:
		n, err := utils.ToInt64(v)
		if err != nil {
			return err
		}
		b.(*array.Int64Builder).Append(n)
	case utils.KindFloat64:
		f, err := utils.ToFloat64(v)
		if err != nil {
			return err
		}
		b.(*array.Float64Builder).Append(f)
	case utils.KindBool:
		val, err := utils.ToBool(v)
		if err != nil {
			return err
		}
		b.(*array.BooleanBuilder).Append(val)
	case utils.KindTimestamp:
		t, err := utils.ToTime(v)
		if err != nil {
			return err
		}
		b.(*array.TimestampBuilder).Append(arrow.Timestamp(t.UnixMilli()))
	default:
		b.(*array.StringBuilder).Append(utils.ToString(v))
	}
	return nil
}

package etl

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoaderWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rs := &RecordSet{
		Columns: []string{"name", "count"},
		Rows: []map[string]interface{}{
			{"name": "a,b", "count": int64(2)},
			{"name": "c", "count": nil},
		},
	}

	require.NoError(t, (&CSVLoader{Path: path}).Load(context.Background(), rs))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "count"}, records[0])
	assert.Equal(t, []string{"a,b", "2"}, records[1])
	assert.Equal(t, []string{"c", ""}, records[2])
}

func TestCSVLoaderRejectsRaggedRecordSet(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"a"},
		Rows:    []map[string]interface{}{{"a": 1, "b": 2}},
	}
	err := (&CSVLoader{Path: filepath.Join(t.TempDir(), "out.csv")}).Load(context.Background(), rs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

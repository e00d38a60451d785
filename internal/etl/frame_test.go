package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSetCheckUniform(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"a", "b"},
		Rows: []map[string]interface{}{
			{"a": 1, "b": 2},
			{"a": 3, "b": nil},
		},
	}
	assert.NoError(t, rs.Check())
}

func TestRecordSetCheckMissingColumn(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"a", "b"},
		Rows: []map[string]interface{}{
			{"a": 1, "b": 2},
			{"a": 3},
		},
	}
	err := rs.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestRecordSetCheckUndeclaredColumn(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"a"},
		Rows: []map[string]interface{}{
			{"c": 1},
		},
	}
	err := rs.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestRecordSetCheckNoColumns(t *testing.T) {
	err := (&RecordSet{}).Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

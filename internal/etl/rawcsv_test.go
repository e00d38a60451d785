package etl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRawFileExtractorSplitsOnConfiguredRune(t *testing.T) {
	path := writeSource(t, "a,b,c|d\nx,y,z\n")
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	frame, err := ex.Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "raw", frame.ID)
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, []string{"a,b,c", "d"}, frame.Rows[0])
	assert.Equal(t, []string{"x,y,z"}, frame.Rows[1])
}

func TestRawFileExtractorPreservesRaggedRows(t *testing.T) {
	path := writeSource(t, "a|b|c|d\ne\nf|g\n")
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	frame, err := ex.Extract(context.Background())
	require.NoError(t, err)

	require.Len(t, frame.Rows, 3)
	assert.Len(t, frame.Rows[0], 4)
	assert.Len(t, frame.Rows[1], 1)
	assert.Len(t, frame.Rows[2], 2)
}

// Content whose delimiter never occurs must survive extraction verbatim,
// one single-field row per line.
func TestRawFileExtractorRoundTrip(t *testing.T) {
	lines := []string{
		"meter_1,2024-01-01T00:00:00,1.25",
		"meter_1,2024-01-01T01:00:00,1.75,extra,columns",
		"meter_2,,",
	}
	path := writeSource(t, lines[0]+"\n"+lines[1]+"\n"+lines[2]+"\n")
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	frame, err := ex.Extract(context.Background())
	require.NoError(t, err)

	require.Len(t, frame.Rows, len(lines))
	for i, line := range lines {
		require.Len(t, frame.Rows[i], 1)
		assert.Equal(t, line, frame.Rows[i][0])
	}
}

func TestRawFileExtractorNoTrailingNewline(t *testing.T) {
	path := writeSource(t, "a|b\nc")
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	frame, err := ex.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, []string{"c"}, frame.Rows[1])
}

func TestRawFileExtractorCRLF(t *testing.T) {
	path := writeSource(t, "a|b\r\nc|d\r\n")
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	frame, err := ex.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, []string{"a", "b"}, frame.Rows[0])
}

func TestRawFileExtractorEmptyFile(t *testing.T) {
	path := writeSource(t, "")
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	frame, err := ex.Extract(context.Background())
	require.NoError(t, err)
	assert.Empty(t, frame.Rows)
}

func TestRawFileExtractorMissingFile(t *testing.T) {
	ex := &RawFileExtractor{ID: "raw", Path: filepath.Join(t.TempDir(), "absent.csv"), Sep: '|'}

	_, err := ex.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestRawFileExtractorInvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.csv")
	require.NoError(t, os.WriteFile(path, []byte{'a', 0xff, 0xfe, '\n'}, 0644))
	ex := &RawFileExtractor{ID: "raw", Path: path, Sep: '|'}

	_, err := ex.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwysocki/pipevine/pkg/models"
)

func specWithSources(ids ...string) *models.PipelineSpec {
	spec := &models.PipelineSpec{}
	for _, id := range ids {
		spec.Extract = append(spec.Extract, models.ExtractSpec{ID: id, Type: models.SourceTypeFile})
	}
	return spec
}

func TestParseInputsKeyed(t *testing.T) {
	m, err := parseInputs([]string{"raw=/data/in.csv", "aux=/data/aux.csv"}, specWithSources("raw", "aux"))
	require.NoError(t, err)
	assert.Equal(t, "/data/in.csv", m["raw"])
	assert.Equal(t, "/data/aux.csv", m["aux"])
}

func TestParseInputsBarePathSingleSource(t *testing.T) {
	m, err := parseInputs([]string{"/data/in.csv"}, specWithSources("raw"))
	require.NoError(t, err)
	assert.Equal(t, "/data/in.csv", m["raw"])
}

func TestParseInputsBarePathAmbiguous(t *testing.T) {
	_, err := parseInputs([]string{"/data/in.csv"}, specWithSources("raw", "aux"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous input")
}

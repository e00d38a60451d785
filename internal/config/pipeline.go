package config

import (
	"fmt"
	"os"

	"github.com/pwysocki/pipevine/internal/etl"
	"github.com/pwysocki/pipevine/pkg/models"
)

// LoadPipeline reads and parses a pipeline definition file. Parse and
// validation failures are reported as configuration errors.
func LoadPipeline(path string) (*models.PipelineSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", etl.ErrConfiguration, path, err)
	}

	spec, err := models.ParsePipeline(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", etl.ErrConfiguration, path, err)
	}
	return spec, nil
}

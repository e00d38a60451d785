package etl

import (
	"context"

	"github.com/google/uuid"
	"github.com/pwysocki/pipevine/pkg/logger"
)

// Pipeline wires one extract stage (one or more sources), one transform
// task and one load sink. Stages run strictly in order, each at most once,
// and the first error aborts the run.
type Pipeline struct {
	ID         string
	Extractors []Extractor
	Task       TaskFunc
	Loader     Loader
	DryRun     bool
}

func NewPipeline(id string, extractors []Extractor, task TaskFunc, loader Loader, dryRun bool) *Pipeline {
	return &Pipeline{
		ID:         id,
		Extractors: extractors,
		Task:       task,
		Loader:     loader,
		DryRun:     dryRun,
	}
}

// Run executes extract, transform and load sequentially. Errors from the
// transform task are returned unmodified; stage errors carry their error
// class for the caller to inspect.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger.Infof("Starting pipeline %s (run %s). Sources: %d, DryRun: %v", p.ID, runID, len(p.Extractors), p.DryRun)

	// 1. Extract
	frames := make(map[string]*Frame, len(p.Extractors))
	for _, ex := range p.Extractors {
		frame, err := ex.Extract(ctx)
		if err != nil {
			logger.Errorf("Extraction failed: %v", err)
			return err
		}
		frames[frame.ID] = frame
		logger.Infof("Extracted %d rows from source %q", len(frame.Rows), frame.ID)
	}

	// 2. Transform
	rs, err := p.Task(ctx, frames)
	if err != nil {
		logger.Errorf("Transform task failed: %v", err)
		return err
	}
	logger.Infof("Transform produced %d rows across %d columns", len(rs.Rows), len(rs.Columns))

	// 3. Load
	if p.DryRun {
		logger.Infof("[DRY RUN] Would load %d records", len(rs.Rows))
		logger.Infof("Pipeline %s finished successfully.", p.ID)
		return nil
	}
	if err := p.Loader.Load(ctx, rs); err != nil {
		logger.Errorf("Loading failed: %v", err)
		return err
	}

	logger.Infof("Pipeline %s finished successfully.", p.ID)
	return nil
}

package cli

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwysocki/pipevine/internal/config"
	"github.com/pwysocki/pipevine/internal/etl"
	"github.com/pwysocki/pipevine/internal/tasks"
	"github.com/pwysocki/pipevine/pkg/database"
	"github.com/pwysocki/pipevine/pkg/logger"
	"github.com/pwysocki/pipevine/pkg/models"
)

type RunOptions struct {
	PipelineFile string
	Inputs       []string
	Output       string
	DryRun       bool
}

func NewRunCmd() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a pipeline definition",
		RunE: func(c *cobra.Command, args []string) error {
			return runPipeline(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.PipelineFile, "pipeline", "p", "", "Path to the pipeline definition file")
	cmd.Flags().StringArrayVarP(&opts.Inputs, "input", "i", nil, "Input path per source, as <source-id>=<path>")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output path (overrides the default location)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Run extract and transform but skip the load stage")
	cmd.MarkFlagRequired("pipeline")

	return cmd
}

func runPipeline(opts *RunOptions) error {
	settings := config.LoadSettings()

	lvl := logger.INFO
	if settings.LogLevel == "debug" {
		lvl = logger.DEBUG
	}
	if err := logger.InitLogger(settings.LogFile, lvl); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Close()

	spec, err := config.LoadPipeline(opts.PipelineFile)
	if err != nil {
		return err
	}

	// Resolve the task up front so a bad reference fails before any I/O.
	task, err := tasks.Resolve(spec.Transform.Task)
	if err != nil {
		return err
	}

	inputs, err := parseInputs(opts.Inputs, spec)
	if err != nil {
		return err
	}

	var sqlDB *sql.DB
	extractors := make([]etl.Extractor, 0, len(spec.Extract))
	for _, src := range spec.Extract {
		switch src.Type {
		case models.SourceTypeFile:
			path, ok := inputs[src.ID]
			if !ok {
				return fmt.Errorf("no input path supplied for source %q (use --input %s=<path>)", src.ID, src.ID)
			}
			extractors = append(extractors, &etl.RawFileExtractor{ID: src.ID, Path: path, Sep: src.Sep()})
		case models.SourceTypeSQL:
			if sqlDB == nil {
				connStr, err := config.SQLConnString()
				if err != nil {
					return err
				}
				sqlDB, err = database.ConnectSQL(connStr)
				if err != nil {
					return err
				}
				defer sqlDB.Close()
			}
			extractors = append(extractors, &etl.SQLExtractor{DB: sqlDB, ID: src.ID, Query: src.Options.Query})
		}
	}

	loader, cleanup, err := buildLoader(spec, settings, opts.Output)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	pipeline := etl.NewPipeline(spec.Info.ID, extractors, task, loader, opts.DryRun)
	return pipeline.Run(context.Background())
}

func buildLoader(spec *models.PipelineSpec, settings *config.Settings, output string) (etl.Loader, func(), error) {
	switch spec.Load.Type {
	case models.SinkTypeMongo:
		connStr, err := config.MongoConnString()
		if err != nil {
			return nil, nil, err
		}
		client, err := database.ConnectMongo(connStr)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		db := spec.Load.Options.Database
		if db == "" {
			db = "pipevine"
		}
		return &etl.MongoLoader{Client: client, Database: db, Collection: spec.Load.Options.Collection}, cleanup, nil

	default: // models.SinkTypeFile, guaranteed by validation
		path := output
		if path == "" {
			path = spec.Load.Options.Path
		}
		if path == "" {
			path = filepath.Join(settings.OutputDir, spec.Info.ID+"."+spec.Load.Format)
		}
		if spec.Load.Format == models.SinkFormatCSV {
			return &etl.CSVLoader{Path: path}, nil, nil
		}
		return &etl.ParquetLoader{Path: path}, nil, nil
	}
}

// parseInputs maps --input flags onto extract source ids. A bare path with
// no "id=" prefix is accepted when the pipeline declares a single source.
func parseInputs(inputs []string, spec *models.PipelineSpec) (map[string]string, error) {
	m := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if id, path, ok := strings.Cut(in, "="); ok {
			m[id] = path
			continue
		}
		if len(spec.Extract) == 1 {
			m[spec.Extract[0].ID] = in
			continue
		}
		return nil, fmt.Errorf("ambiguous input %q: pipeline has %d sources, use <source-id>=<path>", in, len(spec.Extract))
	}
	return m, nil
}

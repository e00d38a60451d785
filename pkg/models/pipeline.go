// Package models defines the typed schema for declarative pipeline
// definition files and their validation rules.
package models

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Enumerated values accepted by the pipeline schema.
const (
	SourceTypeFile = "file"
	SourceTypeSQL  = "sql"

	SourceFormatCSV = "csv"

	TransformTypeTask = "task"

	SinkTypeFile  = "file"
	SinkTypeMongo = "mongo"

	SinkFormatParquet = "parquet"
	SinkFormatCSV     = "csv"
)

// PipelineSpec is the root of a pipeline definition file. A pipeline has
// exactly one extract stage (one or more sources), one transform stage and
// one load stage, executed in that order.
type PipelineSpec struct {
	Info      InfoSpec      `yaml:"info"`
	Extract   []ExtractSpec `yaml:"extract"`
	Transform TransformSpec `yaml:"transform"`
	Load      LoadSpec      `yaml:"load"`
}

type InfoSpec struct {
	ID string `yaml:"id"`
}

// ExtractSpec describes a single source. For file sources the delimiter in
// Options.Sep is applied verbatim; it is commonly a character that does not
// occur in the data at all, so that ragged rows survive extraction unsplit.
type ExtractSpec struct {
	ID      string         `yaml:"id"`
	Type    string         `yaml:"type"`
	Format  string         `yaml:"format"`
	Options ExtractOptions `yaml:"options"`
}

type ExtractOptions struct {
	Sep   string `yaml:"sep"`
	Query string `yaml:"query"`
}

// Sep returns the configured delimiter rune, defaulting to a comma.
func (e ExtractSpec) Sep() rune {
	if e.Options.Sep == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(e.Options.Sep)
	return r
}

// TransformSpec names the external task that interprets the extracted rows.
// Task is a dotted identifier resolved against the task registry; Script is
// an informational reference to the source file the task lives in.
type TransformSpec struct {
	Type   string `yaml:"type"`
	Task   string `yaml:"task"`
	Script string `yaml:"script"`
}

type LoadSpec struct {
	Type    string      `yaml:"type"`
	Format  string      `yaml:"format"`
	Options LoadOptions `yaml:"options"`
}

type LoadOptions struct {
	Path       string `yaml:"path"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// ParsePipeline parses a pipeline definition and validates it. The returned
// spec is never mutated afterwards.
func ParsePipeline(data []byte) (*PipelineSpec, error) {
	var spec PipelineSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing pipeline definition: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the definition against the enumerated schema. It reports
// the first problem found.
func (p *PipelineSpec) Validate() error {
	if p.Info.ID == "" {
		return fmt.Errorf("info.id is required")
	}
	if len(p.Extract) == 0 {
		return fmt.Errorf("pipeline %q declares no extract sources", p.Info.ID)
	}

	seen := make(map[string]bool, len(p.Extract))
	for i, src := range p.Extract {
		if src.ID == "" {
			return fmt.Errorf("extract[%d]: id is required", i)
		}
		if seen[src.ID] {
			return fmt.Errorf("extract[%d]: duplicate source id %q", i, src.ID)
		}
		seen[src.ID] = true

		switch src.Type {
		case SourceTypeFile:
			if src.Format != SourceFormatCSV {
				return fmt.Errorf("extract %q: unsupported format %q", src.ID, src.Format)
			}
			if src.Options.Sep != "" && utf8.RuneCountInString(src.Options.Sep) != 1 {
				return fmt.Errorf("extract %q: sep must be a single character, got %q", src.ID, src.Options.Sep)
			}
		case SourceTypeSQL:
			if src.Options.Query == "" {
				return fmt.Errorf("extract %q: sql source requires options.query", src.ID)
			}
		default:
			return fmt.Errorf("extract %q: unsupported type %q", src.ID, src.Type)
		}
	}

	if p.Transform.Type != TransformTypeTask {
		return fmt.Errorf("transform: unsupported type %q", p.Transform.Type)
	}
	if p.Transform.Task == "" {
		return fmt.Errorf("transform: task identifier is required")
	}

	switch p.Load.Type {
	case SinkTypeFile:
		if p.Load.Format != SinkFormatParquet && p.Load.Format != SinkFormatCSV {
			return fmt.Errorf("load: unsupported file format %q", p.Load.Format)
		}
	case SinkTypeMongo:
		if p.Load.Options.Collection == "" {
			return fmt.Errorf("load: mongo sink requires options.collection")
		}
	default:
		return fmt.Errorf("load: unsupported type %q", p.Load.Type)
	}

	return nil
}

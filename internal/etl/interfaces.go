package etl

import "context"

// Extractor produces the raw frame for one declared source.
type Extractor interface {
	Extract(ctx context.Context) (*Frame, error)
}

// TaskFunc is the transform extension point. It receives every extracted
// frame keyed by source id and returns the normalized record set, or an
// error which aborts the run before the load stage.
type TaskFunc func(ctx context.Context, frames map[string]*Frame) (*RecordSet, error)

// Loader persists a normalized record set to the configured destination.
type Loader interface {
	Load(ctx context.Context, rs *RecordSet) error
}

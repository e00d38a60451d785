package etl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	frame *Frame
	err   error
}

func (s *stubExtractor) Extract(ctx context.Context) (*Frame, error) {
	return s.frame, s.err
}

type recordingLoader struct {
	called bool
	got    *RecordSet
	err    error
}

func (r *recordingLoader) Load(ctx context.Context, rs *RecordSet) error {
	r.called = true
	r.got = rs
	return r.err
}

func passFrames(out *RecordSet) TaskFunc {
	return func(ctx context.Context, frames map[string]*Frame) (*RecordSet, error) {
		return out, nil
	}
}

func TestPipelineRunHappyPath(t *testing.T) {
	frame := &Frame{ID: "raw", Rows: [][]string{{"a,b,c"}}}
	out := &RecordSet{Columns: []string{"line"}, Rows: []map[string]interface{}{{"line": "a,b,c"}}}
	loader := &recordingLoader{}

	p := NewPipeline("p1", []Extractor{&stubExtractor{frame: frame}}, passFrames(out), loader, false)
	require.NoError(t, p.Run(context.Background()))

	assert.True(t, loader.called)
	assert.Same(t, out, loader.got)
}

func TestPipelineTaskSeesAllFrames(t *testing.T) {
	a := &Frame{ID: "a"}
	b := &Frame{ID: "b"}
	var seen map[string]*Frame

	task := func(ctx context.Context, frames map[string]*Frame) (*RecordSet, error) {
		seen = frames
		return &RecordSet{Columns: []string{"n"}}, nil
	}

	p := NewPipeline("p1", []Extractor{&stubExtractor{frame: a}, &stubExtractor{frame: b}}, task, &recordingLoader{}, false)
	require.NoError(t, p.Run(context.Background()))

	require.Len(t, seen, 2)
	assert.Same(t, a, seen["a"])
	assert.Same(t, b, seen["b"])
}

// A failing task must abort the run before the load stage executes.
func TestPipelineTaskErrorSkipsLoad(t *testing.T) {
	taskErr := errors.New("task exploded")
	task := func(ctx context.Context, frames map[string]*Frame) (*RecordSet, error) {
		return nil, taskErr
	}
	loader := &recordingLoader{}

	p := NewPipeline("p1", []Extractor{&stubExtractor{frame: &Frame{ID: "raw"}}}, task, loader, false)
	err := p.Run(context.Background())

	// The task's error propagates unmodified.
	assert.Same(t, taskErr, err)
	assert.False(t, loader.called)
}

func TestPipelineExtractErrorAborts(t *testing.T) {
	extractErr := errors.New("boom")
	taskCalled := false
	task := func(ctx context.Context, frames map[string]*Frame) (*RecordSet, error) {
		taskCalled = true
		return nil, nil
	}
	loader := &recordingLoader{}

	p := NewPipeline("p1", []Extractor{&stubExtractor{err: extractErr}}, task, loader, false)
	err := p.Run(context.Background())

	assert.ErrorIs(t, err, extractErr)
	assert.False(t, taskCalled)
	assert.False(t, loader.called)
}

func TestPipelineDryRunSkipsLoad(t *testing.T) {
	out := &RecordSet{Columns: []string{"n"}}
	loader := &recordingLoader{}

	p := NewPipeline("p1", []Extractor{&stubExtractor{frame: &Frame{ID: "raw"}}}, passFrames(out), loader, true)
	require.NoError(t, p.Run(context.Background()))
	assert.False(t, loader.called)
}

func TestPipelineLoadErrorPropagates(t *testing.T) {
	out := &RecordSet{Columns: []string{"n"}}
	loader := &recordingLoader{err: ErrWrite}

	p := NewPipeline("p1", []Extractor{&stubExtractor{frame: &Frame{ID: "raw"}}}, passFrames(out), loader, false)
	err := p.Run(context.Background())
	assert.ErrorIs(t, err, ErrWrite)
}

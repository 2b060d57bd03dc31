package tubes

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dokipen/tubing/pkg/tubing"
)

// Map applies fn to every unit of every chunk.
func Map[In, Out any](fn func(In) (Out, error)) tubing.Transformer[In, Out] {
	return &mapper[In, Out]{fn: fn}
}

type mapper[In, Out any] struct {
	tubing.BaseTransformer[Out]
	fn func(In) (Out, error)
}

func (m *mapper[In, Out]) Transform(chunk []In) ([]Out, error) {
	out := make([]Out, 0, len(chunk))
	for _, v := range chunk {
		r, err := m.fn(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ChunkMap applies fn to whole chunks at a time.
func ChunkMap[In, Out any](fn func([]In) ([]Out, error)) tubing.Transformer[In, Out] {
	return &chunkMapper[In, Out]{fn: fn}
}

type chunkMapper[In, Out any] struct {
	tubing.BaseTransformer[Out]
	fn func([]In) ([]Out, error)
}

func (m *chunkMapper[In, Out]) Transform(chunk []In) ([]Out, error) {
	return m.fn(chunk)
}

// Filter drops units that fail the predicate.
func Filter[T any](pred func(T) bool) tubing.Transformer[T, T] {
	return &filter[T]{pred: pred}
}

type filter[T any] struct {
	tubing.BaseTransformer[T]
	pred func(T) bool
}

func (f *filter[T]) Transform(chunk []T) ([]T, error) {
	out := make([]T, 0, len(chunk))
	for _, v := range chunk {
		if f.pred(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Tee forwards every chunk to w as well as downstream. The secondary
// writer's hooks follow the pipeline's outcome: Close on completion, Abort
// on failure, never both. A failure in w fails the whole pipeline.
func Tee[T any](w tubing.Writer[T]) tubing.Transformer[T, T] {
	return &tee[T]{w: w}
}

type tee[T any] struct {
	w    tubing.Writer[T]
	done bool
}

func (t *tee[T]) Transform(chunk []T) ([]T, error) {
	if err := t.w.Write(chunk); err != nil {
		return nil, fmt.Errorf("tee: %w", err)
	}
	return chunk, nil
}

func (t *tee[T]) Flush() ([]T, error) {
	t.done = true
	if err := t.w.Close(); err != nil {
		return nil, fmt.Errorf("tee: %w", err)
	}
	return nil, nil
}

func (t *tee[T]) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.w.Abort()
}

// Debug logs every chunk at debug level and passes it through untouched.
func Debug[T any](log zerolog.Logger) tubing.Transformer[T, T] {
	return &debug[T]{log: log}
}

type debug[T any] struct {
	tubing.BaseTransformer[T]
	log zerolog.Logger
}

func (d *debug[T]) Transform(chunk []T) ([]T, error) {
	d.log.Debug().Int("units", len(chunk)).Interface("chunk", chunk).Msg("chunk")
	return chunk, nil
}

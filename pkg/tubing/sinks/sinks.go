package sinks

import (
	"hash"
	"io"
	"os"

	"github.com/dokipen/tubing/pkg/tubing"
)

// Objects returns a sink collecting every unit it receives. Read the
// result only after the pipeline's Wait has returned.
func Objects[T any]() *ObjectsSink[T] {
	return &ObjectsSink[T]{}
}

// ObjectsSink accumulates units in memory.
type ObjectsSink[T any] struct {
	tubing.NopHooks
	objs []T
}

func (s *ObjectsSink[T]) Write(chunk []T) error {
	s.objs = append(s.objs, chunk...)
	return nil
}

// Result returns the collected units.
func (s *ObjectsSink[T]) Result() []T { return s.objs }

// ToWriter adapts an io.Writer into a byte sink. The writer is not closed
// on completion; wrap it in File or a custom Writer if it needs lifecycle
// hooks.
func ToWriter(w io.Writer) tubing.Writer[byte] {
	return &writerSink{w: w}
}

type writerSink struct {
	tubing.NopHooks
	w io.Writer
}

func (s *writerSink) Write(chunk []byte) error {
	_, err := s.w.Write(chunk)
	return err
}

// File returns a sink writing to a freshly created file at path. Completion
// closes the file; failure closes it and removes the partial output.
func File(path string) (tubing.Writer[byte], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &fileSink{f: f, path: path}, nil
}

type fileSink struct {
	f    *os.File
	path string
}

func (s *fileSink) Write(chunk []byte) error {
	_, err := s.f.Write(chunk)
	return err
}

func (s *fileSink) Close() error {
	return s.f.Close()
}

func (s *fileSink) Abort() {
	s.f.Close()
	os.Remove(s.path)
}

// Hash returns a sink feeding every byte into h. The digest is whatever h
// reports after the pipeline completes.
func Hash(h hash.Hash) tubing.Writer[byte] {
	return &hashSink{h: h}
}

type hashSink struct {
	tubing.NopHooks
	h hash.Hash
}

func (s *hashSink) Write(chunk []byte) error {
	_, err := s.h.Write(chunk)
	return err
}

// Discard returns a sink that drops everything.
func Discard[T any]() tubing.Writer[T] {
	return discard[T]{}
}

type discard[T any] struct {
	tubing.NopHooks
}

func (discard[T]) Write([]T) error { return nil }

// Func adapts plain functions into a Writer; onClose and onAbort may be nil.
func Func[T any](write func([]T) error, onClose func() error, onAbort func()) tubing.Writer[T] {
	return &funcSink[T]{write: write, close: onClose, abort: onAbort}
}

type funcSink[T any] struct {
	write func([]T) error
	close func() error
	abort func()
}

func (s *funcSink[T]) Write(chunk []T) error {
	return s.write(chunk)
}

func (s *funcSink[T]) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func (s *funcSink[T]) Abort() {
	if s.abort != nil {
		s.abort()
	}
}

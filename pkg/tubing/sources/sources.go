package sources

import (
	"io"

	"github.com/dokipen/tubing/pkg/tubing"
)

// defaultReadSize is how many bytes FromReader requests when the amount is
// left to the reader's choice.
const defaultReadSize = 64 * 1024

// Objects returns a Reader that yields the elements of objs.
func Objects[T any](objs []T) tubing.Reader[T] {
	return &objectsReader[T]{rest: objs}
}

type objectsReader[T any] struct {
	rest []T
}

func (r *objectsReader[T]) Read(amount int) ([]T, bool, error) {
	if amount <= 0 || amount > len(r.rest) {
		amount = len(r.rest)
	}
	chunk := r.rest[:amount:amount]
	r.rest = r.rest[amount:]
	return chunk, len(r.rest) == 0, nil
}

// FromReader adapts an io.Reader into a byte-stream Reader. io.EOF is
// translated into the end-of-input flag, so a short final read still
// delivers its data.
func FromReader(r io.Reader) tubing.Reader[byte] {
	return &ioReader{r: r}
}

type ioReader struct {
	r io.Reader
}

func (s *ioReader) Read(amount int) ([]byte, bool, error) {
	if amount <= 0 {
		amount = defaultReadSize
	}
	buf := make([]byte, amount)
	n, err := s.r.Read(buf)
	if err == io.EOF {
		return buf[:n], true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return buf[:n], false, nil
}

// ReadFunc adapts a function to the Reader interface.
type ReadFunc[T any] func(amount int) ([]T, bool, error)

func (f ReadFunc[T]) Read(amount int) ([]T, bool, error) {
	return f(amount)
}

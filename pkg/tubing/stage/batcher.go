package stage

import "github.com/dokipen/tubing/pkg/tubing"

// Batcher sizes the variable-length reads of a Reader into chunks of
// exactly size units; only the final chunk may be shorter. A size of zero
// disables batching and passes reads through at whatever size the reader
// naturally returns. Batching is a source-side concern: chunks crossing
// tube boundaries are already pre-sized by the stage upstream.
type Batcher[T any] struct {
	r     tubing.Reader[T]
	size  int
	carry []T
	eof   bool
}

func NewBatcher[T any](r tubing.Reader[T], size int) *Batcher[T] {
	return &Batcher[T]{r: r, size: size}
}

// Next returns the next chunk and whether it is the last one. It keeps
// requesting the shortfall from the reader until the target size is reached
// or the reader signals end of input, whichever comes first. Readers may
// overshoot the requested amount; the surplus is carried into the next
// chunk.
func (b *Batcher[T]) Next() ([]T, bool, error) {
	if b.eof && len(b.carry) == 0 {
		return nil, true, nil
	}
	if b.size <= 0 {
		chunk, eof, err := b.r.Read(0)
		if err != nil {
			return nil, false, err
		}
		b.eof = eof
		return chunk, eof, nil
	}
	for !b.eof && len(b.carry) < b.size {
		chunk, eof, err := b.r.Read(b.size - len(b.carry))
		if err != nil {
			return nil, false, err
		}
		b.carry = append(b.carry, chunk...)
		b.eof = eof
	}
	n := b.size
	if len(b.carry) < n {
		n = len(b.carry)
	}
	chunk := b.carry[:n:n]
	b.carry = append([]T(nil), b.carry[n:]...)
	return chunk, b.eof && len(b.carry) == 0, nil
}

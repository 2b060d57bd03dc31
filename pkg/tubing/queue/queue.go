package queue

import (
	"errors"
	"sync"

	"github.com/dokipen/tubing/pkg/tubing"
)

// Status is the outcome of a Get call.
type Status int

const (
	// Data means a chunk was dequeued.
	Data Status = iota
	// Done means the queue is closed and fully drained.
	Done
	// Aborted means the pipeline failed; buffered chunks were discarded.
	Aborted
)

// ErrAborted is returned by Put after the queue was aborted. The chunk is
// discarded; producers treat it as a stop signal, not as a failure of their
// own.
var ErrAborted = errors.New("queue: aborted")

// ErrClosed is returned by Put after the queue was closed. Producing past
// Close is a protocol violation.
var ErrClosed error = &tubing.ProtocolError{Op: "queue.Put", Reason: "put after close"}

type state int

const (
	open state = iota
	closed
	aborted
)

// Queue is a bounded FIFO mailbox of chunks shared by exactly two stages.
// All state transitions are serialized internally; chunks themselves are
// never mutated after being pushed, so no further locking is needed on
// chunk contents.
type Queue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	buf      [][]T
	capacity int
	st       state
}

// New returns an open queue. Capacities below 1 are clamped to 1.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	q := &Queue[T]{capacity: capacity}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Cap returns the queue's capacity.
func (q *Queue[T]) Cap() int { return q.capacity }

// Len returns the number of buffered chunks.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Put enqueues one chunk, blocking while the queue is full and open.
// It returns ErrClosed if the queue was closed and ErrAborted (after
// discarding the chunk) if it was aborted.
func (q *Queue[T]) Put(chunk []T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.st == open && len(q.buf) >= q.capacity {
		q.notFull.Wait()
	}
	switch q.st {
	case closed:
		return ErrClosed
	case aborted:
		return ErrAborted
	}
	q.buf = append(q.buf, chunk)
	q.notEmpty.Signal()
	return nil
}

// Get dequeues the next chunk in FIFO order, blocking while the queue is
// empty and open. Once the queue is closed and drained it reports Done;
// once aborted it reports Aborted immediately, even if chunks remain.
func (q *Queue[T]) Get() ([]T, Status) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.st == open && len(q.buf) == 0 {
		q.notEmpty.Wait()
	}
	if q.st == aborted {
		return nil, Aborted
	}
	if len(q.buf) > 0 {
		chunk := q.buf[0]
		q.buf[0] = nil
		q.buf = q.buf[1:]
		q.notFull.Signal()
		return chunk, Data
	}
	return nil, Done
}

// Close marks the normal end of the stream. Buffered chunks stay available
// to the consumer. Close is idempotent and must only be called by the
// producing side, after its last Put.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.st != open {
		return
	}
	q.st = closed
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Abort moves the queue to its terminal failure state, discards buffered
// chunks and wakes every goroutine blocked on Put or Get. It is idempotent
// and may be called by either side, even after Close.
func (q *Queue[T]) Abort() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.st == aborted {
		return
	}
	q.st = aborted
	q.buf = nil
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

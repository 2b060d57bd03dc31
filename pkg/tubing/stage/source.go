package stage

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/dokipen/tubing/pkg/tubing"
	"github.com/dokipen/tubing/pkg/tubing/queue"
)

// Source drives a Reader: it pulls batched chunks and pushes them into the
// pipeline's first queue.
type Source[T any] struct {
	batch *Batcher[T]
	out   *queue.Queue[T]
	fault *Fault
	log   zerolog.Logger
}

func NewSource[T any](r tubing.Reader[T], chunkSize int, out *queue.Queue[T], fault *Fault, log zerolog.Logger) *Source[T] {
	return &Source[T]{
		batch: NewBatcher(r, chunkSize),
		out:   out,
		fault: fault,
		log:   log,
	}
}

// Run loops until the reader signals end of input, then closes the
// downstream queue. A final non-empty chunk is pushed before closing.
// A read failure trips the fault coordinator instead of closing.
func (s *Source[T]) Run() error {
	s.log.Debug().Msg("source started")
	chunks := 0
	for {
		chunk, done, err := s.batch.Next()
		if err != nil {
			s.log.Debug().Err(err).Msg("source read failed")
			s.fault.Trip(err)
			return err
		}
		if len(chunk) > 0 {
			if err := s.out.Put(chunk); err != nil {
				if errors.Is(err, queue.ErrAborted) {
					s.log.Debug().Msg("source stopped on abort")
					return nil
				}
				s.fault.Trip(err)
				return err
			}
			chunks++
		}
		if done {
			s.out.Close()
			s.log.Debug().Int("chunks", chunks).Msg("source finished")
			return nil
		}
	}
}

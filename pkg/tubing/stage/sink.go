package stage

import (
	"github.com/rs/zerolog"

	"github.com/dokipen/tubing/pkg/tubing"
	"github.com/dokipen/tubing/pkg/tubing/queue"
)

// Sink drives a Writer at the end of the pipeline. The sink goroutine is
// the only caller of the writer's hooks, so Close and Abort each run at
// most once and never both: Close only on graceful completion, Abort only
// on failure.
type Sink[T any] struct {
	w     tubing.Writer[T]
	in    *queue.Queue[T]
	fault *Fault
	log   zerolog.Logger
}

func NewSink[T any](w tubing.Writer[T], in *queue.Queue[T], fault *Fault, log zerolog.Logger) *Sink[T] {
	return &Sink[T]{w: w, in: in, fault: fault, log: log}
}

func (s *Sink[T]) Run() error {
	s.log.Debug().Msg("sink started")
	chunks := 0
	for {
		chunk, st := s.in.Get()
		switch st {
		case queue.Done:
			if err := s.w.Close(); err != nil {
				s.log.Debug().Err(err).Msg("sink close failed")
				s.fault.Trip(err)
				return err
			}
			s.log.Debug().Int("chunks", chunks).Msg("sink completed")
			return nil
		case queue.Aborted:
			s.w.Abort()
			s.log.Debug().Msg("sink aborted")
			return nil
		}

		if err := s.w.Write(chunk); err != nil {
			s.log.Debug().Err(err).Msg("sink write failed")
			s.fault.Trip(err)
			s.w.Abort()
			return err
		}
		chunks++
	}
}

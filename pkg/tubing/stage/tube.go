package stage

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/dokipen/tubing/pkg/tubing"
	"github.com/dokipen/tubing/pkg/tubing/queue"
)

// Tube drives a Transformer between two queues.
type Tube[In, Out any] struct {
	t     tubing.Transformer[In, Out]
	in    *queue.Queue[In]
	out   *queue.Queue[Out]
	fault *Fault
	log   zerolog.Logger
}

func NewTube[In, Out any](t tubing.Transformer[In, Out], in *queue.Queue[In], out *queue.Queue[Out], fault *Fault, log zerolog.Logger) *Tube[In, Out] {
	return &Tube[In, Out]{t: t, in: in, out: out, fault: fault, log: log}
}

// Run pulls chunks from upstream, applies the transform and pushes results
// downstream. On upstream close it flushes the transformer, forwards any
// final chunk and closes downstream; on upstream abort it aborts downstream.
// Empty transform output is still forwarded: only queue state signals end
// of stream.
func (t *Tube[In, Out]) Run() error {
	t.log.Debug().Msg("tube started")
	chunks := 0
	for {
		chunk, st := t.in.Get()
		switch st {
		case queue.Done:
			final, err := t.t.Flush()
			if err != nil {
				t.log.Debug().Err(err).Msg("tube flush failed")
				t.t.Abort()
				t.fault.Trip(err)
				return err
			}
			if len(final) > 0 {
				if err := t.out.Put(final); err != nil && !errors.Is(err, queue.ErrAborted) {
					t.fault.Trip(err)
					return err
				}
			}
			t.out.Close()
			t.log.Debug().Int("chunks", chunks).Msg("tube finished")
			return nil
		case queue.Aborted:
			t.t.Abort()
			t.out.Abort()
			t.log.Debug().Msg("tube stopped on abort")
			return nil
		}

		res, err := t.t.Transform(chunk)
		if err != nil {
			t.log.Debug().Err(err).Msg("tube transform failed")
			t.t.Abort()
			t.fault.Trip(err)
			return err
		}
		if err := t.out.Put(res); err != nil {
			if errors.Is(err, queue.ErrAborted) {
				t.t.Abort()
				t.log.Debug().Msg("tube stopped on abort")
				return nil
			}
			t.fault.Trip(err)
			return err
		}
		chunks++
	}
}

package apparatus

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dokipen/tubing/pkg/tubing"
	"github.com/dokipen/tubing/pkg/tubing/queue"
	"github.com/dokipen/tubing/pkg/tubing/stage"
)

// Apparatus is the tail of a partially built chain: a running source plus
// zero or more running tubes, ending in an unconsumed queue of T chunks.
// Extend it with Through or terminate it with Into; each tail may be used
// exactly once.
type Apparatus[T any] struct {
	core *core
	out  *queue.Queue[T]
	used atomic.Bool
}

// core is the state shared by every tail of one chain.
type core struct {
	id    uuid.UUID
	log   zerolog.Logger
	fault *stage.Fault
	group *errgroup.Group

	mu     sync.Mutex
	stages int
}

func (c *core) stageLogger(kind string) zerolog.Logger {
	c.mu.Lock()
	index := c.stages
	c.stages++
	c.mu.Unlock()
	return c.log.With().Str("stage", kind).Int("index", index).Logger()
}

// New starts a pipeline with r as its source and returns the chain tail.
// ChunkSize, Capacity and WithLogger apply here.
func New[T any](r tubing.Reader[T], opts ...Option) *Apparatus[T] {
	cfg := newConfig(opts)
	c := &core{
		id:    uuid.New(),
		fault: stage.NewFault(),
		group: &errgroup.Group{},
	}
	c.log = cfg.logger.With().Str("apparatus", c.id.String()).Logger()

	out := queue.New[T](cfg.capacity)
	c.fault.Register(out)
	src := stage.NewSource(r, cfg.chunkSize, out, c.fault, c.stageLogger("source"))
	c.group.Go(src.Run)
	return &Apparatus[T]{core: c, out: out}
}

// Through extends the chain with a tube running t and returns the new tail.
// It is a package-level function, not a method, so that a transformer may
// change the unit type of the stream. Capacity applies to the tube's
// downstream queue.
func Through[In, Out any](a *Apparatus[In], t tubing.Transformer[In, Out], opts ...Option) *Apparatus[Out] {
	cfg := newConfig(opts)
	a.consume("Through")

	out := queue.New[Out](cfg.capacity)
	a.core.fault.Register(out)
	tube := stage.NewTube(t, a.out, out, a.core.fault, a.core.stageLogger("tube"))
	a.core.group.Go(tube.Run)
	return &Apparatus[Out]{core: a.core, out: out}
}

// Into terminates the chain with a sink running w. The pipeline is live
// from this moment; the returned handle is the only way to observe its
// outcome.
func (a *Apparatus[T]) Into(w tubing.Writer[T]) *Pipeline {
	a.consume("Into")

	sink := stage.NewSink(w, a.out, a.core.fault, a.core.stageLogger("sink"))
	a.core.group.Go(sink.Run)
	return &Pipeline{core: a.core}
}

func (a *Apparatus[T]) consume(op string) {
	if !a.used.CompareAndSwap(false, true) {
		panic(&tubing.ProtocolError{Op: "apparatus." + op, Reason: "chain tail already extended"})
	}
}

package apparatus

import "github.com/rs/zerolog"

// DefaultCapacity is the chunk capacity of queues whose stage did not
// override it.
const DefaultCapacity = 8

type config struct {
	chunkSize int
	capacity  int
	logger    zerolog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		capacity: DefaultCapacity,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures one composition step.
type Option func(*config)

// ChunkSize sets the batching target for a source: reads are accumulated
// into chunks of exactly n units, the final chunk possibly shorter. Zero,
// the default, keeps whatever sizes the reader naturally returns. Only New
// consults it.
func ChunkSize(n int) Option {
	return func(cfg *config) { cfg.chunkSize = n }
}

// Capacity sets the chunk capacity of the queue downstream of the stage
// being attached (minimum 1). A fast producer blocks once the queue holds
// that many chunks.
func Capacity(n int) Option {
	return func(cfg *config) { cfg.capacity = n }
}

// WithLogger sets the logger for the whole apparatus; stages log their
// lifecycle on it at debug level. Only New consults it. The default is a
// no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(cfg *config) { cfg.logger = log }
}

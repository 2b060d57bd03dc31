package stage

import "sync"

// Aborter is the slice of the queue API the fault coordinator needs.
type Aborter interface {
	Abort()
}

// Fault coordinates pipeline-wide teardown. The first Trip wins: its error
// becomes the pipeline's terminal failure reason and every registered queue
// is aborted, unblocking all stage goroutines. Queues registered after the
// trip are aborted on registration, so a failure during composition still
// reaches stages attached later.
type Fault struct {
	mu      sync.Mutex
	tripped bool
	err     error
	queues  []Aborter
}

func NewFault() *Fault {
	return &Fault{}
}

// Register adds a queue to the teardown set.
func (f *Fault) Register(q Aborter) {
	f.mu.Lock()
	tripped := f.tripped
	f.queues = append(f.queues, q)
	f.mu.Unlock()
	if tripped {
		q.Abort()
	}
}

// Trip records err as the pipeline's failure and aborts every registered
// queue. Calls after the first are no-ops, so simultaneous failures in two
// stages are safe.
func (f *Fault) Trip(err error) {
	f.mu.Lock()
	if f.tripped {
		f.mu.Unlock()
		return
	}
	f.tripped = true
	f.err = err
	queues := make([]Aborter, len(f.queues))
	copy(queues, f.queues)
	f.mu.Unlock()

	for _, q := range queues {
		q.Abort()
	}
}

// Err returns the recorded failure, or nil if the pipeline never tripped.
func (f *Fault) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

package apparatus

import "github.com/google/uuid"

// Pipeline is the handle to a fully composed, running chain. It cannot be
// extended further: a pipeline has exactly one sink, placed last.
type Pipeline struct {
	core *core
}

// ID identifies the apparatus; the same id is stamped on every stage's log
// context.
func (p *Pipeline) ID() uuid.UUID { return p.core.id }

// Wait blocks until every stage has finished and returns nil if the
// pipeline completed, or the first stage failure if it aborted. There is no
// timeout; enforce one externally if the embedding application needs it.
// Wait may be called from multiple goroutines.
func (p *Pipeline) Wait() error {
	_ = p.core.group.Wait()
	if err := p.core.fault.Err(); err != nil {
		p.core.log.Debug().Err(err).Msg("apparatus aborted")
		return err
	}
	p.core.log.Debug().Msg("apparatus completed")
	return nil
}

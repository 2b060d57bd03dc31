package tubing

// Reader is the source-side collaborator: a pull-based producer of stream
// units. Read returns up to amount units; amount <= 0 lets the reader pick
// its natural size. The second result reports end of input; a Reader may
// return a final non-empty chunk together with eof == true, and must not be
// called again after reporting eof.
type Reader[T any] interface {
	Read(amount int) (chunk []T, eof bool, err error)
}

// Transformer is the tube-side collaborator. Transform maps one chunk to one
// output chunk; the output length may differ and an empty output chunk is
// legal (it is forwarded, not treated as end of stream). Flush is called
// exactly once when upstream closes and may emit a final chunk (compressors
// and splitters use it to drain internal buffers). Abort is called at most
// once when the pipeline fails.
//
// Transformers without buffering embed BaseTransformer to pick up no-op
// Flush and Abort.
type Transformer[In, Out any] interface {
	Transform(chunk []In) ([]Out, error)
	Flush() ([]Out, error)
	Abort()
}

// BaseTransformer provides no-op Flush and Abort hooks for stateless
// transformers.
type BaseTransformer[Out any] struct{}

func (BaseTransformer[Out]) Flush() ([]Out, error) { return nil, nil }

func (BaseTransformer[Out]) Abort() {}

// Writer is the sink-side collaborator: a push-based consumer of chunks.
// Close is called at most once, only on graceful completion; Abort is called
// at most once, only on failure. The two are mutually exclusive. Writers
// that need neither hook embed NopHooks.
type Writer[T any] interface {
	Write(chunk []T) error
	Close() error
	Abort()
}

// NopHooks provides no-op Close and Abort for writers without completion or
// failure handling.
type NopHooks struct{}

func (NopHooks) Close() error { return nil }

func (NopHooks) Abort() {}

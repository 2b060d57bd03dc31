package tubes

import (
	"encoding/json"

	"github.com/dokipen/tubing/pkg/tubing"
)

// JSONSerializer encodes each unit of a chunk into its own raw JSON
// segment. Pair it with Joined to produce newline-delimited JSON.
func JSONSerializer[T any]() tubing.Transformer[T, []byte] {
	return &jsonSerializer[T]{}
}

type jsonSerializer[T any] struct {
	tubing.BaseTransformer[[]byte]
}

func (*jsonSerializer[T]) Transform(chunk []T) ([][]byte, error) {
	out := make([][]byte, 0, len(chunk))
	for _, obj := range chunk {
		raw, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

// JSONParser decodes chunks of raw JSON segments into values of T. Empty
// segments, such as the one Split emits for a trailing delimiter, are
// skipped. It expects each segment to be a complete JSON document and works
// well downstream of Split on newline-delimited input.
func JSONParser[T any]() tubing.Transformer[[]byte, T] {
	return &jsonParser[T]{}
}

type jsonParser[T any] struct {
	tubing.BaseTransformer[T]
}

func (*jsonParser[T]) Transform(chunk [][]byte) ([]T, error) {
	out := make([]T, 0, len(chunk))
	for _, raw := range chunk {
		if len(raw) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

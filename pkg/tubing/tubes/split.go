package tubes

import (
	"bytes"

	"github.com/dokipen/tubing/pkg/tubing"
)

// Split fragments a byte stream on a delimiter, turning chunks of bytes
// into chunks of delimiter-free segments. A partial segment is buffered
// across chunk boundaries and emitted on flush, so a stream with a trailing
// delimiter ends with one empty segment.
func Split(on []byte) tubing.Transformer[byte, []byte] {
	if len(on) == 0 {
		on = []byte("\n")
	}
	return &splitter{on: on}
}

type splitter struct {
	on  []byte
	buf []byte
}

func (s *splitter) Transform(chunk []byte) ([][]byte, error) {
	s.buf = append(s.buf, chunk...)
	var out [][]byte
	for {
		i := bytes.Index(s.buf, s.on)
		if i < 0 {
			break
		}
		seg := append([]byte(nil), s.buf[:i]...)
		out = append(out, seg)
		s.buf = s.buf[i+len(s.on):]
	}
	return out, nil
}

func (s *splitter) Flush() ([][]byte, error) {
	rest := s.buf
	s.buf = nil
	return [][]byte{rest}, nil
}

func (s *splitter) Abort() {}

// Joined flattens chunks of byte segments back into a byte stream,
// inserting by between every segment, across chunk boundaries too. It is
// the inverse of Split.
func Joined(by []byte) tubing.Transformer[[]byte, byte] {
	return &joined{by: by, first: true}
}

type joined struct {
	tubing.BaseTransformer[byte]
	by    []byte
	first bool
}

func (j *joined) Transform(chunk [][]byte) ([]byte, error) {
	if len(chunk) == 0 {
		return nil, nil
	}
	var out []byte
	if !j.first {
		out = append(out, j.by...)
	}
	j.first = false
	out = append(out, bytes.Join(chunk, j.by)...)
	return out, nil
}

// JoinChunks concatenates successive chunks of a byte stream with a
// separator between them, leaving chunk contents untouched.
func JoinChunks(by []byte) tubing.Transformer[byte, byte] {
	return &chunkJoiner{by: by, first: true}
}

type chunkJoiner struct {
	tubing.BaseTransformer[byte]
	by    []byte
	first bool
}

func (j *chunkJoiner) Transform(chunk []byte) ([]byte, error) {
	if j.first {
		j.first = false
		return chunk, nil
	}
	out := make([]byte, 0, len(j.by)+len(chunk))
	out = append(out, j.by...)
	out = append(out, chunk...)
	return out, nil
}

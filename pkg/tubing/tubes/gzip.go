package tubes

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/dokipen/tubing/pkg/tubing"
)

// Gzip compresses a byte stream. Output chunk boundaries follow whatever
// the compressor emits, so chunks may be empty while it buffers; the
// trailer is emitted on flush. level is a compress/gzip level, e.g.
// gzip.BestCompression.
func Gzip(level int) tubing.Transformer[byte, byte] {
	g := &gzipper{}
	g.zw, g.initErr = gzip.NewWriterLevel(&g.buf, level)
	return g
}

type gzipper struct {
	tubing.BaseTransformer[byte]
	buf     bytes.Buffer
	zw      *gzip.Writer
	initErr error
}

func (g *gzipper) Transform(chunk []byte) ([]byte, error) {
	if g.initErr != nil {
		return nil, g.initErr
	}
	if _, err := g.zw.Write(chunk); err != nil {
		return nil, err
	}
	return g.drain(), nil
}

func (g *gzipper) Flush() ([]byte, error) {
	if g.initErr != nil {
		return nil, g.initErr
	}
	if err := g.zw.Close(); err != nil {
		return nil, err
	}
	return g.drain(), nil
}

func (g *gzipper) drain() []byte {
	out := append([]byte(nil), g.buf.Bytes()...)
	g.buf.Reset()
	return out
}

// Gunzip decompresses a gzipped byte stream. The stdlib inflater pulls from
// an io.Reader and cannot be fed push-style chunk by chunk, so compressed
// input is buffered and inflated in one go when the stream closes.
func Gunzip() tubing.Transformer[byte, byte] {
	return &gunzipper{}
}

type gunzipper struct {
	tubing.BaseTransformer[byte]
	buf bytes.Buffer
}

func (g *gunzipper) Transform(chunk []byte) ([]byte, error) {
	g.buf.Write(chunk)
	return nil, nil
}

func (g *gunzipper) Flush() ([]byte, error) {
	zr, err := gzip.NewReader(&g.buf)
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

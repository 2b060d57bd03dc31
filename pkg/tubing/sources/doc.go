// Package sources provides Readers for common producers: in-memory slices,
// io.Reader byte streams and ad-hoc functions.
package sources

// Package sinks provides Writers for common consumers: in-memory
// collectors, io.Writer targets, files, hashes and the void.
package sinks

// Package queue implements the bounded handoff buffer connecting two
// adjacent pipeline stages.
//
// A Queue holds chunks in FIFO order and has three states: open, closed and
// aborted. The producing stage blocks on Put while the queue is full,
// which is what gives the pipeline backpressure; the consuming stage blocks
// on Get while it is empty. Close marks the normal end of the stream and
// lets the consumer drain what is buffered; Abort discards buffered chunks
// and wakes both ends immediately.
package queue

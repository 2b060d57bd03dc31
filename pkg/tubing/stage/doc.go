// Package stage contains the per-stage execution machinery: the batcher
// that sizes source reads into chunks, the worker loops that drive a
// Reader, Transformer or Writer against its queues, and the fault
// coordinator that tears the whole pipeline down on the first failure.
//
// Each stage runs its loop on one dedicated goroutine, started and joined
// by the apparatus package. A runner has exactly three ways out of its
// loop: forward data, forward close, or trip the fault coordinator.
package stage

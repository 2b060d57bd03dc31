// Package apparatus composes sources, tubes and sinks into a running
// pipeline.
//
// New starts a source stage and returns the chain tail. Through extends the
// tail with a tube; it is a package-level function so a tube may change the
// stream's unit type. Into attaches the sink and returns the Pipeline
// handle, which Wait resolves to nil on completion or to the first stage
// failure on abort.
//
//	app := apparatus.New(sources.FromReader(f), apparatus.ChunkSize(64<<10))
//	app = apparatus.Through(app, tubes.Gunzip())
//	pipe := app.Into(sinks.ToWriter(&out))
//	if err := pipe.Wait(); err != nil {
//		// pipeline aborted; partial output is the sink's to clean up
//	}
//
// Every stage runs on its own goroutine the moment it is attached; the
// pipeline is live as soon as the sink is. Chain shape is mostly enforced
// by the type system (a chain can only begin with a Reader, and a Pipeline
// cannot be extended); the one misuse left to runtime, extending the same
// tail twice, panics with *tubing.ProtocolError.
package apparatus

// Package tubing defines the capability interfaces that pluggable pipeline
// stages implement: Reader for sources, Transformer for tubes, Writer for
// sinks.
//
// A pipeline (an apparatus) is a source, zero or more tubes and a sink, each
// running on its own goroutine and handing chunks to the next stage through
// a bounded queue. A chunk is an ordered batch of stream units; units can be
// bytes, strings or arbitrary objects. Chunks are immutable once handed off:
// ownership transfers fully to the consuming stage and no stage may touch a
// chunk it has already pushed downstream.
//
// Pipelines are composed with the apparatus package:
//
//	app := apparatus.New(sources.Objects(data), apparatus.ChunkSize(8))
//	app2 := apparatus.Through(app, tubes.JSONSerializer[Record]())
//	pipe := app2.Into(sinks.ToWriter(&buf))
//	err := pipe.Wait()
//
// Concrete stage implementations live in the sources, tubes and sinks
// packages; the execution machinery lives in queue, stage and apparatus.
package tubing

package apparatus

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dokipen/tubing/pkg/tubing"
	"github.com/dokipen/tubing/pkg/tubing/sinks"
	"github.com/dokipen/tubing/pkg/tubing/sources"
	"github.com/dokipen/tubing/pkg/tubing/tubes"
)

func identity[T any]() tubing.Transformer[T, T] {
	return tubes.ChunkMap(func(chunk []T) ([]T, error) { return chunk, nil })
}

func TestIdentityChainPreservesOrder(t *testing.T) {
	t.Parallel()
	units := make([]int, 1000)
	for i := range units {
		units[i] = i
	}
	collector := sinks.Objects[int]()

	app := New(sources.Objects(units), ChunkSize(7), Capacity(2))
	app = Through(app, identity[int]())
	app = Through(app, identity[int](), Capacity(1))
	app = Through(app, identity[int]())
	pipe := app.Into(collector)

	require.NoError(t, pipe.Wait())
	require.Equal(t, units, collector.Result())
}

func TestCompletionPropagatesEndToEnd(t *testing.T) {
	t.Parallel()
	collector := sinks.Objects[string]()
	app := New(sources.Objects([]string{"a", "b", "c"}))
	pipe := Through(app, identity[string]()).Into(collector)

	done := make(chan error, 1)
	go func() { done <- pipe.Wait() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("pipeline never completed")
	}
	require.Equal(t, []string{"a", "b", "c"}, collector.Result())
}

func TestAbortPropagatesEndToEnd(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom on chunk 3")
	units := make([]int, 100)

	var delivered atomic.Int32
	var aborts atomic.Int32
	sink := sinks.Func(
		func(chunk []int) error { delivered.Add(1); return nil },
		nil,
		func() { aborts.Add(1) },
	)

	seen := 0
	failing := tubes.ChunkMap(func(chunk []int) ([]int, error) {
		seen++
		if seen == 3 {
			return nil, boom
		}
		return chunk, nil
	})

	app := New(sources.Objects(units), ChunkSize(5))
	pipe := Through(app, failing).Into(sink)

	require.ErrorIs(t, pipe.Wait(), boom)
	require.Equal(t, int32(1), aborts.Load(), "sink abort hook must run exactly once")
	require.LessOrEqual(t, delivered.Load(), int32(2), "chunks after the failing one must not arrive")
}

func TestBackpressureBoundsProduction(t *testing.T) {
	t.Parallel()
	var reads atomic.Int32
	blocked := make(chan struct{})

	reader := sources.ReadFunc[int](func(int) ([]int, bool, error) {
		reads.Add(1)
		return []int{1}, false, nil
	})
	sink := sinks.Func(
		func([]int) error { <-blocked; return nil },
		nil, nil,
	)

	app := New[int](reader, Capacity(1))
	pipe := app.Into(sink)

	// Capacity 1 with a sink that never reads: one chunk in the queue, one
	// held by the blocked Put, one handed to the stalled sink. Production
	// must stop there.
	require.Eventually(t, func() bool { return reads.Load() >= 3 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	require.LessOrEqual(t, reads.Load(), int32(4))

	close(blocked)
	go func() {
		// Drain forever; the source is infinite, so tear the pipeline down.
		time.Sleep(20 * time.Millisecond)
		pipeAbort(pipe)
	}()
	_ = pipe.Wait()
}

// pipeAbort trips the pipeline from the outside for tests of infinite
// sources.
func pipeAbort(p *Pipeline) {
	p.core.fault.Trip(errors.New("test teardown"))
}

func TestReusingTailPanics(t *testing.T) {
	t.Parallel()
	app := New(sources.Objects([]int{1}))
	_ = Through(app, identity[int]())

	defer func() {
		r := recover()
		require.NotNil(t, r, "second use of a consumed tail must panic")
		err, ok := r.(error)
		require.True(t, ok)
		var pv *tubing.ProtocolError
		require.ErrorAs(t, err, &pv)
	}()
	_ = Through(app, identity[int]())
}

func TestPipelineIDIsStable(t *testing.T) {
	t.Parallel()
	app := New(sources.Objects([]int{1}))
	pipe := app.Into(sinks.Discard[int]())
	id := pipe.ID()
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	require.NoError(t, pipe.Wait())
	require.Equal(t, id, pipe.ID())
}

func TestWaitFromMultipleGoroutines(t *testing.T) {
	t.Parallel()
	app := New(sources.Objects(make([]int, 100)), ChunkSize(3))
	pipe := Through(app, identity[int]()).Into(sinks.Discard[int]())

	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() { errs <- pipe.Wait() }()
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, <-errs)
	}
}

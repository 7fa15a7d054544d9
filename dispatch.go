package chunkmap

import (
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// span is the half-open range [lo, hi) of one chunk.
type span struct {
	lo, hi int
}

// split partitions n items into consecutive spans of at most size items.
func split(n, size int) []span {
	spans := make([]span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}
	return spans
}

// chunkFunc processes one chunk. *cursor starts at the input index of items[0]
// and must hold the input index of the element being processed, so that a
// panic can be attributed to it. It returns the chunk's partial result or the
// fault that stopped it.
type chunkFunc[I, P any] func(chunk int, cursor *int, items []I) (P, *TransformFault)

// newRun returns the ID passed to the Reporter for one call.
func newRun() string { return uuid.NewString() }

// dispatch runs work over v and returns one partial per chunk, in chunk order.
// Inputs no larger than the threshold are handled as a single chunk on the
// calling goroutine. Otherwise one goroutine is started per chunk and all of
// them are waited on before any fault is reported to the caller.
func dispatch[I, P any](v []I, opts Options, run string, work chunkFunc[I, P]) ([]P, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}

	threshold := opts.Threshold()
	reporter := opts.reporterOrNop()

	if len(v) <= threshold {
		var fault *TransformFault
		p, ok := guard(work, 0, 0, v[:len(v):len(v)], func(f *TransformFault) {
			fault = f
			reporter.ChunkFailed(run, f)
		})
		if !ok {
			return nil, &AggregateFailure{Faults: []*TransformFault{fault}}
		}
		return []P{p}, nil
	}

	spans := split(len(v), threshold)
	var (
		g        errgroup.Group
		partials = make([]P, len(spans))
		faults   = make([]*TransformFault, len(spans))
	)
	for i, s := range spans {
		items := v[s.lo:s.hi:s.hi]
		reporter.ChunkDispatched(run, i, s.lo, len(items))
		g.Go(func() error {
			p, ok := guard(work, i, s.lo, items, func(f *TransformFault) {
				faults[i] = f
				reporter.ChunkFailed(run, f)
			})
			if !ok {
				return faults[i]
			}
			partials[i] = p
			return nil
		})
	}
	// Wait reports only the first fault; all of them are gathered below.
	_ = g.Wait()

	var failed []*TransformFault
	for _, f := range faults {
		if f != nil {
			failed = append(failed, f)
		}
	}
	if len(failed) > 0 {
		return nil, &AggregateFailure{Faults: failed}
	}
	return partials, nil
}

// guard runs work and hands any fault to fail. A panic is recovered; a
// runtime.Goexit cannot be stopped, so fail is called from the deferred
// function before the goroutine unwinds and guard never returns. ok is true
// only when work finished without a fault.
func guard[I, P any](work chunkFunc[I, P], chunk, offset int, items []I, fail func(*TransformFault)) (p P, ok bool) {
	cur := offset
	done := false
	defer func() {
		r := recover()
		switch {
		case r != nil:
			var zero P
			p, ok = zero, false
			fail(recoverFault(chunk, cur, r))
		case !done:
			fail(exitFault(chunk, cur))
		}
	}()
	p, fault := work(chunk, &cur, items)
	done = true
	if fault != nil {
		fail(fault)
		return p, false
	}
	return p, true
}

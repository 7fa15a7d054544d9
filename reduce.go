package chunkmap

// a ReduceFunc is a function that takes two values of T and returns the "sum" of those values.
// For example, if T is int, a ReduceFunc could be a function that adds two integers together.
// If this function returns an error, the chunk it was reducing fails.
type ReduceFunc[T any] func(T, T) (T, error)

// Reduce folds v into a single value with f. Each chunk is folded left to
// right on its own goroutine, then the chunk partials are folded left to right
// on the calling goroutine, so f only needs to be associative.
// An empty slice yields the zero value and a single item is returned as is.
// Faults are collected exactly as in Map.
func Reduce[T any](v []T, f ReduceFunc[T], opts Options) (T, error) {
	var zero T
	run := newRun()
	parts, err := dispatch(v, opts, run, func(chunk int, cursor *int, items []T) (T, *TransformFault) {
		return fold(chunk, cursor, items, f)
	})
	if err != nil {
		return zero, err
	}
	if len(parts) == 0 {
		return zero, nil
	}

	acc, fault := join(parts, opts.Threshold(), f)
	if fault != nil {
		opts.reporterOrNop().ChunkFailed(run, fault)
		return zero, &AggregateFailure{Faults: []*TransformFault{fault}}
	}
	return acc, nil
}

// join folds the chunk partials on the calling goroutine. A failure while
// folding in partial i is attributed to chunk i and its first element.
func join[T any](parts []T, threshold int, f ReduceFunc[T]) (acc T, fault *TransformFault) {
	i := 0
	defer func() {
		if r := recover(); r != nil {
			fault = recoverFault(i, i*threshold, r)
		}
	}()
	acc = parts[0]
	for i = 1; i < len(parts); i++ {
		res, err := f(acc, parts[i])
		if err != nil {
			return acc, errorFault(i, i*threshold, err)
		}
		acc = res
	}
	return acc, nil
}

// fold reduces one chunk from left to right.
func fold[T any](chunk int, cursor *int, items []T, f ReduceFunc[T]) (T, *TransformFault) {
	var zero T
	acc := items[0]
	for _, item := range items[1:] {
		*cursor++
		res, err := f(acc, item)
		if err != nil {
			return zero, errorFault(chunk, *cursor, err)
		}
		acc = res
	}
	return acc, nil
}

package chunkmap

// TransformFunc defines the type of function that can be applied to each item in the input slice.
// It takes an input of type I and returns an output of type O along with an error if any occurs.
// A returned error is a fault for the item's chunk, exactly like a panic.
type TransformFunc[I any, O any] func(I) (O, error)

// Map applies f to every item of v and returns the results in input order.
// v is split into chunks of opts.Threshold() items and each chunk is
// transformed on its own goroutine; inputs no larger than the threshold are
// transformed on the calling goroutine. A panic in f stops that item's chunk
// only. Map waits for every chunk, then returns either the full result or an
// *AggregateFailure naming every chunk that panicked.
func Map[I any, O any](v []I, f func(I) O, opts Options) ([]O, error) {
	return TryMap(v, func(item I) (O, error) { return f(item), nil }, opts)
}

// TryMap is Map for transforms that can fail. An error returned by f is
// collected the same way as a panic.
func TryMap[I any, O any](v []I, f TransformFunc[I, O], opts Options) ([]O, error) {
	parts, err := dispatch(v, opts, newRun(), func(chunk int, cursor *int, items []I) ([]O, *TransformFault) {
		out := make([]O, 0, len(items))
		for _, item := range items {
			res, err := f(item)
			if err != nil {
				return nil, errorFault(chunk, *cursor, err)
			}
			out = append(out, res)
			*cursor++
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]O, 0, len(v))
	for _, p := range parts {
		results = append(results, p...)
	}
	return results, nil
}

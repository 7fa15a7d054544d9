// Package chunkmap provides an order-preserving parallel map over slices.
// The input is split into fixed-size chunks, every chunk is transformed on its
// own goroutine, and the chunk results are joined back together in input order.
//
// CAVEATS:
//   - Inputs no larger than the threshold are transformed on the calling goroutine.
//   - One goroutine is started per chunk. There is no pool and no cancellation:
//     every chunk runs to completion (or to its first fault) before Map returns.
//   - A panic or error inside the transform is a fault. Faults never crash the
//     process; all of them are collected into an *AggregateFailure.
//   - The reduction function in Reduce should be associative. Order is preserved.
package chunkmap

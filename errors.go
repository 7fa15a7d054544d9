package chunkmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is wrapped by every *ConfigError.
var ErrInvalidConfiguration = errors.New("chunkmap: invalid configuration")

// ErrWorkerExited is carried by a fault whose transform ended the worker
// goroutine, for example with runtime.Goexit, instead of returning.
var ErrWorkerExited = errors.New("worker exited without returning")

// ConfigError reports an option value that cannot be used. Nothing has been
// dispatched when it is returned.
type ConfigError struct {
	Option string
	Value  int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chunkmap: invalid configuration: %s must be positive, got %d", e.Option, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// TransformFault describes the element that stopped a chunk.
type TransformFault struct {
	// Chunk is the index of the chunk, counted from zero in input order.
	Chunk int
	// Index is the position of the faulting element in the whole input.
	Index int
	// Detail is a human-readable description of the fault.
	Detail string
	// Location is "file:line (function)" of the panicking frame, or empty
	// when the transform returned an error.
	Location string
	// Err is the error returned by the transform, or a *PanicError.
	Err error
}

func (f *TransformFault) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "chunk %d: element %d: %s", f.Chunk, f.Index, f.Detail)
	if f.Location != "" {
		fmt.Fprintf(&b, " at %s", f.Location)
	}
	return b.String()
}

func (f *TransformFault) Unwrap() error { return f.Err }

// PanicError carries a value recovered from a panicking transform.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it was itself an error, such as a
// runtime.Error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// AggregateFailure is returned when one or more chunks faulted. It holds every
// fault observed, ordered by chunk.
type AggregateFailure struct {
	Faults []*TransformFault
}

func (a *AggregateFailure) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "chunkmap: %d chunk(s) failed", len(a.Faults))
	for _, f := range a.Faults {
		b.WriteString("; ")
		b.WriteString(f.Error())
	}
	return b.String()
}

func (a *AggregateFailure) Unwrap() []error {
	errs := make([]error, len(a.Faults))
	for i, f := range a.Faults {
		errs[i] = f
	}
	return errs
}

// Chunks returns the indices of the failed chunks in ascending order.
func (a *AggregateFailure) Chunks() []int {
	idx := make([]int, len(a.Faults))
	for i, f := range a.Faults {
		idx[i] = f.Chunk
	}
	return idx
}

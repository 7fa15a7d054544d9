package chunkmap

import "log"

// Reporter receives diagnostics from a running map. Every call made with the
// same Options shares the reporter, so implementations must be safe for
// concurrent use. A reporter must not terminate the process.
type Reporter interface {
	// ChunkDispatched is called on the calling goroutine just before a
	// worker is started for the chunk. It is not called on the sequential path.
	ChunkDispatched(run string, chunk, offset, size int)
	// ChunkFailed is called from the worker that observed the fault.
	ChunkFailed(run string, fault *TransformFault)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

func (NopReporter) ChunkDispatched(string, int, int, int) {}
func (NopReporter) ChunkFailed(string, *TransformFault)   {}

// ReporterFuncs adapts plain functions to a Reporter. Nil fields are skipped.
type ReporterFuncs struct {
	OnDispatch func(run string, chunk, offset, size int)
	OnFault    func(run string, fault *TransformFault)
}

func (r ReporterFuncs) ChunkDispatched(run string, chunk, offset, size int) {
	if r.OnDispatch != nil {
		r.OnDispatch(run, chunk, offset, size)
	}
}

func (r ReporterFuncs) ChunkFailed(run string, fault *TransformFault) {
	if r.OnFault != nil {
		r.OnFault(run, fault)
	}
}

// LogReporter writes one line per dispatched chunk and one per fault to a
// *log.Logger, which serializes concurrent writers.
type LogReporter struct {
	log *log.Logger
}

// NewLogReporter returns a LogReporter writing to l. Lines are prefixed with
// [DEBUG] or [ERROR].
func NewLogReporter(l *log.Logger) *LogReporter {
	return &LogReporter{log: l}
}

func (r *LogReporter) ChunkDispatched(run string, chunk, offset, size int) {
	r.log.Printf("[DEBUG] run=%s chunk=%d offset=%d size=%d dispatched", run, chunk, offset, size)
}

func (r *LogReporter) ChunkFailed(run string, fault *TransformFault) {
	r.log.Printf("[ERROR] run=%s %v", run, fault)
}

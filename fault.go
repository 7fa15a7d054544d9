package chunkmap

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// recoverFault turns a recovered panic value into a fault for the element at
// index. It must be called from the deferred function that called recover.
func recoverFault(chunk, index int, r any) *TransformFault {
	perr := &PanicError{Value: r, Stack: debug.Stack()}
	return &TransformFault{
		Chunk:    chunk,
		Index:    index,
		Detail:   fmt.Sprint(r),
		Location: panicLocation(),
		Err:      perr,
	}
}

func errorFault(chunk, index int, err error) *TransformFault {
	return &TransformFault{
		Chunk:  chunk,
		Index:  index,
		Detail: err.Error(),
		Err:    err,
	}
}

// exitFault describes a chunk whose goroutine was ended by runtime.Goexit
// while transforming the element at index.
func exitFault(chunk, index int) *TransformFault {
	return &TransformFault{
		Chunk:  chunk,
		Index:  index,
		Detail: ErrWorkerExited.Error(),
		Err:    ErrWorkerExited,
	}
}

// panicLocation returns the first frame below runtime.gopanic that is not
// part of the runtime, which is where the panic was raised.
func panicLocation() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	inPanic := false
	for {
		fr, more := frames.Next()
		if !inPanic {
			inPanic = fr.Function == "runtime.gopanic"
		} else if !strings.HasPrefix(fr.Function, "runtime.") {
			return fmt.Sprintf("%s:%d (%s)", fr.File, fr.Line, fr.Function)
		}
		if !more {
			return ""
		}
	}
}

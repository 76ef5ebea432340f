package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a PageError.
func (h *LogHandler) HandleError(err *PageError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[pagestate error] %s [%s] at %s: %v\n",
			err.Op, err.Kind, err.Timestamp.Format("15:04:05.000"), err.Err)
	} else {
		fmt.Fprintf(h.out(), "[pagestate error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(h.out(), "[pagestate panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(h.out(), "[pagestate panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(h.out(), "Stack trace:\n%s\n", err.StackTrace)
	}
}

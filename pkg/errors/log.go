package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is a Handler that writes one line per error.
//
// Out defaults to stderr. Full-screen backends should point it at a file,
// since anything written to the terminal corrupts the frame.
type LogHandler struct {
	// Verbose enables detailed output including kinds and stack traces.
	Verbose bool
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer

	mu sync.Mutex
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a ToolkitError.
func (h *LogHandler) HandleError(err *ToolkitError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[xiform error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "[xiform error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[xiform panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[xiform panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

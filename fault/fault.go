package fault

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sbl8/tensile/internal/gls"
)

// MsgLen is the capacity of a formatted failure message in bytes. Longer
// renderings are truncated and lose their location suffix.
const MsgLen = 2048

// assertLen caps the detail portion of an assertion message before it is
// embedded in the surrounding error text.
const assertLen = 1024

// Handler delivers a formatted failure message. A Handler must not return:
// it terminates the process, panics, or transfers control elsewhere. State a
// handler needs (a logger, an exit policy) is captured in its closure and
// replaced together with it on every Set call.
type Handler func(msg string)

var defaultErrorHandler Handler = builtinErrorHandler

var threadErrorHandler gls.Slot[Handler]

// builtinErrorHandler is the fallback installed at process start and
// restored by SetDefaultErrorHandler(nil).
func builtinErrorHandler(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

// SetThreadErrorHandler installs an error handler visible only to the
// calling goroutine. A nil handler clears the override, reverting the
// goroutine to the process default.
func SetThreadErrorHandler(h Handler) {
	if h == nil {
		threadErrorHandler.Clear()
		return
	}
	threadErrorHandler.Set(h)
}

// SetDefaultErrorHandler installs the process-wide error handler. A nil
// handler restores the built-in fallback, which writes "Error: <msg>" to
// stderr and exits with status 1. Configure before spawning kernels;
// concurrent writers race with last write winning.
func SetDefaultErrorHandler(h Handler) {
	if h == nil {
		h = builtinErrorHandler
	}
	defaultErrorHandler = h
}

// Errorf formats a failure message, appends the caller's source location
// when room remains, and dispatches it to the calling goroutine's override
// or the process default. It never returns.
func Errorf(format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	dispatchError(file, line, format, args...)
}

// Assertf reports a failed assertion. expr is the source text of the
// expression that did not hold; the formatted detail is embedded after it.
// It never returns.
func Assertf(expr string, format string, args ...any) {
	detail := fmt.Sprintf(format, args...)
	if len(detail) > assertLen {
		detail = detail[:assertLen]
	}
	_, file, line, _ := runtime.Caller(1)
	dispatchError(file, line, "Assertion `%s' failed. %s", expr, detail)
}

func dispatchError(file string, line int, format string, args ...any) {
	msg := formatMsg(file, line, format, args...)
	if h, ok := threadErrorHandler.Get(); ok {
		h(msg)
	} else {
		defaultErrorHandler(msg)
	}
	// Handlers must not return. Enforce the contract so no call site ever
	// runs code past a failed check.
	panic("fault: error handler returned: " + msg)
}

// formatMsg renders format into a MsgLen-capped message. The location suffix
// is appended only when the body leaves room, and is itself clipped to the
// remaining capacity, so the result never exceeds MsgLen bytes.
func formatMsg(file string, line int, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if len(msg) >= MsgLen {
		return msg[:MsgLen]
	}
	suffix := fmt.Sprintf(" at %s:%d", file, line)
	if len(msg)+len(suffix) > MsgLen {
		suffix = suffix[:MsgLen-len(msg)]
	}
	return msg + suffix
}

package fault

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sbl8/tensile/internal/gls"
)

// ArgHandler delivers an invalid-argument failure: the 1-based index of the
// offending argument plus the formatted message. Like Handler, it must not
// return.
type ArgHandler func(argNumber int, msg string)

var defaultArgHandler ArgHandler = builtinArgHandler

var threadArgHandler gls.Slot[ArgHandler]

func builtinArgHandler(argNumber int, msg string) {
	if msg != "" {
		fmt.Fprintf(os.Stderr, "Invalid argument %d: %s\n", argNumber, msg)
	} else {
		fmt.Fprintf(os.Stderr, "Invalid argument %d\n", argNumber)
	}
	os.Exit(1)
}

// SetThreadArgHandler installs an argument handler visible only to the
// calling goroutine. A nil handler clears the override.
func SetThreadArgHandler(h ArgHandler) {
	if h == nil {
		threadArgHandler.Clear()
		return
	}
	threadArgHandler.Set(h)
}

// SetDefaultArgHandler installs the process-wide argument handler. A nil
// handler restores the built-in fallback, which writes
// "Invalid argument <n>: <msg>" to stderr and exits with status 1.
func SetDefaultArgHandler(h ArgHandler) {
	if h == nil {
		h = builtinArgHandler
	}
	defaultArgHandler = h
}

// CheckArg validates an argument precondition. When cond holds it does
// nothing and returns normally. When cond is false it formats the message
// exactly like Errorf (same cap, same location suffix) and dispatches it,
// with argNumber, to the calling goroutine's argument handler or the process
// default; that branch never returns.
func CheckArg(cond bool, argNumber int, format string, args ...any) {
	if cond {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	msg := formatMsg(file, line, format, args...)
	if h, ok := threadArgHandler.Get(); ok {
		h(argNumber, msg)
	} else {
		defaultArgHandler(argNumber, msg)
	}
	panic(fmt.Sprintf("fault: argument handler returned: invalid argument %d: %s", argNumber, msg))
}

package logging

import (
	"fmt"
	"os"
)

// Assert checks an internal invariant of the compiler.  If the condition is
// false, it panics with an *InternalError carrying the formatted message.
// Internal invariants protect data produced by the compiler itself: a failed
// assertion is always a compiler bug, never a problem with user code.  When
// the compiler is built with the `noassert` tag, assertions are not checked.
func Assert(cond bool, message string, args ...interface{}) {
	if assertionsEnabled && !cond {
		panic(&InternalError{Message: fmt.Sprintf(message, args...)})
	}
}

// AssertionsEnabled reports whether internal invariants are being checked
func AssertionsEnabled() bool {
	return assertionsEnabled
}

// CatchInternalErrors recovers from a panic caused by a failed internal
// invariant, displays it, and exits.  Any other panic is propagated.
// NB: This function must ALWAYS be deferred.
func CatchInternalErrors() {
	if x := recover(); x != nil {
		if ierr, ok := x.(*InternalError); ok {
			displayInternalError(ierr.Message)
			os.Exit(-1)
		}

		panic(x)
	}
}

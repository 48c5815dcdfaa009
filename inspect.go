// inspect.go — stdlib-aligned inspection helpers for xgx-fault core.
//
// Scope:
//   - Zero-policy helpers for catch sites that want more structure than the
//     rendered string: the message stack, the caller tag, the backtrace.
//   - Interop-first: use errors.As so traversal works through wrapping layers
//     (both single Unwrap() error and multi Unwrap() []error forms).
package xgxfault

import "errors"

// AsFault extracts the *Error from anywhere in err's unwrap chain.
func AsFault(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsFault reports whether err is (or wraps) an xgx fault.
func IsFault(err error) bool {
	_, ok := AsFault(err)
	return ok
}

// MessageStackOf returns the fault's message stack (oldest first), or nil
// when err carries no fault.
func MessageStackOf(err error) []string {
	if e, ok := AsFault(err); ok {
		return e.MessageStack()
	}
	return nil
}

// CallerOf returns the first caller tag found along err's chain, or nil.
func CallerOf(err error) any {
	if e, ok := AsFault(err); ok {
		return e.Caller()
	}
	return nil
}

// BacktraceOf returns the fault's captured backtrace, or "" when err carries
// no fault or the fault captured none.
func BacktraceOf(err error) string {
	if e, ok := AsFault(err); ok {
		return e.Backtrace()
	}
	return ""
}

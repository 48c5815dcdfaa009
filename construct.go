// construct.go — raise-site and boundary helpers for xgx-fault core.
//
// These are the call-site surface of the package: each helper captures its
// caller's source location itself (Go's stand-in for macro __func__/__FILE__/
// __LINE__ capture) and returns a fault for the caller to propagate. Error
// returns are the propagation mechanism; nothing here panics.
//
// Interop:
//   - Annotate works on ANY error. Foreign errors are wrapped once (their
//     Error() string becomes the original cause entry, the value itself is
//     retained for errors.Is/As) and then annotated like native faults.
package xgxfault

// Err composes args into a message, captures the calling site, and returns a
// fault embedding that location. This is the standard raise path used by
// runtime operators:
//
//	return xgxfault.Err("expected rank ", want, ", got ", got)
func Err(args ...any) *Error {
	return LocatedError(HereSkip(1), Str(args...))
}

// ErrWithBacktrace is Err plus a captured backtrace — the opt-in expensive
// path for faults that will be debugged post-mortem rather than handled.
func ErrWithBacktrace(args ...any) *Error {
	e := LocatedError(HereSkip(1), Str(args...))
	e.backtrace = CaptureBacktrace(1)
	e.render()
	return e
}

// ErrWithCaller is Err plus an opaque caller tag for out-of-band correlation.
func ErrWithCaller(caller any, args ...any) *Error {
	e := LocatedError(HereSkip(1), Str(args...))
	e.caller = caller
	return e
}

// Annotate appends composed context to a propagating error.
//
//   - nil → nil (safe in unconditional return paths)
//   - *Error → AppendMessage(Str(args...)); the SAME value is returned so the
//     message stack keeps growing in propagation order
//   - any other error → wrapped into a fault whose original cause entry is
//     err.Error() (err retained for errors.Is/As), then annotated
func Annotate(err error, args ...any) error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if !ok {
		e = NewError(err.Error(), "", nil)
		e.cause = err
	}
	if len(args) > 0 {
		e.AppendMessage(Str(args...))
	}
	return e
}

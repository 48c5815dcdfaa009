// check.go — assertion and validation helpers for xgx-fault core.
//
// Two message templates, one fault kind:
//   - Assert/Assertm state the failed condition, the raise site, and a
//     bug-report request — internal invariants; a failure is OUR bug.
//   - Check carries exactly the caller-composed message — user-facing input
//     validation; a failure is the CALLER's input.
//
// The distinction is presentational, not structural: all three return *Error.
//
// Go cannot stringize expressions, so the condition text is an explicit
// argument: Assert(n >= 0, "n >= 0"). Helpers return nil on success so call
// sites stay single-expression:
//
//	if err := xgxfault.Assert(len(dims) > 0, "len(dims) > 0"); err != nil {
//	    return err
//	}
package xgxfault

// Assert returns nil when cond holds; otherwise a fault whose message states
// the literal condition text, the raise site, and a bug-report request.
// The condition is evaluated exactly once, by the caller.
func Assert(cond bool, condition string) error {
	if cond {
		return nil
	}
	loc := HereSkip(1)
	return AssertionError(StripBasename(loc.File), loc.Line, condition, "", "", nil)
}

// Assertm is Assert with additional composed context appended to the message.
func Assertm(cond bool, condition string, args ...any) error {
	if cond {
		return nil
	}
	loc := HereSkip(1)
	return AssertionError(StripBasename(loc.File), loc.Line, condition, Str(args...), "", nil)
}

// Check returns nil when cond holds; otherwise a fault whose message is
// EXACTLY Str(args...) — no condition text, no file/line boilerplate in the
// message body. Intended for validating caller-supplied input, where the
// rendered text is shown to users as-is.
func Check(cond bool, args ...any) error {
	if cond {
		return nil
	}
	return NewError(Str(args...), "", nil)
}

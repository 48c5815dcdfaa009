// error.go — the fault type for xgx-fault core.
//
// Scope (tiny core):
//   - One concrete error kind: a composed, annotatable fault with an optional
//     backtrace. Assertion failures and checks are NOT distinct kinds; they
//     are faults with a particular message template (see check.go).
//   - The message stack grows by appending as the fault propagates outward;
//     ordering is call order, oldest first, and the rendered string depends on
//     that order being preserved.
//   - Both rendered strings are cached eagerly: recomputed on every
//     AppendMessage, never on read. Error() therefore allocates nothing and
//     returns byte-identical strings between mutations.
//
// Interop:
//   - *Error implements error. Annotate (construct.go) preserves foreign
//     causes, and Unwrap exposes them so errors.Is/As traverse the chain.
//
// Notes:
//   - Unlike sibling module xgx-error, the fluent/copy-on-write model does not
//     apply here: AppendMessage mutates in place. A fault in flight has a
//     single owner (the propagating call chain), so sharing is not a concern,
//     and in-place growth keeps annotation allocation-minimal.
package xgxfault

import "strings"

// backtraceBanner introduces the backtrace section of the full message.
const backtraceBanner = "\nbacktrace:\n"

// Error is the primary xgx fault type.
//
// It carries an ordered message stack (never empty after construction), an
// opaque backtrace string fixed at construction, and an opaque caller tag for
// out-of-band correlation. Use Err/ErrWithBacktrace/Assert/Check (construct.go,
// check.go) at raise sites; use Annotate at propagation boundaries.
type Error struct {
	msgStack  []string
	backtrace string

	// Derived from msgStack and backtrace, cached so Error() and
	// MessageWithoutBacktrace() return stable strings without re-rendering.
	msg                 string
	msgWithoutBacktrace string

	// caller is a debugging trick: stash a relevant identity here at
	// construction and compare it against values you have on hand when the
	// fault surfaces. Never dereferenced or interpreted by the core.
	caller any

	// cause is set only when a foreign error is wrapped (Annotate); it exists
	// purely for errors.Is/As traversal.
	cause error
}

// NewError constructs a fault from a raw message, a pre-captured backtrace
// (opaque; may be empty), and an optional caller tag (may be nil).
func NewError(msg, backtrace string, caller any) *Error {
	e := &Error{
		msgStack:  []string{msg},
		backtrace: backtrace,
		caller:    caller,
	}
	e.render()
	return e
}

// LocatedError constructs a fault whose message embeds the given source
// location textually (via SourceLocation.String, so the file shows as a
// basename). No backtrace is captured; this is the cheap raise path.
func LocatedError(loc SourceLocation, msg string) *Error {
	return NewError(Str(msg, " (", loc, ")"), "", nil)
}

// AssertionError constructs a fault for a failed internal invariant. The
// message states the literal condition text, the raise site, and directs the
// user to file a bug report; msg, when non-empty, is appended verbatim.
func AssertionError(file string, line uint32, condition, msg, backtrace string, caller any) *Error {
	head := Str(condition, " ASSERT FAILED at ", file, ":", line, ", please report a bug to xgx.")
	if msg != "" {
		head = Str(head, " ", msg)
	}
	return NewError(head, backtrace, caller)
}

// AppendMessage pushes msg onto the end of the message stack and eagerly
// re-renders both cached strings. Called zero or more times by intermediate
// frames that want to add context without discarding the original cause.
func (e *Error) AppendMessage(msg string) {
	e.msgStack = append(e.msgStack, msg)
	e.render()
}

// render recomputes both cached strings from msgStack and backtrace.
// The first stack entry appears bare; every later entry is wrapped as
// " (" + entry + ")" so the final string reads cause-first with outer context
// trailing in parentheses.
func (e *Error) render() {
	var sb strings.Builder
	for i, m := range e.msgStack {
		if i == 0 {
			sb.WriteString(m)
			continue
		}
		sb.WriteString(" (")
		sb.WriteString(m)
		sb.WriteString(")")
	}
	e.msgWithoutBacktrace = sb.String()
	if e.backtrace == "" {
		e.msg = e.msgWithoutBacktrace
		return
	}
	e.msg = e.msgWithoutBacktrace + backtraceBanner + e.backtrace
}

// Error returns the complete rendered fault string, including the backtrace
// section when one was captured. The returned string is cached: repeated
// calls without an intervening AppendMessage are identical and allocation-free.
func (e *Error) Error() string { return e.msg }

// MessageWithoutBacktrace returns the rendered message stack only — the terse
// variant for host layers that must not show a raw trace to end users.
func (e *Error) MessageWithoutBacktrace() string { return e.msgWithoutBacktrace }

// MessageStack returns a copy of the message stack, oldest first.
func (e *Error) MessageStack() []string {
	out := make([]string, len(e.msgStack))
	copy(out, e.msgStack)
	return out
}

// Backtrace returns the opaque backtrace string captured at construction
// ("" when none was captured).
func (e *Error) Backtrace() string { return e.backtrace }

// Caller returns the opaque caller tag (nil when none was set).
func (e *Error) Caller() any { return e.caller }

// Unwrap returns the wrapped foreign cause, if any, for errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// doc.go — package documentation for xgx-fault
//
// Package xgxfault is the error-reporting and warning-dispatch core used by
// xgx numerics runtimes. It provides a single fault type carrying a growable
// message stack plus an optional backtrace and an opaque caller tag, a
// process-wide warning dispatcher with a replaceable handler, and the variadic
// string composer both rely on. It is designed to be:
//   - Cheap at the raise site (no backtrace unless explicitly requested)
//   - Informative post-mortem (message stack preserves outer-to-inner context)
//   - Policy-free (no logging/HTTP/retry rules in core)
//
// # Message Semantics
//
// A fault starts with exactly one message and grows by APPENDING context as it
// propagates outward. xgxfault deliberately concatenates (unlike sibling
// module xgx-error, which keeps messages stable and pushes detail into
// structured fields): operators along the propagation path annotate the fault
// without discarding the original cause.
//
//   - AppendMessage(msg):
//     Push msg onto the message stack. The rendered string shows the first
//     entry bare and every later entry wrapped as " (" + entry + ")".
//   - Annotate(err, args...):
//     The boundary helper — append composed context to a fault, or wrap a
//     foreign error into one first.
//
// Typical pattern:
//
//	if err := kernel.Run(plan); err != nil {
//	    return xgxfault.Annotate(err, "while executing node ", node.ID)
//	}
//
// An original message "boom" annotated with "ctx" renders as "boom (ctx)".
//
// # When Are Backtraces Captured?
//
// Backtraces are captured deliberately to keep the common raise path cheap.
//
//	+---------------------------+-------------------+---------------------------+
//	| Constructor / Operation   | Captures trace?   | Rationale                 |
//	+---------------------------+-------------------+---------------------------+
//	| Err(args...)              | NO                | Hot path; location only   |
//	| ErrWithBacktrace(args...) | YES               | Opt-in expensive path     |
//	| NewError(msg, bt, caller) | caller-supplied   | Trace is an opaque string |
//	| Assert/Assertm/Check      | NO                | Condition text suffices   |
//	+---------------------------+-------------------+---------------------------+
//
// The backtrace is an opaque string fixed at construction; it is never
// regenerated or mutated afterwards.
//
// # Warnings
//
// Warn composes a message, captures the call site, and hands both to the
// process-wide warning handler — synchronously, exactly once per call, on the
// calling goroutine. The default handler prints one line to stderr. Replace it
// with SetWarningHandler during initialization only: the handler slot is a
// plain variable, not synchronized, and a replacement racing with Warn is
// undefined behavior by contract. This is a deliberate simplicity/performance
// tradeoff, not an oversight. Warnings are advisory: the dispatcher never
// fails the caller, and the default handler swallows its own write errors.
//
// # The Caller Tag
//
// Construction accepts an opaque, nullable identity value. Stash something
// recognizable there (an operator, a node) and compare it against values you
// have on hand when the fault surfaces — out-of-band correlation only. The tag
// is never dereferenced, owned, or interpreted by the core.
//
// # Interop
//
//   - *Error implements error; Error() returns the full rendered string
//     (message stack plus backtrace section) from a cache, so repeated calls
//     are allocation-free and stable.
//   - MessageWithoutBacktrace() is the terse variant for host layers that must
//     not show a raw trace to end users.
//   - Annotate preserves foreign causes; errors.Is/As traverse via Unwrap().
//   - %+v formatting renders the message stack entry by entry (see format.go).
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - Str — variadic composer
//   - Err / ErrWithBacktrace / Annotate
//   - Assert / Assertm / Check
//   - Warn / SetWarningHandler / CurrentWarningHandler / PrintWarning
//   - SourceLocation, Here / HereSkip, CaptureBacktrace
//
// See the package tests for runnable demonstrations.
package xgxfault

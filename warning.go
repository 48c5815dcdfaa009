// warning.go — process-wide warning dispatch for xgx-fault core.
//
// State model: one package-level handler slot, default PrintWarning. The slot
// is a plain variable — NOT synchronized. SetWarningHandler is an
// initialization-time operation; replacing the handler while other goroutines
// may call Warn is undefined behavior by contract. This is a deliberate
// simplicity/performance tradeoff (the read path pays nothing), not an
// oversight.
//
// Dispatch semantics: every Warn call produces exactly one synchronous handler
// invocation on the calling goroutine. No buffering, no deduplication, no
// rate limiting — warnings are advisory and must never fail or slow the
// caller beyond the handler's own work.
package xgxfault

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// WarningHandler receives every emitted warning with the capture site and the
// composed message text.
type WarningHandler func(loc SourceLocation, msg string)

// warningHandler is the process-wide slot. Write-once-then-read-many in
// well-behaved programs; see the file header for the race contract.
var warningHandler WarningHandler = PrintWarning

// warningPrefix colors the default handler's tag; fatih/color disables itself
// automatically when stderr is not a terminal (or NO_COLOR is set).
var warningPrefix = color.New(color.FgYellow, color.Bold)

// Warn composes args, captures the calling site, and dispatches to the
// current warning handler. Returns normally; never panics.
func Warn(args ...any) {
	warningHandler(HereSkip(1), Str(args...))
}

// WarnAt dispatches a pre-composed warning for an already-captured location.
// Intended for layers that batch or relocate diagnostics (e.g., a kernel
// scheduler reporting on behalf of the operator that enqueued the work).
func WarnAt(loc SourceLocation, msg string) {
	warningHandler(loc, msg)
}

// SetWarningHandler replaces the process-wide warning handler. Call during
// initialization only, before any concurrent warning traffic begins; a
// replacement racing with Warn is undefined behavior. A nil handler restores
// the default.
func SetWarningHandler(h WarningHandler) {
	if h == nil {
		h = PrintWarning
	}
	warningHandler = h
}

// CurrentWarningHandler returns the handler Warn currently dispatches to.
func CurrentWarningHandler() WarningHandler {
	return warningHandler
}

// PrintWarning is the default handler: one line to stderr containing the
// basename'd file, the line, and the message. Best-effort — a write failure
// is swallowed, because warnings must never crash the caller.
func PrintWarning(loc SourceLocation, msg string) {
	_, _ = warningPrefix.Fprint(os.Stderr, "warning:")
	_, _ = fmt.Fprintf(os.Stderr, " %s [%s:%d]\n", msg, StripBasename(loc.File), loc.Line)
}

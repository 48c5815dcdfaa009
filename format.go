// format.go — fmt.Formatter implementation for xgx-fault core.
//
// Behavior:
//
//	%s, %v   → the full cached string (Error()).
//	%+v      → verbose, structured multi-line format:
//	             msg[0]: <original cause>
//	             msg[1]: <first annotation>
//	             ...
//	             caller: <tag>            (only when set)
//	             cause: <recursively formatted with %+v>   (only when wrapped)
//	             backtrace:
//	               funcA file.go:123
//	               ...
//	%q       → quoted Error().
//
// Rationale:
//   - Keep core free of logging policy; only fmt formatting.
//   - %+v enumerates the message stack so annotation ORDER is inspectable,
//     which the joined one-line form deliberately flattens.
package xgxfault

import (
	"fmt"
	"io"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		e.formatConcise(s)
	case 's':
		e.formatConcise(s)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		e.formatConcise(s)
	}
}

// formatConcise writes the cached one-piece string (delegates to Error()).
func (e *Error) formatConcise(w io.Writer) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the structured multi-line representation.
func (e *Error) formatVerbose(w io.Writer) {
	for i, m := range e.msgStack {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "msg[%d]: %s", i, m)
	}
	if e.caller != nil {
		_, _ = fmt.Fprintf(w, "\ncaller: %v", e.caller)
	}
	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// Recurse with %+v so nested details render if available.
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}
	if e.backtrace != "" {
		_, _ = io.WriteString(w, "\nbacktrace:\n")
		_, _ = io.WriteString(w, e.backtrace)
	}
}

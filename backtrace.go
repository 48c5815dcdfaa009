// backtrace.go — opt-in backtrace capture for xgx-fault core.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Minimal policy: nothing here is automatic; faults capture a backtrace
//     only through ErrWithBacktrace or an explicit CaptureBacktrace call.
//   - Pragmatic performance: bounded depth, allocation only when capture is
//     actually requested.
//
// The Error type treats the backtrace as an opaque string fixed at
// construction; this file is the collaborator that produces that string.
package xgxfault

import (
	"runtime"
	"strings"
)

// Frame represents a single call site in a captured backtrace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture so exceptional paths stay cheap while still
// recording meaningful context.
const defaultMaxDepth = 64

// String renders the stack one frame per line as "function file:line",
// most recent first. An empty stack renders as "".
func (s Stack) String() string {
	if len(s) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, fr := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fr.Function)
		sb.WriteByte(' ')
		sb.WriteString(fr.File)
		sb.WriteByte(':')
		sb.WriteString(itoa(fr.Line))
	}
	return sb.String()
}

// itoa is a tiny non-negative int formatter; avoids pulling fmt into the
// capture path.
func itoa(n int) string {
	if n <= 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// CaptureBacktrace captures the current goroutine's stack, skipping 'skip'
// frames above the caller (skip=0 starts at the caller of CaptureBacktrace),
// and renders it to the opaque string form Error stores.
func CaptureBacktrace(skip int) string {
	return captureStack(skip+1, defaultMaxDepth).String()
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames
// beyond this function, resolved via CallersFrames so inlined calls appear.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureStack
//
// so skip=0 places the first recorded frame at captureStack's caller.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// location.go — call-site capture for xgx-fault core.
//
// Design:
//   - SourceLocation is a plain value (function, file, line) copied by value
//     into Error construction and warning dispatch. It is never persisted.
//   - Go has no __func__/__FILE__/__LINE__ symbols; Here/HereSkip capture the
//     location at runtime via runtime.Caller, which the call-site helpers
//     (Err, Warn, Assert, ...) invoke on behalf of their caller.
//   - File keeps the FULL path as reported by the runtime; basename stripping
//     happens only at display time (String, PrintWarning) so callers that need
//     the full path still have it.
package xgxfault

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// SourceLocation identifies a position in source code (for debugging).
type SourceLocation struct {
	Function string
	File     string
	Line     uint32
}

// String renders the location as "function at file:line" with the file
// reduced to its basename.
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s at %s:%d", l.Function, StripBasename(l.File), l.Line)
}

// Here captures the location of its caller.
func Here() SourceLocation {
	return HereSkip(1)
}

// HereSkip captures a location 'skip' frames above the caller of HereSkip
// (skip=0 is the caller itself). On capture failure it returns a zero-ish
// location rather than failing; this facility must never be the thing that
// errors.
func HereSkip(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return SourceLocation{Function: "unknown", File: "unknown", Line: 0}
	}
	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	if line < 0 {
		line = 0
	}
	return SourceLocation{Function: fn, File: file, Line: uint32(line)}
}

// StripBasename returns the final component of a path for display purposes.
func StripBasename(fullPath string) string {
	if fullPath == "" {
		return ""
	}
	return filepath.Base(fullPath)
}

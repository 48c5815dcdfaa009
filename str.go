// str.go — variadic string composer for xgx-fault core.
//
// Contract:
//   - Fold zero or more printable values into one string with NO separators;
//     callers supply spacing as literal arguments: Str("x=", x, " y=", y).
//   - Zero arguments → "".
//   - Fast paths for values that are already text (string, error,
//     fmt.Stringer) skip the fmt round-trip and return the text unchanged.
//
// Notes:
//   - Any value fmt can print is acceptable; there is no runtime failure mode.
//   - fmt.Fprint inserts a space only between adjacent non-string operands, so
//     multi-argument folds go through the builder one value at a time.
package xgxfault

import (
	"fmt"
	"strings"
)

// Str converts a list of printable values into a single concatenated string.
func Str(args ...any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		// Single-argument fast paths: already-text values pass through.
		return strOne(args[0])
	}
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(strOne(a))
	}
	return sb.String()
}

// strOne renders one value, preferring its native text form.
func strOne(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// construct_test.go — verification of raise-site helpers and Annotate.
package xgxfault

import (
	"errors"
	"strings"
	"testing"
)

func TestErr_ComposesAndLocates(t *testing.T) {
	t.Parallel()

	e := Err("expected rank ", 2, ", got ", 3)
	msg := e.Error()
	if !strings.Contains(msg, "expected rank 2, got 3") {
		t.Fatalf("composed message missing; got %q", msg)
	}
	if !strings.Contains(msg, "construct_test.go:") {
		t.Fatalf("raise site missing from message; got %q", msg)
	}
	if e.Backtrace() != "" {
		t.Fatalf("Err must not capture a backtrace")
	}
}

func TestErrWithBacktrace_CapturesTrace(t *testing.T) {
	t.Parallel()

	e := ErrWithBacktrace("boom")
	bt := e.Backtrace()
	if bt == "" {
		t.Fatalf("expected non-empty backtrace")
	}
	if !strings.Contains(bt, "TestErrWithBacktrace_CapturesTrace") {
		t.Fatalf("backtrace should start at the raise site; got:\n%s", bt)
	}
	if !strings.Contains(e.Error(), "\nbacktrace:\n") {
		t.Fatalf("full message must carry the backtrace section; got %q", e.Error())
	}
}

func TestErrWithCaller_TagAttached(t *testing.T) {
	t.Parallel()

	type kernel struct{ id int }
	k := &kernel{id: 7}
	e := ErrWithCaller(k, "boom")
	if e.Caller() != any(k) {
		t.Fatalf("caller tag not attached")
	}
}

func TestAnnotate_NilPassthrough(t *testing.T) {
	t.Parallel()

	if got := Annotate(nil, "ignored"); got != nil {
		t.Fatalf("Annotate(nil) must be nil; got %v", got)
	}
}

func TestAnnotate_NativeFault_AppendsInPlace(t *testing.T) {
	t.Parallel()

	e := NewError("boom", "", nil)
	got := Annotate(e, "while processing tensor ", "X")
	if got != error(e) {
		t.Fatalf("Annotate must return the same fault value")
	}
	if s := e.MessageWithoutBacktrace(); s != "boom (while processing tensor X)" {
		t.Fatalf("annotation join: got %q", s)
	}
}

func TestAnnotate_ForeignError_WrapsOnceAndUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	got := Annotate(cause, "while spilling shard ", 4)

	e, ok := got.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", got)
	}
	if s := e.MessageWithoutBacktrace(); s != "disk full (while spilling shard 4)" {
		t.Fatalf("wrapped annotation: got %q", s)
	}
	if !errors.Is(got, cause) {
		t.Fatalf("foreign cause must remain reachable via errors.Is")
	}

	// A second annotation keeps growing the SAME fault.
	got2 := Annotate(got, "phase two")
	if got2 != got {
		t.Fatalf("re-annotation must not re-wrap")
	}
	if s := e.MessageWithoutBacktrace(); s != "disk full (while spilling shard 4) (phase two)" {
		t.Fatalf("second annotation: got %q", s)
	}
}

func TestAnnotate_NoArgs_NoStackGrowth(t *testing.T) {
	t.Parallel()

	e := NewError("boom", "", nil)
	_ = Annotate(e)
	if n := len(e.MessageStack()); n != 1 {
		t.Fatalf("Annotate with no args must not grow the stack; len=%d", n)
	}
}

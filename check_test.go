// check_test.go — verification of Assert/Assertm/Check message templates.
package xgxfault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssert_TrueIsNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Assert(true, "1 == 1"))
}

func TestAssert_FalseCarriesConditionAndBugRequest(t *testing.T) {
	t.Parallel()

	err := Assert(false, "rank > 0")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "rank > 0")
	assert.Contains(t, msg, "ASSERT FAILED at ")
	assert.Contains(t, msg, "check_test.go:")
	assert.Contains(t, msg, "please report a bug")
}

func TestAssertm_AppendsComposedDetail(t *testing.T) {
	t.Parallel()

	err := Assertm(false, "rank > 0", "rank=", -1, " op=", "reshape")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "rank > 0")
	assert.Contains(t, msg, "please report a bug")
	assert.Contains(t, msg, "rank=-1 op=reshape")
}

func TestCheck_TrueIsNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Check(true, "never rendered"))
}

func TestCheck_MessageIsExactlyComposedArgs(t *testing.T) {
	t.Parallel()

	err := Check(false, "bad input: ", 42)
	require.Error(t, err)

	// No condition text, no file/line boilerplate in the body.
	assert.Equal(t, "bad input: 42", err.Error())

	e, ok := AsFault(err)
	require.True(t, ok)
	assert.Equal(t, "bad input: 42", e.MessageWithoutBacktrace())
	assert.Empty(t, e.Backtrace())
}

func TestCheck_FaultIsAnnotatable(t *testing.T) {
	t.Parallel()

	err := Check(false, "bad axis ", 3)
	err = Annotate(err, "while planning transpose")
	assert.Equal(t, "bad axis 3 (while planning transpose)", err.Error())
}

package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/keycalc/internal/ir"
)

// sampleResult is the result of pressing "2+3=".
func sampleResult() *Result {
	r := NewResult()
	r.Trace = []ir.Event{
		{Seq: 1, Action: ir.ActionDigit, Value: "2", Display: "2"},
		{Seq: 2, Action: ir.ActionOperator, Value: "+", Display: "2"},
		{Seq: 3, Action: ir.ActionDigit, Value: "3", Display: "3"},
		{Seq: 4, Action: ir.ActionEquals, Display: "5"},
	}
	r.State = map[string]string{
		"display":          "5",
		"waiting":          "true",
		"pending_operator": "",
		"pending_operand":  "",
		"last_operator":    "+",
		"last_operand":     "3",
	}
	return r
}

func TestAssertFinalDisplay(t *testing.T) {
	r := sampleResult()
	assert.NoError(t, assertFinalDisplay(r, Assertion{Display: "5"}))

	err := assertFinalDisplay(r, Assertion{Display: "6"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Expected: display "6"`)
	assert.Contains(t, err.Error(), `Actual: display "5"`)
	assert.Contains(t, err.Error(), "[4] equals -> 5")
}

func TestResult_DisplayEmptyTrace(t *testing.T) {
	assert.Equal(t, "0", NewResult().Display())
}

func TestAssertFinalState(t *testing.T) {
	r := sampleResult()

	assert.NoError(t, assertFinalState(r, Assertion{Expect: map[string]string{
		"last_operator":    "+",
		"pending_operator": "",
	}}))

	err := assertFinalState(r, Assertion{Expect: map[string]string{"last_operand": "4"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `last_operand = "4"`)

	err = assertFinalState(r, Assertion{Expect: map[string]string{"memory": "0"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "memory" to exist`)
}

func TestAssertTraceContains(t *testing.T) {
	r := sampleResult()

	assert.NoError(t, assertTraceContains(r.Trace, Assertion{Action: "operator"}))
	assert.NoError(t, assertTraceContains(r.Trace, Assertion{Action: "operator", Value: "+"}))

	err := assertTraceContains(r.Trace, Assertion{Action: "operator", Value: "×"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operator(×)")

	assert.Error(t, assertTraceContains(r.Trace, Assertion{Action: "clear"}))
}

func TestAssertTraceCount(t *testing.T) {
	r := sampleResult()

	assert.NoError(t, assertTraceCount(r.Trace, Assertion{Action: "digit", Count: 2}))
	assert.NoError(t, assertTraceCount(r.Trace, Assertion{Action: "digit", Value: "3", Count: 1}))
	assert.NoError(t, assertTraceCount(r.Trace, Assertion{Action: "clear", Count: 0}))

	err := assertTraceCount(r.Trace, Assertion{Action: "equals", Count: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 occurrences")
}

func TestAssertTraceOrder(t *testing.T) {
	r := sampleResult()

	tests := []struct {
		name    string
		actions []string
		ok      bool
	}{
		{"full trace", []string{"digit", "operator", "digit", "equals"}, true},
		{"with gaps", []string{"digit", "equals"}, true},
		{"repeated kind", []string{"digit", "digit"}, true},
		{"too many repeats", []string{"digit", "digit", "digit"}, false},
		{"wrong order", []string{"equals", "operator"}, false},
		{"absent kind", []string{"clear"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertTraceOrder(r.Trace, Assertion{Actions: tt.actions})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEvaluateAssertions(t *testing.T) {
	r := sampleResult()

	errs := EvaluateAssertions(r, []Assertion{
		{Type: AssertFinalDisplay, Display: "5"},
		{Type: AssertTraceCount, Action: "operator", Count: 3},
		{Type: "trace_sum"},
	})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "trace_count")
	assert.Contains(t, errs[1], `unknown assertion type "trace_sum"`)
}

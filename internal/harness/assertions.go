package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/keycalc/internal/ir"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string     // assertion type
	Expected string     // expected outcome
	Actual   string     // actual outcome
	Trace    []ir.Event // full trace for context; nil for state assertions
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s -> %s\n", event.Seq, eventLabel(event), event.Display)
		}
	}
	return buf.String()
}

func eventLabel(e ir.Event) string {
	return ir.Action{Kind: e.Action, Value: e.Value}.String()
}

// matches reports whether event has the given kind and, if value is set,
// the given value.
func matches(event ir.Event, kind, value string) bool {
	return string(event.Action) == kind && (value == "" || event.Value == value)
}

func describe(kind, value string) string {
	return ir.Action{Kind: ir.ActionKind(kind), Value: value}.String()
}

func assertFinalDisplay(result *Result, assertion Assertion) error {
	if got := result.Display(); got != assertion.Display {
		return &AssertionError{
			Type:     AssertFinalDisplay,
			Expected: fmt.Sprintf("display %q", assertion.Display),
			Actual:   fmt.Sprintf("display %q", got),
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertFinalState compares the listed state fields. Fields not listed are
// not checked.
func assertFinalState(result *Result, assertion Assertion) error {
	keys := make([]string, 0, len(assertion.Expect))
	for k := range assertion.Expect {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		want := assertion.Expect[key]
		got, ok := result.State[key]
		if !ok {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("field %q to exist", key),
				Actual:   fmt.Sprintf("fields are %s", strings.Join(stateKeys(result.State), ", ")),
			}
		}
		if got != want {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("%s = %q", key, want),
				Actual:   fmt.Sprintf("%s = %q", key, got),
			}
		}
	}
	return nil
}

func stateKeys(state map[string]string) []string {
	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func assertTraceContains(trace []ir.Event, assertion Assertion) error {
	for _, event := range trace {
		if matches(event, assertion.Action, assertion.Value) {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: fmt.Sprintf("action %s", describe(assertion.Action, assertion.Value)),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

func assertTraceCount(trace []ir.Event, assertion Assertion) error {
	count := 0
	for _, event := range trace {
		if matches(event, assertion.Action, assertion.Value) {
			count++
		}
	}
	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d occurrences of %s", assertion.Count, describe(assertion.Action, assertion.Value)),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertTraceOrder checks that the listed actions occur as a subsequence of
// the trace. Repeated kinds must occur that many times.
func assertTraceOrder(trace []ir.Event, assertion Assertion) error {
	next := 0
	for _, event := range trace {
		if next == len(assertion.Actions) {
			break
		}
		if string(event.Action) == assertion.Actions[next] {
			next++
		}
	}
	if next < len(assertion.Actions) {
		return &AssertionError{
			Type:     AssertTraceOrder,
			Expected: fmt.Sprintf("actions in order: %v", assertion.Actions),
			Actual:   fmt.Sprintf("no %s after the first %d matched", assertion.Actions[next], next),
			Trace:    trace,
		}
	}
	return nil
}

// EvaluateAssertions evaluates every assertion against result and returns
// the messages of those that fail.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertFinalDisplay:
			err = assertFinalDisplay(result, assertion)
		case AssertFinalState:
			err = assertFinalState(result, assertion)
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, assertion)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, assertion)
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}
	return errors
}

// Package harness replays calculator scenarios and checks their traces.
//
// # Scenario Format
//
// Scenarios are YAML documents:
//
//	name: chained_operators
//	description: "Operators fold left to right"
//	session: test-session-chain
//	steps:
//	  - press: "2+3*4="
//	    expect: "20"
//	  - key: Backspace
//	    ctrl: true
//	    expect: "0"
//	  - action: operator
//	    value: "÷"
//	assertions:
//	  - type: final_display
//	    display: "0"
//	  - type: trace_count
//	    action: equals
//	    count: 1
//
// Each step presses keys in exactly one way:
//
//   - press: a key string, tokenized by keypad.Tokenize
//   - key: one keyboard key with optional ctrl/meta, via keypad.FromKey
//   - action: one keypad button with optional value, via keypad.FromButton
//
// expect, when present, is the display required after the step.
//
// # Assertion Types
//
//   - final_display: the display after the last step
//   - final_state: a subset of engine.State.Fields after the last step
//   - trace_contains: some event has the action (and value, if given)
//   - trace_count: exactly count events have the action (and value)
//   - trace_order: the listed actions occur in order, not necessarily adjacent
//
// # Deterministic Testing
//
// Every run uses a fresh session with testutil.DeterministicClock and a
// fixed session token (the scenario's session, or
// testutil.DefaultSessionToken), so the same scenario always yields the
// same canonical trace. RunWithGolden compares that trace against
// testdata/golden/<name>.golden.
package harness

// Package engine implements the calculator state machine.
//
// The engine turns discrete user actions (digit presses, operator presses,
// equals, clear, ...) into a display string. It has no I/O and no
// concurrency: every method is an immediate mutation of in-memory state and
// callers must serialise calls into a single Engine.
//
// STATE:
//
// The engine holds the current display, an optional pending operation
// (left operand + operator awaiting a right operand), the waiting-for-operand
// flag, and an optional record of the last completed operation used for
// repeated equals. Pending and last operations are pointers to a single
// operation value, so an operator never exists without its operand.
//
// EVALUATION:
//
// Operators apply strictly left to right with no precedence:
//
//	2 + 3 × 4 =   displays 20
//
// Pressing an operator while a pending operation exists and a new operand
// was typed folds the pending operation first. Pressing equals with no
// pending operation re-applies the last operator and right operand to the
// displayed value:
//
//	2 + 3 =   5
//	=         8
//	=         11
//
// ERRORS:
//
// Invalid results (division by zero, square root of a negative number,
// overflow, an unparsable display) never surface as Go errors. The display
// becomes "Error" and the next digit starts a fresh number.
package engine

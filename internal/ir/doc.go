// Package ir provides the shared action and trace types for keycalc.
//
// This package contains value types and their canonical serialization only.
// All other internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Actions are plain values (kind + optional value) so adapters can build
//     them from keys, button names or scenario files
//   - Trace events carry display text, never floats
//   - All JSON tags use snake_case
//   - Logical clocks (seq) only, never wall-clock timestamps
package ir

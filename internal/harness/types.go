package harness

import "github.com/roach88/keycalc/internal/ir"

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every step expectation and assertion held.
	Pass bool `json:"pass"`

	// Session is the token the run used.
	Session string `json:"session"`

	// Trace is every applied action in order.
	Trace []ir.Event `json:"trace"`

	// State is engine.State.Fields after the last step.
	State map[string]string `json:"state"`

	// Digest fingerprints Trace (ir.TraceDigest).
	Digest string `json:"digest"`

	// Errors holds failed expectations and assertions. Empty if Pass.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []ir.Event{},
		State:  map[string]string{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Display returns the display after the last event, or "0" for an empty
// trace.
func (r *Result) Display() string {
	if len(r.Trace) == 0 {
		return "0"
	}
	return r.Trace[len(r.Trace)-1].Display
}

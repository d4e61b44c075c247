package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/keycalc/internal/ir"
	"github.com/roach88/keycalc/internal/session"
	"github.com/roach88/keycalc/internal/testutil"
)

// Harness runs one scenario against a fresh session.
type Harness struct {
	session *session.Session
	clock   *testutil.DeterministicClock
	logger  *slog.Logger
}

// Run executes a scenario and returns its result.
//
// A step that cannot be resolved to actions, or an action the session
// rejects, is a scenario error and is returned as err. Display
// expectations and assertions that do not hold are recorded in
// Result.Errors instead.
func Run(scenario *Scenario) (*Result, error) {
	clock := testutil.NewDeterministicClock()
	tokens := testutil.NewFixedSessionGenerator(scenario.Session)

	h := &Harness{
		session: session.New(tokens.Generate(), clock),
		clock:   clock,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	result := NewResult()
	result.Session = h.session.Token()

	for i, step := range scenario.Steps {
		if err := h.executeStep(i, step, result); err != nil {
			return nil, err
		}
	}

	result.Trace = h.session.Events()
	result.State = h.session.State().Fields()

	digest, err := ir.TraceDigest(result.Trace)
	if err != nil {
		return nil, fmt.Errorf("failed to digest trace: %w", err)
	}
	result.Digest = digest

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"events", h.clock.Current(),
		"pass", result.Pass,
	)
	return result, nil
}

// executeStep applies one step and checks its display expectation.
func (h *Harness) executeStep(i int, step Step, result *Result) error {
	actions, err := step.Actions()
	if err != nil {
		return fmt.Errorf("step %d: %w", i, err)
	}

	if _, err := h.session.ApplyAll(actions); err != nil {
		return fmt.Errorf("step %d: %w", i, err)
	}

	display := h.session.Display()
	if step.Expect != "" && display != step.Expect {
		result.AddError(fmt.Sprintf("step %d: expected display %q, got %q", i, step.Expect, display))
	}

	h.logger.Debug("step completed",
		"step", i,
		"actions", len(actions),
		"display", display,
	)
	return nil
}

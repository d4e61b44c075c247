package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/keycalc/internal/ir"
)

// Snapshot renders a result's trace as canonical JSON, the golden file
// format.
func Snapshot(name string, result *Result) ([]byte, error) {
	snapshot := ir.TraceSnapshot{
		Name:    name,
		Session: result.Session,
		Trace:   result.Trace,
	}
	return snapshot.MarshalCanonical()
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/<scenario.Name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against the golden file
// for name.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	traceJSON, err := Snapshot(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, traceJSON)
	return nil
}

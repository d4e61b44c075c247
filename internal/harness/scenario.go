package harness

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/roach88/keycalc/internal/ir"
	"github.com/roach88/keycalc/internal/keypad"
)

// Scenario is one scripted calculator session with assertions on its
// outcome.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description says what the scenario checks.
	Description string `yaml:"description"`

	// Session is an optional fixed session token. Empty means
	// testutil.DefaultSessionToken.
	Session string `yaml:"session,omitempty"`

	// Steps are applied in order to a single session.
	Steps []Step `yaml:"steps"`

	// Assertions are evaluated after the last step.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one group of key presses. Exactly one of Press, Key or Action is
// set.
type Step struct {
	Press string `yaml:"press,omitempty"`

	Key  string `yaml:"key,omitempty"`
	Ctrl bool   `yaml:"ctrl,omitempty"`
	Meta bool   `yaml:"meta,omitempty"`

	Action string `yaml:"action,omitempty"`
	Value  string `yaml:"value,omitempty"`

	// Expect is the display required after the step. Empty skips the check.
	Expect string `yaml:"expect,omitempty"`
}

// Assertion checks the trace or final state of a run.
type Assertion struct {
	Type string `yaml:"type"`

	// Display is the expected final display (final_display).
	Display string `yaml:"display,omitempty"`

	// Expect holds expected state fields (final_state). Subset match.
	Expect map[string]string `yaml:"expect,omitempty"`

	// Action and Value select events (trace_contains, trace_count).
	// An empty Value matches any value.
	Action string `yaml:"action,omitempty"`
	Value  string `yaml:"value,omitempty"`

	// Count is the exact number of matching events (trace_count).
	Count int `yaml:"count,omitempty"`

	// Actions is the expected order of action kinds (trace_order).
	Actions []string `yaml:"actions,omitempty"`
}

// Assertion type constants.
const (
	AssertFinalDisplay  = "final_display"
	AssertFinalState    = "final_state"
	AssertTraceContains = "trace_contains"
	AssertTraceCount    = "trace_count"
	AssertTraceOrder    = "trace_order"
)

// Actions resolves the step to the actions it presses.
func (s Step) Actions() ([]ir.Action, error) {
	set := 0
	for _, f := range []string{s.Press, s.Key, s.Action} {
		if f != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, fmt.Errorf("one of press, key or action is required")
	case set > 1:
		return nil, fmt.Errorf("only one of press, key or action may be set")
	}

	switch {
	case s.Press != "":
		return keypad.Tokenize(s.Press)
	case s.Key != "":
		a, ok := keypad.FromKey(keypad.Key{Name: s.Key, Ctrl: s.Ctrl, Meta: s.Meta})
		if !ok {
			return nil, fmt.Errorf("unknown key %q", s.Key)
		}
		return []ir.Action{a}, nil
	default:
		a, ok := keypad.FromButton(s.Action, s.Value)
		if !ok {
			return nil, fmt.Errorf("unknown button %q with value %q", s.Action, s.Value)
		}
		return []ir.Action{a}, nil
	}
}

// LoadScenario reads a scenario file from fs.
//
// The document is checked against the CUE scenario schema, then decoded
// strictly (unknown fields are errors) and every step is resolved to
// actions, so a scenario that loads can always be run.
func LoadScenario(fs afero.Fs, path string) (*Scenario, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks what the schema cannot: that every step maps to
// real key presses and every assertion names real actions.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if _, err := step.Actions(); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case AssertFinalDisplay:
		if a.Display == "" {
			return fmt.Errorf("assertions[%d]: display is required for final_display", index)
		}
	case AssertFinalState:
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	case AssertTraceContains, AssertTraceCount:
		if !ir.ActionKind(a.Action).Valid() {
			return fmt.Errorf("assertions[%d]: unknown action %q", index, a.Action)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertTraceOrder:
		if len(a.Actions) == 0 {
			return fmt.Errorf("assertions[%d]: actions list is required for trace_order", index)
		}
		for _, name := range a.Actions {
			if !ir.ActionKind(name).Valid() {
				return fmt.Errorf("assertions[%d]: unknown action %q", index, name)
			}
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

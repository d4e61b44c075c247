package harness

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.cue
var scenarioSchema string

// SchemaError lists the schema violations found in a scenario document.
type SchemaError struct {
	Violations []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return "scenario does not match schema: " + strings.Join(e.Violations, "; ")
}

// ValidateSchema checks a YAML scenario document against #Scenario.
// It returns a *SchemaError for schema violations and a plain error when
// the document is not YAML at all.
func ValidateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	v := def.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return schemaError(err)
	}
	return nil
}

func schemaError(err error) *SchemaError {
	var violations []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := strings.Join(e.Path(), "."); path != "" {
			msg = path + ": " + msg
		}
		violations = append(violations, msg)
	}
	if len(violations) == 0 {
		violations = []string{err.Error()}
	}
	return &SchemaError{Violations: violations}
}

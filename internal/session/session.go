// Package session runs one calculator engine on behalf of a presentation
// adapter.
//
// A Session owns an engine, a session token and a logical clock. Adapters
// (the CLI, the scenario harness) translate their input into ir.Actions and
// hand them to Apply, which dispatches to the matching engine method and
// records an ir.Event with the resulting display. Calls must be serialised;
// the engine underneath is not reentrant.
package session

import (
	"log/slog"
	"unicode/utf8"

	"github.com/roach88/keycalc/internal/engine"
	"github.com/roach88/keycalc/internal/ir"
)

// Session is one calculator plus its recorded trace.
type Session struct {
	token  string
	clock  Sequencer
	engine *engine.Engine
	events []ir.Event
}

// New creates a session with a fresh engine.
// A nil clock defaults to a new Clock.
func New(token string, clock Sequencer) *Session {
	if clock == nil {
		clock = NewClock()
	}
	return &Session{
		token:  token,
		clock:  clock,
		engine: engine.New(),
		events: []ir.Event{},
	}
}

// Token returns the session token.
func (s *Session) Token() string {
	return s.token
}

// Display returns the engine's current display.
func (s *Session) Display() string {
	return s.engine.Display()
}

// State returns a snapshot of the engine state.
func (s *Session) State() engine.State {
	return s.engine.State()
}

// Events returns the recorded trace in application order.
func (s *Session) Events() []ir.Event {
	return s.events
}

// Apply dispatches one action to the engine and records the resulting event.
// Malformed actions return an *ActionError and leave the engine untouched.
func (s *Session) Apply(a ir.Action) (ir.Event, error) {
	if err := s.dispatch(a); err != nil {
		slog.Debug("action rejected", "session", s.token, "action", a.String(), "error", err)
		return ir.Event{}, err
	}

	event := ir.Event{
		Seq:     s.clock.Next(),
		Action:  a.Kind,
		Value:   a.Value,
		Display: s.engine.Display(),
	}
	s.events = append(s.events, event)

	slog.Debug("action applied",
		"session", s.token,
		"seq", event.Seq,
		"action", a.String(),
		"display", event.Display,
	)
	return event, nil
}

// ApplyAll applies actions in order, stopping at the first error.
// Events for the actions applied before the error are returned.
func (s *Session) ApplyAll(actions []ir.Action) ([]ir.Event, error) {
	applied := make([]ir.Event, 0, len(actions))
	for _, a := range actions {
		event, err := s.Apply(a)
		if err != nil {
			return applied, err
		}
		applied = append(applied, event)
	}
	return applied, nil
}

func (s *Session) dispatch(a ir.Action) error {
	if !a.Kind.Valid() {
		return &ActionError{Code: ErrCodeUnknownAction, Action: a}
	}
	if !a.Kind.TakesValue() && a.Value != "" {
		return &ActionError{Code: ErrCodeUnexpectedValue, Action: a}
	}

	e := s.engine
	switch a.Kind {
	case ir.ActionDigit:
		d, ok := parseDigit(a.Value)
		if !ok {
			return &ActionError{Code: ErrCodeInvalidDigit, Action: a}
		}
		e.InputDigit(d)
	case ir.ActionOperator:
		op, ok := engine.ParseOperator(a.Value)
		if !ok {
			return &ActionError{Code: ErrCodeUnknownOperator, Action: a}
		}
		e.InputOperator(op)
	case ir.ActionDecimal:
		e.InputDecimal()
	case ir.ActionPercent:
		e.InputPercent()
	case ir.ActionSqrt:
		e.InputSquareRoot()
	case ir.ActionEquals:
		e.CalculateResult()
	case ir.ActionClear:
		e.Clear()
	case ir.ActionClearEntry:
		e.ClearEntry()
	case ir.ActionBackspace:
		e.Backspace()
	case ir.ActionToggle:
		e.ToggleSign()
	}
	return nil
}

func parseDigit(s string) (engine.Digit, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return engine.ParseDigit(r)
}

package engine

// State is a read-only snapshot of an Engine.
// Operator and operand fields are zero when the matching Has flag is false.
type State struct {
	Display         string
	HasPending      bool
	PendingOperator Operator
	PendingOperand  float64
	Waiting         bool
	HasLast         bool
	LastOperator    Operator
	LastOperand     float64
}

// State returns a snapshot of the engine's fields.
func (e *Engine) State() State {
	s := State{
		Display: e.display.String(),
		Waiting: e.waiting,
	}
	if e.pending != nil {
		s.HasPending = true
		s.PendingOperator = e.pending.op
		s.PendingOperand = e.pending.operand
	}
	if e.last != nil {
		s.HasLast = true
		s.LastOperator = e.last.op
		s.LastOperand = e.last.operand
	}
	return s
}

// Fields renders the snapshot as display strings keyed by snake_case field
// name. Absent operators and operands are rendered as "".
func (s State) Fields() map[string]string {
	fields := map[string]string{
		"display":          s.Display,
		"waiting":          formatBool(s.Waiting),
		"pending_operator": "",
		"pending_operand":  "",
		"last_operator":    "",
		"last_operand":     "",
	}
	if s.HasPending {
		fields["pending_operator"] = s.PendingOperator.String()
		fields["pending_operand"] = FormatResult(s.PendingOperand)
	}
	if s.HasLast {
		fields["last_operator"] = s.LastOperator.String()
		fields["last_operand"] = FormatResult(s.LastOperand)
	}
	return fields
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

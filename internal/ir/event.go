package ir

// Event records one applied action and the display it produced.
type Event struct {
	Seq     int64      `json:"seq"`
	Action  ActionKind `json:"action"`
	Value   string     `json:"value,omitempty"`
	Display string     `json:"display"`
}

// CanonicalMap converts the event to the generic form accepted by
// MarshalCanonical. Empty values are omitted.
func (e Event) CanonicalMap() map[string]any {
	m := map[string]any{
		"seq":     e.Seq,
		"action":  string(e.Action),
		"display": e.Display,
	}
	if e.Value != "" {
		m["value"] = e.Value
	}
	return m
}

// TraceSnapshot is the serialisable form of a session's trace.
type TraceSnapshot struct {
	Name    string  `json:"name"`
	Session string  `json:"session,omitempty"`
	Trace   []Event `json:"trace"`
}

// CanonicalMap converts the snapshot to the generic form accepted by
// MarshalCanonical.
func (s TraceSnapshot) CanonicalMap() map[string]any {
	trace := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		trace[i] = event.CanonicalMap()
	}

	m := map[string]any{
		"name":  s.Name,
		"trace": trace,
	}
	if s.Session != "" {
		m["session"] = s.Session
	}
	return m
}

// MarshalCanonical renders the snapshot as canonical JSON.
func (s TraceSnapshot) MarshalCanonical() ([]byte, error) {
	return MarshalCanonical(s.CanonicalMap())
}

package keypad

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/keycalc/internal/ir"
)

// TokenError reports a key string position that maps to no action.
type TokenError struct {
	Input  string // the normalized key string
	Offset int    // byte offset of the offending rune
	Rune   rune
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("unknown key %q at offset %d in %q", e.Rune, e.Offset, e.Input)
}

// Tokenize turns a key string into the actions it presses, in order.
//
// Each whitespace-separated field is first looked up as a button word
// (Word); otherwise every rune in it is one key press. No expression is
// built: "2+3*4=" presses seven keys and the engine evaluates them left to
// right.
func Tokenize(input string) ([]ir.Action, error) {
	input = norm.NFC.String(input)
	actions := []ir.Action{}

	offset := 0
	for offset < len(input) {
		// Skip whitespace.
		rest := input[offset:]
		trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
		offset += len(rest) - len(trimmed)
		if trimmed == "" {
			break
		}

		field := trimmed
		if end := strings.IndexFunc(trimmed, unicode.IsSpace); end >= 0 {
			field = trimmed[:end]
		}

		if a, ok := Word(field); ok {
			actions = append(actions, a)
			offset += len(field)
			continue
		}

		for i, r := range field {
			a, ok := fromChar(string(r))
			if !ok {
				return nil, &TokenError{Input: input, Offset: offset + i, Rune: r}
			}
			actions = append(actions, a)
		}
		offset += len(field)
	}
	return actions, nil
}

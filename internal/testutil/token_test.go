package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/keycalc/internal/session"
	"github.com/roach88/keycalc/internal/testutil"
)

var _ session.TokenGenerator = (*testutil.FixedSessionGenerator)(nil)

func TestFixedSessionGenerator(t *testing.T) {
	gen := testutil.NewFixedSessionGenerator("calc-1")
	assert.Equal(t, "calc-1", gen.Generate())
	assert.Equal(t, "calc-1", gen.Generate())
}

func TestFixedSessionGenerator_Default(t *testing.T) {
	gen := testutil.NewFixedSessionGenerator("")
	assert.Equal(t, testutil.DefaultSessionToken, gen.Generate())
}

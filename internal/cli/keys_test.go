package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_Text(t *testing.T) {
	out, _, err := execute(t, nil, "", "keys")
	require.NoError(t, err)

	assert.Contains(t, out, "AC")
	assert.Contains(t, out, "√")
	assert.Contains(t, out, "Keyboard:")
	assert.Contains(t, out, "F9")
	assert.Contains(t, out, "clear_entry")
}

func TestKeys_JSON(t *testing.T) {
	out, _, err := execute(t, nil, "", "--format", "json", "keys")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   KeysResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Layout, 6)
	assert.Equal(t, []string{"AC", "±", "%", "÷"}, resp.Data.Layout[0])
	assert.NotEmpty(t, resp.Data.Bindings)
}

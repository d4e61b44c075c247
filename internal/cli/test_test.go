package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: addition
description: "adds"
session: s-add
steps:
  - press: "2+3="
    expect: "5"
`

const passingGolden = `{"name":"addition","session":"s-add","trace":[` +
	`{"action":"digit","display":"2","seq":1,"value":"2"},` +
	`{"action":"operator","display":"2","seq":2,"value":"+"},` +
	`{"action":"digit","display":"3","seq":3,"value":"3"},` +
	`{"action":"equals","display":"5","seq":4}]}`

const failingScenario = `
name: wrong_sum
description: "expects the wrong display"
steps:
  - press: "2+2="
    expect: "5"
`

func scenarioFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/scenarios", 0o755))
	for name, content := range files {
		path := filepath.Join("/scenarios", name)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestTestCommand_MissingArgs(t *testing.T) {
	_, _, err := execute(t, nil, "", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommand_MissingDir(t *testing.T) {
	_, _, err := execute(t, nil, "", "test", "/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommand_EmptyDir(t *testing.T) {
	fs := scenarioFs(t, nil)

	out, _, err := execute(t, fs, "", "test", "/scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")

	out, _, err = execute(t, fs, "", "--format", "json", "test", "/scenarios")
	require.NoError(t, err)
	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Data.Total)
}

func TestTestCommand_PassWithoutGolden(t *testing.T) {
	fs := scenarioFs(t, map[string]string{"addition.yaml": passingScenario})

	out, _, err := execute(t, fs, "", "test", "/scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ addition")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
}

func TestTestCommand_PassWithGolden(t *testing.T) {
	fs := scenarioFs(t, map[string]string{
		"addition.yaml":          passingScenario,
		"golden/addition.golden": passingGolden,
	})

	out, _, err := execute(t, fs, "", "test", "/scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ addition")
}

func TestTestCommand_GoldenMismatch(t *testing.T) {
	fs := scenarioFs(t, map[string]string{
		"addition.yaml":          passingScenario,
		"golden/addition.golden": `{"name":"addition","trace":[]}`,
	})

	out, errOut, err := execute(t, fs, "", "-v", "test", "/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ addition")
	assert.Contains(t, out, "does not match golden file")
	assert.Contains(t, errOut, "--- golden")
	assert.Contains(t, errOut, "+++ actual")
}

func TestTestCommand_Update(t *testing.T) {
	fs := scenarioFs(t, map[string]string{"addition.yaml": passingScenario})

	out, _, err := execute(t, fs, "", "test", "--update", "/scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "golden updated")

	data, err := afero.ReadFile(fs, "/scenarios/golden/addition.golden")
	require.NoError(t, err)
	assert.Equal(t, passingGolden, string(data))

	_, _, err = execute(t, fs, "", "test", "/scenarios")
	require.NoError(t, err)
}

func TestTestCommand_FailingScenario(t *testing.T) {
	fs := scenarioFs(t, map[string]string{
		"addition.yaml":  passingScenario,
		"wrong_sum.yaml": failingScenario,
	})

	out, _, err := execute(t, fs, "", "test", "/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong_sum")
	assert.Contains(t, out, `expected display "5", got "4"`)
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommand_LoadError(t *testing.T) {
	fs := scenarioFs(t, map[string]string{"broken.yml": "name: broken\nsteps: 3\n"})

	out, _, err := execute(t, fs, "", "test", "/scenarios")
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommand_Filter(t *testing.T) {
	fs := scenarioFs(t, map[string]string{
		"addition.yaml":  passingScenario,
		"wrong_sum.yaml": failingScenario,
		"notes.txt":      "not a scenario",
	})

	out, _, err := execute(t, fs, "", "test", "--filter", "add*", "/scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")

	_, _, err = execute(t, fs, "", "test", "--filter", "[", "/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommand_JSON(t *testing.T) {
	fs := scenarioFs(t, map[string]string{
		"addition.yaml":  passingScenario,
		"wrong_sum.yaml": failingScenario,
	})

	out, _, err := execute(t, fs, "", "--format", "json", "test", "/scenarios")
	require.Error(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)

	require.Len(t, resp.Data.Scenarios, 2)
	assert.Equal(t, "addition", resp.Data.Scenarios[0].Name)
	assert.Len(t, resp.Data.Scenarios[0].Digest, 16)
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, "/s/golden/div.golden", goldenFilePath("/s/div.yaml"))
	assert.Equal(t, "dir/golden/x.golden", goldenFilePath("dir/x.yml"))
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// execute runs the root command in-process with the given stdin and args.
func execute(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, string, error) {
	t.Helper()
	if fs == nil {
		fs = afero.NewMemMapFs()
	}

	cmd := newRootCommand(&RootOptions{Fs: fs})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/keycalc/internal/keypad"
)

// KeysResult is the keys command's JSON payload.
type KeysResult struct {
	Layout   [][]string       `json:"layout"`
	Bindings []keypad.Binding `json:"bindings"`
}

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the keypad and keyboard shortcuts",
		Args:  cobra.NoArgs,
		Example: `  calc keys
  calc keys --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(rootOpts, cmd)
		},
	}
	return cmd
}

func runKeys(opts *RootOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()

	if opts.Format == "json" {
		result := KeysResult{Bindings: keypad.Bindings()}
		for _, row := range keypad.Layout() {
			labels := make([]string, len(row))
			for i, btn := range row {
				labels[i] = btn.Label
			}
			result.Layout = append(result.Layout, labels)
		}
		return newFormatter(opts, w, cmd.ErrOrStderr()).Success(result)
	}

	if err := keypad.Render(w, "0"); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keyboard:")
	for _, b := range keypad.Bindings() {
		fmt.Fprintf(w, "  %-24s %s\n", b.Keys, b.Action)
	}
	return nil
}

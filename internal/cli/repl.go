package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/keycalc/internal/keypad"
	"github.com/roach88/keycalc/internal/session"
)

// ReplOptions holds flags for the repl command.
type ReplOptions struct {
	*RootOptions
	Prompt string
}

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Long: `Read key strings line by line and print the display after each.

All lines drive the same calculator, so "2+" followed by "3=" shows 5.
A line that cannot be tokenized is reported and skipped. The session ends
at end of input or on a line reading "quit" or "exit".

Examples:
  calc repl
  echo "2+3=" | calc repl --prompt ""`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Prompt, "prompt", "> ", "prompt printed before each line")

	return cmd
}

func runRepl(opts *ReplOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	f := newFormatter(opts.RootOptions, w, cmd.ErrOrStderr())

	s := session.New(session.UUIDv7Generator{}.Generate(), nil)
	f.VerboseLog("session %s started", s.Token())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if opts.Format != "json" {
			fmt.Fprint(w, opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		actions, err := keypad.Tokenize(line)
		if err != nil {
			if err := f.Error(ErrCodeInvalidKeys, err.Error(), nil); err != nil {
				return err
			}
			continue
		}
		if _, err := s.ApplyAll(actions); err != nil {
			if err := f.Error(ErrCodeRejectedAction, err.Error(), nil); err != nil {
				return err
			}
			continue
		}

		f.Dump(s.State())
		if opts.Format == "json" {
			err = f.SuccessWithTrace(map[string]string{"display": s.Display()}, s.Token())
		} else {
			err = f.Success(s.Display())
		}
		if err != nil {
			return err
		}
	}
	if opts.Format != "json" {
		fmt.Fprintln(w)
	}

	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	f.VerboseLog("session %s ended after %d events", s.Token(), len(s.Events()))
	return nil
}

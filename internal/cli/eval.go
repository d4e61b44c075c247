package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/keycalc/internal/ir"
	"github.com/roach88/keycalc/internal/keypad"
	"github.com/roach88/keycalc/internal/session"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Trace bool // print every event, not just the final display
}

// EvalResult is the eval command's JSON payload.
type EvalResult struct {
	Display string     `json:"display"`
	Session string     `json:"session"`
	Digest  string     `json:"digest"`
	Trace   []ir.Event `json:"trace,omitempty"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <keys>...",
		Short: "Press keys and print the display",
		Long: `Press a key string on a fresh calculator and print the final display.

Every character is one key: digits, ".", "+ - * /" (or "× ÷ −"), "=",
"%" for percent and "@" for square root. Whitespace-separated words name
the other buttons: ac, ce, bs, neg, sqrt, pct.

Examples:
  calc eval "2+3*4="
  calc eval 2 + 9 ce 4 =
  calc eval --trace "7/0="
  calc eval --format json "1/3="`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every key press and its display")

	return cmd
}

func runEval(opts *EvalOptions, keys string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	actions, err := keypad.Tokenize(keys)
	if err != nil {
		var tokErr *keypad.TokenError
		if errors.As(err, &tokErr) {
			_ = f.Error(ErrCodeInvalidKeys, err.Error(), map[string]any{"offset": tokErr.Offset})
		}
		return WrapExitError(ExitCommandError, "invalid key string", err)
	}

	s := session.New(session.UUIDv7Generator{}.Generate(), nil)
	if _, err := s.ApplyAll(actions); err != nil {
		_ = f.Error(ErrCodeRejectedAction, err.Error(), nil)
		return WrapExitError(ExitCommandError, "action rejected", err)
	}

	f.VerboseLog("session %s applied %d actions", s.Token(), len(actions))
	f.Dump(s.State())

	digest, err := ir.TraceDigest(s.Events())
	if err != nil {
		return fmt.Errorf("failed to digest trace: %w", err)
	}

	if opts.Format == "json" {
		result := EvalResult{
			Display: s.Display(),
			Session: s.Token(),
			Digest:  digest,
		}
		if opts.Trace {
			result.Trace = s.Events()
		}
		return f.SuccessWithTrace(result, s.Token())
	}

	if opts.Trace {
		w := cmd.OutOrStdout()
		for _, event := range s.Events() {
			fmt.Fprintf(w, "[%d] %s -> %s\n", event.Seq, ir.Action{Kind: event.Action, Value: event.Value}, event.Display)
		}
	}
	return f.Success(s.Display())
}

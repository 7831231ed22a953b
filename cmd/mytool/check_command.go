package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mytool/internal/core"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "check --mode {ok|fail}",
		Short: "Succeed or fail on demand",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := core.ParseMode(mode)
			if err != nil {
				return err
			}
			opts := ctx.options()
			ctx.commandLogger(cmd).Debug("running check", "mode", string(parsed))

			result := core.Check(parsed)
			if !result.OK() {
				return result.Err
			}
			mark := paint(checkMark, statusOK, colorEnabled(opts.Color, cmd.OutOrStdout()))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, result.Message)
			return err
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Outcome to produce: ok or fail")
	return cmd
}

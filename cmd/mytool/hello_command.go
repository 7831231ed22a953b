package main

import (
	"strings"

	"github.com/spf13/cobra"

	"mytool/internal/core"
)

func newHelloCommand(ctx *commandContext) *cobra.Command {
	var upper bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "hello [NAME]",
		Short: "Print a greeting",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ctx.options()
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			if strings.TrimSpace(name) == "" {
				name = opts.Config.Hello.DefaultName
			}
			return ctx.render(cmd, core.Greet(name, upper), asJSON, "")
		},
	}

	cmd.Flags().BoolVar(&upper, "upper", false, "Uppercase the greeting")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

// maxArgs is cobra.MaximumNArgs with a usage-classified error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return core.UsageErrorf("%s accepts at most %d argument(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

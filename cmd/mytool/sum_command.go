package main

import (
	"regexp"

	"github.com/spf13/cobra"

	"mytool/internal/core"
)

var negativeOperand = regexp.MustCompile(`^-[0-9]`)

func newSumCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sum N1 [N2 ...]",
		Short: "Add one or more integers",
		// Flags are split from operands by hand so negative numbers stay
		// operands instead of unknown shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagTokens, operands := splitOperands(args)
			if err := cmd.Flags().Parse(flagTokens); err != nil {
				return cmd.FlagErrorFunc()(cmd, err)
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}

			values, err := core.ParseIntegers(operands)
			if err != nil {
				return err
			}
			ctx.commandLogger(cmd).Debug("summing operands", "count", len(values))
			return ctx.render(cmd, core.Sum(values), asJSON, "")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

// splitOperands separates flag tokens from integer operands. "--" ends flag
// recognition; a dash followed by a digit is a negative operand.
func splitOperands(args []string) (flags, operands []string) {
	for i, arg := range args {
		switch {
		case arg == "--":
			return flags, append(operands, args[i+1:]...)
		case negativeOperand.MatchString(arg):
			operands = append(operands, arg)
		case len(arg) > 1 && arg[0] == '-':
			flags = append(flags, arg)
		default:
			operands = append(operands, arg)
		}
	}
	return flags, operands
}

package main

import (
	"github.com/spf13/cobra"

	"mytool/internal/core"
	"mytool/internal/logging"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mytool",
		Short:         "Demonstrates one entry point dispatching to several subcommands",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Global options are parsed on the way down to the subcommand and are
		// only accepted before its name.
		TraverseChildren: true,
		Args:             cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.dispatched = true
			opts, err := ctx.ensureOptions(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithCommand(cmd.Context(), cmd.CommandPath()))
			ctx.commandLogger(cmd).Debug("dispatching command",
				logging.Args(
					logging.Bool("config_found", opts.ConfigFound),
					logging.String("config_path", opts.ConfigPath),
				)...,
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return core.UsageErrorf("missing command")
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.Flags().BoolVarP(&ctx.verboseFlag, "verbose", "v", false, "Enable debug logging and stack traces on failure")
	rootCmd.Flags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&ctx.colorFlag, "color", "", "Colorize output: auto, always or never")

	rootCmd.AddCommand(newHelloCommand(ctx))
	rootCmd.AddCommand(newSumCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

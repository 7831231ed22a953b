package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mytool/internal/core"
	"mytool/internal/logging"
)

type exitCoder interface {
	ExitCode() int
}

// execute runs one invocation of the CLI and returns the process exit code.
// It is the only place that renders errors.
func execute(args []string, stdout, stderr io.Writer) int {
	ctx := newCommandContext(stderr)
	rootCmd := newRootCommand(ctx)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	runCtx := logging.WithInvocationID(context.Background(), ctx.invocationID)
	cmd, err := rootCmd.ExecuteContextC(runCtx)
	if err == nil {
		return core.ExitOK
	}
	if cmd == nil {
		cmd = rootCmd
	}

	code := exitCode(err, ctx.dispatched)
	attrs := []logging.Attr{
		logging.String(logging.FieldCommand, cmd.CommandPath()),
		logging.String(logging.FieldInvocationID, ctx.invocationID),
		logging.Int(logging.FieldExitCode, code),
		logging.Error(err),
	}
	var ce *core.Error
	if errors.As(err, &ce) && ce.Command() != "" {
		attrs = append(attrs, logging.String("raised_by", ce.Command()))
	}
	ctx.logger().Debug("command finished", logging.Args(attrs...)...)
	renderError(stderr, cmd, err, code, ctx)
	return code
}

// exitCode maps err to a process exit code. Errors without a classification
// are usage errors when cobra rejected the invocation before any command hook
// ran, and failures otherwise.
func exitCode(err error, dispatched bool) int {
	if err == nil {
		return core.ExitOK
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if !dispatched {
		return core.ExitUsage
	}
	return core.ExitError
}

func renderError(w io.Writer, cmd *cobra.Command, err error, code int, ctx *commandContext) {
	colorize := colorEnabled(ctx.colorMode(), w)
	fmt.Fprintf(w, "%s %s\n", paint("Error:", statusError, colorize), singleLine(err.Error()))

	switch code {
	case core.ExitUsage:
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", cmd.CommandPath())
	case core.ExitError:
		if ctx.verboseFlag {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "--- stack trace ---")
			fmt.Fprintf(w, "invocation: %s\n", ctx.invocationID)
			fmt.Fprint(w, core.Trace(err))
		}
	}
}

// flagError turns pflag parse failures into usage errors. Global options
// given after the subcommand get a hint about where they belong.
func flagError(cmd *cobra.Command, err error) error {
	var notExist *pflag.NotExistError
	if errors.As(err, &notExist) {
		if name := globalFlagName(cmd.Root(), notExist.GetSpecifiedName()); name != "" {
			return core.UsageErrorf("global option --%s must be placed before the subcommand", name)
		}
	}
	return core.Wrap(core.ErrUsage, cmd.Name(), "", err)
}

func globalFlagName(root *cobra.Command, specified string) string {
	if specified == "" {
		return ""
	}
	if flag := root.Flags().Lookup(specified); flag != nil {
		return flag.Name
	}
	if len(specified) == 1 {
		if flag := root.Flags().ShorthandLookup(specified); flag != nil {
			return flag.Name
		}
	}
	return ""
}

func singleLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}

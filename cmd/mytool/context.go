package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mytool/internal/config"
	"mytool/internal/core"
	"mytool/internal/logging"
)

// Options is the immutable view of the global invocation handed to each
// subcommand once the global flags and config file have been resolved.
type Options struct {
	Verbose      bool
	Color        string
	ConfigPath   string
	ConfigFound  bool
	Config       config.Config
	InvocationID string
	Logger       *slog.Logger
}

type commandContext struct {
	verboseFlag bool
	configFlag  string
	colorFlag   string

	stderr io.Writer

	invocationID string
	// dispatched is set once flag parsing and argument validation passed and
	// a command hook started running.
	dispatched bool

	optsOnce sync.Once
	opts     Options
	optsErr  error
}

func newCommandContext(stderr io.Writer) *commandContext {
	return &commandContext{
		stderr:       stderr,
		invocationID: uuid.NewString(),
	}
}

// ensureOptions resolves global options exactly once per invocation.
func (c *commandContext) ensureOptions(cmd *cobra.Command) (Options, error) {
	c.optsOnce.Do(func() {
		color := strings.ToLower(strings.TrimSpace(c.colorFlag))
		if color != "" && !config.ValidColor(color) {
			c.optsErr = core.UsageErrorf("invalid value %q for --color: use auto, always or never", c.colorFlag)
			return
		}

		cfgPtr := new(config.Config)
		*cfgPtr = config.Default()
		path := strings.TrimSpace(c.configFlag)
		found := false
		if !shouldSkipConfig(cmd) {
			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				c.optsErr = fmt.Errorf("load config: %w", err)
				return
			}
			cfgPtr, path, found = cfg, resolved, exists
		}
		if color == "" {
			color = cfgPtr.Output.Color
		}

		logger, err := logging.NewFromConfig(cfgPtr, c.stderr, c.verboseFlag)
		if err != nil {
			c.optsErr = fmt.Errorf("configure logging: %w", err)
			return
		}

		c.opts = Options{
			Verbose:      c.verboseFlag,
			Color:        color,
			ConfigPath:   path,
			ConfigFound:  found,
			Config:       *cfgPtr,
			InvocationID: c.invocationID,
			Logger:       logging.NewComponentLogger(logger, "cli"),
		}
	})
	return c.opts, c.optsErr
}

// options returns the resolved options. Commands only call it after the
// root's PersistentPreRunE succeeded.
func (c *commandContext) options() Options {
	return c.opts
}

// commandLogger tags the logger with the command and invocation id carried
// by cmd's context.
func (c *commandContext) commandLogger(cmd *cobra.Command) *slog.Logger {
	return logging.WithContext(cmd.Context(), c.logger())
}

func (c *commandContext) logger() *slog.Logger {
	if c.opts.Logger == nil {
		return logging.NewNop()
	}
	return c.opts.Logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// colorMode returns the effective colour mode, falling back to the raw flag
// when options never resolved.
func (c *commandContext) colorMode() string {
	if c.opts.Color != "" {
		return c.opts.Color
	}
	mode := strings.ToLower(strings.TrimSpace(c.colorFlag))
	if config.ValidColor(mode) {
		return mode
	}
	return config.ColorAuto
}

// render prints a successful result in plain or JSON form, or hands the
// result's error back to execute.
func (c *commandContext) render(cmd *cobra.Command, result core.Result, asJSON bool, plain string) error {
	if !result.OK() {
		return result.Err
	}
	if asJSON {
		return writeJSON(cmd, result.Payload)
	}
	if plain == "" {
		plain = result.Message
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), plain)
	return err
}

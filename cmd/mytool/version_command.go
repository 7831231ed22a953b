package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mytool/internal/buildinfo"
)

func newVersionCommand() *cobra.Command {
	var short bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Show build information",
		Args:        maxArgs(0),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Current()
			if asJSON {
				return writeJSON(cmd, info)
			}
			out := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintf(out, "mytool %s\n", info.Version)
				return err
			}
			_, err := fmt.Fprintf(out, "mytool %s\n", buildinfo.Summary())
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

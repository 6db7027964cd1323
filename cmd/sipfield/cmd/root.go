// Package cmd implements the sipfield command line tool.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ghettovoice/sipfield"
)

// NewRootCmd builds the sipfield command tree.
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:          "sipfield",
		Short:        "Inspect and re-encode SIP and SDP header fields",
		Version:      sipfield.Version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				sipfield.SetLogger(sipfield.DevLogger())
			} else {
				sipfield.SetLogger(nil)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log degraded input to stderr")

	rootCmd.AddCommand(
		newHeaderCmd(),
		newParamsCmd(),
		newConnCmd(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

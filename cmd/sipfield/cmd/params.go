package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/sipfield/header"
)

func newParamsCmd() *cobra.Command {
	var sep, outSep string

	paramsCmd := &cobra.Command{
		Use:   "params text",
		Short: "Re-encodes a name[=value] parameter list",
		Long: "Parses a parameter list delimited by --sep and prints it back in canonical order,\n" +
			"delimited by --out-sep if given.",
		Example: `  sipfield params 'transport=tcp;lr;ttl=16'
  sipfield params --sep ', ' --out-sep '&' 'realm="a b", qop=auth'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := header.ParseParams(args[0], sep)
			if err != nil {
				return err
			}
			if outSep != "" {
				if err := params.SetSeparator(outSep); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), params)
			return nil
		},
	}
	paramsCmd.Flags().StringVar(&sep, "sep", header.NewParams().Separator(), "input separator: ';', ',' or '&' optionally followed by spaces")
	paramsCmd.Flags().StringVar(&outSep, "out-sep", "", "output separator, defaults to the input separator")
	return paramsCmd
}
